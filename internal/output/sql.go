// Package output renders generated SQL fragments for the CLI, either as
// executable SQL text or as JSON for tooling.
package output

import (
	"strings"

	"sqlgen/internal/core"
)

// FormatSQL renders the fragments as SQL text, one statement per line,
// each terminated with a semicolon.
func FormatSQL(fragments []core.Sql) string {
	var sb strings.Builder
	for _, f := range fragments {
		stmt := strings.TrimSpace(f.Statement)
		if stmt == "" {
			continue
		}
		sb.WriteString(stmt)
		if !strings.HasSuffix(stmt, ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
