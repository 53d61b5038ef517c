package output

import (
	"encoding/json"
	"fmt"

	"sqlgen/internal/core"
)

type jsonFragment struct {
	SQL     string `json:"sql"`
	Affects string `json:"affects,omitempty"`
	Kind    string `json:"objectKind,omitempty"`
}

type jsonDocument struct {
	Dialect    string         `json:"dialect"`
	Statements []jsonFragment `json:"statements"`
}

// FormatJSON renders the fragments as an indented JSON document.
func FormatJSON(dialectName string, fragments []core.Sql) (string, error) {
	doc := jsonDocument{Dialect: dialectName, Statements: make([]jsonFragment, 0, len(fragments))}
	for _, f := range fragments {
		jf := jsonFragment{SQL: f.Statement}
		if f.Affects != nil {
			jf.Affects = f.Affects.QualifiedName()
			jf.Kind = string(f.Affects.Kind)
		}
		doc.Statements = append(doc.Statements, jf)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("output: marshal json: %w", err)
	}
	return string(data), nil
}
