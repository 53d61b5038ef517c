package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTableToml = `
[table]
name = "t"

[[columns]]
name = "id"
type = "int"
primary_key = true
`

const incrementByToml = `
[table]
name = "t"

[[columns]]
name = "id"
type = "int"
auto_increment = true
increment_by = 2
`

func writeTableFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runGenerate(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := generateCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateSingleDialect(t *testing.T) {
	out, err := runGenerate(t, "--file", writeTableFile(t, validTableToml), "--dialect", "mysql")

	require.NoError(t, err)
	assert.Contains(t, out, "CREATE TABLE t (id INT NULL, PRIMARY KEY (id));")
}

func TestGenerateAllDialectsReportsEveryValidationError(t *testing.T) {
	_, err := runGenerate(t, "--file", writeTableFile(t, incrementByToml), "--all-dialects")

	require.Error(t, err)
	// The batch carries every offending dialect, not just the first one hit.
	assert.Contains(t, err.Error(), "incrementBy is not allowed on mysql")
	assert.Contains(t, err.Error(), "incrementBy is not allowed on sqlite")
	assert.Contains(t, err.Error(), "incrementBy is not allowed on sybase")
}

func TestGenerateRejectsUnknownDialect(t *testing.T) {
	_, err := runGenerate(t, "--file", writeTableFile(t, validTableToml), "--dialect", "nosuchdb")

	assert.Error(t, err)
}
