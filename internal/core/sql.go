package core

import "strings"

// ObjectKind classifies a schema object referenced by a generated fragment.
type ObjectKind string

const (
	ObjectTable    ObjectKind = "table"
	ObjectSequence ObjectKind = "sequence"
)

// DatabaseObject identifies the schema object a generated statement affects.
// Downstream layers use it for dependency tracking; it never feeds back into
// generation.
type DatabaseObject struct {
	Kind    ObjectKind
	Catalog string
	Schema  string
	Name    string
}

// QualifiedName returns the dot-joined schema-qualified name.
func (o DatabaseObject) QualifiedName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{o.Catalog, o.Schema, o.Name} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

// Sql is a single generated SQL fragment, optionally tagged with the object
// it affects. A generator returns the primary statement first, followed by
// any auxiliary statements in the order they were recorded.
type Sql struct {
	Statement string
	Affects   *DatabaseObject
}

// TableObject tags a fragment as affecting the statement's table.
func TableObject(catalog, schema, table string) *DatabaseObject {
	return &DatabaseObject{Kind: ObjectTable, Catalog: catalog, Schema: schema, Name: table}
}

// SequenceObject tags a fragment as affecting a sequence.
func SequenceObject(catalog, schema, name string) *DatabaseObject {
	return &DatabaseObject{Kind: ObjectSequence, Catalog: catalog, Schema: schema, Name: name}
}
