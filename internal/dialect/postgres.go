package dialect

import (
	"strings"

	"sqlgen/internal/core"
)

func init() {
	Register("postgresql", func() Dialect { return NewPostgres() })
}

var postgresTypes = map[string]string{
	"int":         "INTEGER",
	"integer":     "INTEGER",
	"bigint":      "BIGINT",
	"smallint":    "SMALLINT",
	"serial":      "SERIAL",
	"bigserial":   "BIGSERIAL",
	"smallserial": "SMALLSERIAL",
	"boolean":     "BOOLEAN",
	"varchar":     "VARCHAR",
	"char":        "CHAR",
	"clob":        "TEXT",
	"text":        "TEXT",
	"blob":        "BYTEA",
	"decimal":     "NUMERIC",
	"float":       "REAL",
	"double":      "DOUBLE PRECISION",
	"date":        "DATE",
	"datetime":    "TIMESTAMP WITHOUT TIME ZONE",
	"timestamp":   "TIMESTAMP WITHOUT TIME ZONE",
	"uuid":        "UUID",
}

// Postgres is the capability provider for PostgreSQL.
type Postgres struct {
	base
}

// NewPostgres initializes the PostgreSQL capability provider.
func NewPostgres() *Postgres {
	return &Postgres{base: newBase("postgresql", `"`, `"`)}
}

var postgresSerialTypes = map[string]string{
	"int":      "SERIAL",
	"integer":  "SERIAL",
	"smallint": "SMALLSERIAL",
	"bigint":   "BIGSERIAL",
}

func (d *Postgres) NativeType(declared string) string {
	return mapType(declared, postgresTypes)
}

// AutoIncrementNativeType resolves integer types onto the serial family for
// releases predating identity columns. From version 10 on the declared type
// is kept and identity is expressed by the column clause instead.
func (d *Postgres) AutoIncrementNativeType(declared string, majorVersion int) string {
	if majorVersion >= 10 {
		return ""
	}
	return serialFor(declared, postgresSerialTypes)
}

// TypeSelfIncrements is true for the serial family; those types imply a
// sequence-backed default, so neither an explicit default nor an identity
// clause is emitted for them.
func (d *Postgres) TypeSelfIncrements(nativeType string) bool {
	return strings.HasSuffix(strings.ToLower(nativeType), "serial")
}

func (d *Postgres) SupportsIfNotExists() bool         { return true }
func (d *Postgres) SupportsInitiallyDeferrable() bool { return true }
func (d *Postgres) SupportsTablespaces() bool         { return true }
func (d *Postgres) SupportsIndexTablespace() bool     { return true }

// AutoIncrementClause renders the identity phrasing used from version 10 on.
// Older releases never reach it for integer columns: AutoIncrementNativeType
// resolves those onto the serial family first.
func (d *Postgres) AutoIncrementClause(c *core.AutoIncrementConstraint) string {
	return identityClause(c, " ")
}

// DefaultValueLeader suppresses the DEFAULT keyword for generated-identity
// phrasings, which stand on their own.
func (d *Postgres) DefaultValueLeader(v core.DefaultValue) string {
	if strings.HasPrefix(v.String(), "GENERATED ALWAYS ") {
		return " "
	}
	return " DEFAULT "
}

func (d *Postgres) RenderSequenceNext(sequence string) string {
	return "nextval('" + sequence + "')"
}

// QualifiesTemporaryTables is false: each session gets its own temp schema,
// so temp tables are named unqualified.
func (d *Postgres) QualifiesTemporaryTables() bool { return false }

// InlineAutoIncrementStart requires version 10; older releases need a
// separate ALTER SEQUENCE statement to apply a start value.
func (d *Postgres) InlineAutoIncrementStart(majorVersion int) bool {
	return majorVersion >= 10
}

func (d *Postgres) DefaultMajorVersion() int { return 9 }
func (d *Postgres) VersionQuery() string     { return "SHOW server_version" }
