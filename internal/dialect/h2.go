package dialect

import "sqlgen/internal/core"

func init() {
	Register("h2", func() Dialect { return NewH2() })
	Register("hsqldb", func() Dialect { return NewHSQL() })
}

var h2Types = map[string]string{
	"int":       "INT",
	"integer":   "INT",
	"bigint":    "BIGINT",
	"smallint":  "SMALLINT",
	"boolean":   "BOOLEAN",
	"varchar":   "VARCHAR",
	"char":      "CHAR",
	"clob":      "CLOB",
	"text":      "CLOB",
	"blob":      "BLOB",
	"decimal":   "DECIMAL",
	"float":     "REAL",
	"double":    "DOUBLE",
	"date":      "DATE",
	"datetime":  "TIMESTAMP",
	"timestamp": "TIMESTAMP",
	"uuid":      "UUID",
}

// H2 is the capability provider for the H2 embedded database.
type H2 struct {
	base
}

// NewH2 initializes the H2 capability provider.
func NewH2() *H2 {
	return &H2{base: newBase("h2", `"`, `"`)}
}

func (d *H2) NativeType(declared string) string {
	return mapType(declared, h2Types)
}

func (d *H2) SupportsIfNotExists() bool { return true }

func (d *H2) AutoIncrementClause(c *core.AutoIncrementConstraint) string {
	return identityClause(c, " ")
}

func (d *H2) DefaultMajorVersion() int { return 2 }
func (d *H2) VersionQuery() string     { return "SELECT H2VERSION()" }

// HSQL is the capability provider for HyperSQL.
type HSQL struct {
	base
}

// NewHSQL initializes the HyperSQL capability provider.
func NewHSQL() *HSQL {
	return &HSQL{base: newBase("hsqldb", `"`, `"`)}
}

func (d *HSQL) NativeType(declared string) string {
	return mapType(declared, h2Types)
}

func (d *HSQL) SupportsIfNotExists() bool         { return true }
func (d *HSQL) SupportsInitiallyDeferrable() bool { return true }

func (d *HSQL) AutoIncrementClause(c *core.AutoIncrementConstraint) string {
	return identityClause(c, ", ")
}

// DefaultValueLeader suppresses the DEFAULT keyword for sequence-backed
// defaults; HyperSQL phrases them as GENERATED BY DEFAULT AS SEQUENCE.
func (d *HSQL) DefaultValueLeader(v core.DefaultValue) string {
	if _, ok := v.(core.SequenceNextValue); ok {
		return " "
	}
	return " DEFAULT "
}

// RenderSequenceNext pairs with the suppressed DEFAULT keyword above.
func (d *HSQL) RenderSequenceNext(sequence string) string {
	return "GENERATED BY DEFAULT AS SEQUENCE " + sequence
}

func (d *HSQL) DefaultMajorVersion() int { return 2 }

func (d *HSQL) VersionQuery() string {
	return "CALL DATABASE_VERSION()"
}
