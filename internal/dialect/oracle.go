package dialect

import (
	"strings"

	"sqlgen/internal/core"
)

func init() {
	Register("oracle", func() Dialect { return NewOracle() })
}

var oracleTypes = map[string]string{
	"int":       "NUMBER(10)",
	"integer":   "NUMBER(10)",
	"bigint":    "NUMBER(19)",
	"smallint":  "NUMBER(5)",
	"boolean":   "NUMBER(1)",
	"varchar":   "VARCHAR2",
	"char":      "CHAR",
	"clob":      "CLOB",
	"text":      "CLOB",
	"blob":      "BLOB",
	"decimal":   "NUMBER",
	"float":     "FLOAT",
	"double":    "FLOAT(24)",
	"date":      "DATE",
	"datetime":  "TIMESTAMP",
	"timestamp": "TIMESTAMP",
	"uuid":      "RAW(16)",
}

// Oracle is the capability provider for Oracle Database.
type Oracle struct {
	base
}

// NewOracle initializes the Oracle capability provider.
func NewOracle() *Oracle {
	return &Oracle{base: newBase("oracle", `"`, `"`)}
}

func (d *Oracle) NativeType(declared string) string {
	return mapType(declared, oracleTypes)
}

func (d *Oracle) SupportsNotNullConstraintNames() bool { return true }
func (d *Oracle) SupportsInitiallyDeferrable() bool    { return true }
func (d *Oracle) SupportsTablespaces() bool            { return true }
func (d *Oracle) SupportsIndexTablespace() bool        { return true }
func (d *Oracle) SupportsRowDependencies() bool        { return true }

// AutoIncrementClause renders Oracle's identity phrasing; unlike the standard
// form, the START WITH / INCREMENT BY parameters are not parenthesized.
func (d *Oracle) AutoIncrementClause(c *core.AutoIncrementConstraint) string {
	clause := identityClause(c, " ")
	clause = strings.Replace(clause, " (", " ", 1)
	return strings.TrimSuffix(clause, ")")
}

// GeneratePrimaryKeyName derives PK_<TABLE>.
// TODO: truncate names longer than 30 bytes for pre-12.2 servers.
func (d *Oracle) GeneratePrimaryKeyName(table string) string {
	return "PK_" + strings.ToUpper(table)
}

// DefaultValueLeader suppresses the DEFAULT keyword for generated-identity
// phrasings.
func (d *Oracle) DefaultValueLeader(v core.DefaultValue) string {
	if strings.HasPrefix(v.String(), "GENERATED ALWAYS ") {
		return " "
	}
	return " DEFAULT "
}

func (d *Oracle) RenderSequenceNext(sequence string) string {
	return sequence + ".NEXTVAL"
}

// NotValidatedPhrase marks a constraint as enabled without validating
// existing rows.
func (d *Oracle) NotValidatedPhrase() string { return " ENABLE NOVALIDATE" }

func (d *Oracle) DefaultMajorVersion() int { return 19 }

func (d *Oracle) VersionQuery() string {
	return "SELECT version FROM product_component_version WHERE product LIKE 'Oracle%'"
}
