package dialect

import (
	"strings"

	"sqlgen/internal/core"
)

func init() {
	Register("informix", func() Dialect { return NewInformix() })
}

var informixTypes = map[string]string{
	"int":       "INTEGER",
	"integer":   "INTEGER",
	"bigint":    "BIGINT",
	"smallint":  "SMALLINT",
	"boolean":   "BOOLEAN",
	"varchar":   "VARCHAR",
	"char":      "CHAR",
	"clob":      "CLOB",
	"text":      "TEXT",
	"blob":      "BLOB",
	"decimal":   "DECIMAL",
	"float":     "SMALLFLOAT",
	"double":    "FLOAT",
	"date":      "DATE",
	"datetime":  "DATETIME YEAR TO FRACTION(5)",
	"timestamp": "DATETIME YEAR TO FRACTION(5)",
	"uuid":      "CHAR(36)",
}

// Informix is the capability provider for IBM Informix.
type Informix struct {
	base
}

// NewInformix initializes the Informix capability provider.
func NewInformix() *Informix {
	return &Informix{base: newBase("informix", `"`, `"`)}
}

var informixSerialTypes = map[string]string{
	"int":      "SERIAL",
	"integer":  "SERIAL",
	"smallint": "SERIAL",
	"bigint":   "SERIAL8",
}

func (d *Informix) NativeType(declared string) string {
	return mapType(declared, informixTypes)
}

// AutoIncrementNativeType resolves integer types onto the SERIAL family,
// which is the only way Informix expresses identity.
func (d *Informix) AutoIncrementNativeType(declared string, _ int) string {
	return serialFor(declared, informixSerialTypes)
}

// TypeSelfIncrements is true for the SERIAL family.
func (d *Informix) TypeSelfIncrements(nativeType string) bool {
	l := strings.ToLower(nativeType)
	return strings.HasPrefix(l, "serial") || strings.HasSuffix(l, "serial")
}

func (d *Informix) SupportsIfNotExists() bool { return true }
func (d *Informix) SupportsTablespaces() bool { return true }

// TablespaceKeyword: Informix places tables IN a dbspace.
func (d *Informix) TablespaceKeyword() TablespaceKeyword { return TablespaceIn }

// ConstraintNameAfterForeignKey is true: Informix names a foreign key after
// the references clause, not before the FOREIGN KEY keyword.
func (d *Informix) ConstraintNameAfterForeignKey() bool { return true }

func (d *Informix) AutoIncrementClause(*core.AutoIncrementConstraint) string {
	// Identity comes from the SERIAL type family; no separate clause.
	return ""
}

func (d *Informix) DefaultMajorVersion() int { return 14 }

func (d *Informix) VersionQuery() string {
	return "SELECT DBINFO('version', 'major') FROM systables WHERE tabid = 1"
}
