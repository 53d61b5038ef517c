package dialect

import (
	"strings"

	"sqlgen/internal/core"
)

func init() {
	Register("db2", func() Dialect { return NewDB2() })
	Register("db2z", func() Dialect { return NewDB2z() })
}

var db2Types = map[string]string{
	"int":       "INTEGER",
	"integer":   "INTEGER",
	"bigint":    "BIGINT",
	"smallint":  "SMALLINT",
	"boolean":   "SMALLINT",
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
	"uuid":      "CHAR(36)",
}

// DB2 is the capability provider for Db2 on Linux/Unix/Windows.
type DB2 struct {
	base
}

// NewDB2 initializes the Db2 capability provider.
func NewDB2() *DB2 {
	return &DB2{base: newBase("db2", `"`, `"`)}
}

func (d *DB2) NativeType(declared string) string {
	return mapType(declared, db2Types)
}

func (d *DB2) SupportsTablespaces() bool { return true }

// TablespaceKeyword: Db2 places tables IN a tablespace.
func (d *DB2) TablespaceKeyword() TablespaceKeyword { return TablespaceIn }

func (d *DB2) AutoIncrementClause(c *core.AutoIncrementConstraint) string {
	return identityClause(c, ", ")
}

func (d *DB2) DefaultMajorVersion() int { return 11 }

func (d *DB2) VersionQuery() string {
	return "SELECT service_level FROM TABLE(sysproc.env_get_inst_info())"
}

// DB2z is the capability provider for Db2 for z/OS, which phrases several
// identity and register defaults differently from Db2 LUW.
type DB2z struct {
	DB2
}

// NewDB2z initializes the Db2 for z/OS capability provider.
func NewDB2z() *DB2z {
	d := &DB2z{DB2: *NewDB2()}
	d.base = newBase("db2z", `"`, `"`)
	return d
}

// DefaultValueLeader suppresses the DEFAULT keyword for identity and
// current-timestamp phrasings, which are column attributes rather than
// default expressions on z/OS.
func (d *DB2z) DefaultValueLeader(v core.DefaultValue) string {
	s := v.String()
	if strings.Contains(s, "CURRENT TIMESTAMP") || strings.Contains(s, "IDENTITY GENERATED BY DEFAULT") {
		return " "
	}
	return " DEFAULT "
}

// RenderLiteralDefault rewrites register defaults into their z/OS spellings.
func (d *DB2z) RenderLiteralDefault(value string) string {
	switch {
	case strings.Contains(value, "IDENTITY GENERATED BY DEFAULT"):
		return "GENERATED BY DEFAULT AS IDENTITY"
	case strings.Contains(value, "CURRENT USER"):
		return "SESSION_USER"
	case strings.Contains(value, "CURRENT SQLID"):
		return "CURRENT SQLID"
	default:
		return value
	}
}
