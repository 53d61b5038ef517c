package dialect

import "sqlgen/internal/core"

func init() {
	Register("sqlite", func() Dialect { return NewSQLite() })
}

var sqliteTypes = map[string]string{
	"int":       "INTEGER",
	"integer":   "INTEGER",
	"bigint":    "INTEGER",
	"smallint":  "INTEGER",
	"boolean":   "BOOLEAN",
	"varchar":   "TEXT",
	"char":      "TEXT",
	"clob":      "TEXT",
	"text":      "TEXT",
	"blob":      "BLOB",
	"decimal":   "REAL",
	"float":     "REAL",
	"double":    "REAL",
	"date":      "DATE",
	"datetime":  "DATETIME",
	"timestamp": "TIMESTAMP",
	"uuid":      "TEXT",
}

// SQLite is the capability provider for SQLite.
type SQLite struct {
	base
}

// NewSQLite initializes the SQLite capability provider.
func NewSQLite() *SQLite {
	return &SQLite{base: newBase("sqlite", `"`, `"`)}
}

func (d *SQLite) NativeType(declared string) string {
	return mapType(declared, sqliteTypes)
}

func (d *SQLite) SupportsIfNotExists() bool { return true }

// RowidInlinePrimaryKey is true: a single-column INTEGER primary key with
// AUTOINCREMENT must be declared inline on the column, and the table-level
// PRIMARY KEY clause is suppressed for that case.
func (d *SQLite) RowidInlinePrimaryKey() bool { return true }

func (d *SQLite) AutoIncrementClause(*core.AutoIncrementConstraint) string {
	return "AUTOINCREMENT"
}

func (d *SQLite) SupportsAutoIncrementBy() bool { return false }

func (d *SQLite) VersionQuery() string { return "SELECT sqlite_version()" }
func (d *SQLite) DefaultMajorVersion() int { return 3 }
