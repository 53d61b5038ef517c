package dialect

import (
	"strconv"
	"strings"

	"sqlgen/internal/core"
)

func init() {
	Register("mssql", func() Dialect { return NewMSSQL() })
}

var mssqlTypes = map[string]string{
	"int":       "int",
	"integer":   "int",
	"bigint":    "bigint",
	"smallint":  "smallint",
	"boolean":   "bit",
	"varchar":   "varchar",
	"char":      "char",
	"clob":      "varchar(MAX)",
	"text":      "varchar(MAX)",
	"blob":      "varbinary(MAX)",
	"decimal":   "decimal",
	"float":     "float",
	"double":    "float",
	"date":      "date",
	"datetime":  "datetime2",
	"timestamp": "timestamp",
	"uuid":      "uniqueidentifier",
}

// MSSQL is the capability provider for Microsoft SQL Server.
type MSSQL struct {
	base
}

// NewMSSQL initializes the SQL Server capability provider.
func NewMSSQL() *MSSQL {
	return &MSSQL{base: newBase("mssql", "[", "]")}
}

func (d *MSSQL) NativeType(declared string) string {
	return mapType(declared, mssqlTypes)
}

func (d *MSSQL) SupportsTablespaces() bool { return true }

// TablespaceKeyword places the table on a filegroup.
func (d *MSSQL) TablespaceKeyword() TablespaceKeyword { return TablespaceOn }

func (d *MSSQL) AutoIncrementClause(c *core.AutoIncrementConstraint) string {
	start, increment := int64(1), int64(1)
	if c.StartWith != nil {
		start = *c.StartWith
	}
	if c.IncrementBy != nil {
		increment = *c.IncrementBy
	}
	return "IDENTITY (" + strconv.FormatInt(start, 10) + ", " + strconv.FormatInt(increment, 10) + ")"
}

// RequiresExplicitNull is true for the rowversion-style timestamp type, which
// otherwise defaults to NOT NULL.
func (d *MSSQL) RequiresExplicitNull(nativeType string) bool {
	return strings.Contains(strings.ToLower(nativeType), "timestamp")
}

// NamesDefaultConstraints is true: every default gets a named constraint so it
// can be dropped later.
func (d *MSSQL) NamesDefaultConstraints() bool { return true }

func (d *MSSQL) GenerateDefaultConstraintName(table, column string) string {
	return "DF_" + table + "_" + column
}

func (d *MSSQL) DefaultSchemaName() string { return "dbo" }

func (d *MSSQL) DefaultMajorVersion() int { return 15 }

func (d *MSSQL) VersionQuery() string {
	return "SELECT SERVERPROPERTY('productversion')"
}
