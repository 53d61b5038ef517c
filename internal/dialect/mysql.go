package dialect

import (
	"strconv"
	"strings"

	"sqlgen/internal/core"
)

func init() {
	Register("mysql", func() Dialect { return NewMySQL() })
	Register("mariadb", func() Dialect { return NewMariaDB() })
}

var mysqlTypes = map[string]string{
	"int":       "INT",
	"integer":   "INT",
	"bigint":    "BIGINT",
	"smallint":  "SMALLINT",
	"boolean":   "TINYINT(1)",
	"varchar":   "VARCHAR",
	"char":      "CHAR",
	"clob":      "LONGTEXT",
	"text":      "LONGTEXT",
	"blob":      "LONGBLOB",
	"decimal":   "DECIMAL",
	"float":     "FLOAT",
	"double":    "DOUBLE",
	"date":      "DATE",
	"datetime":  "DATETIME",
	"timestamp": "TIMESTAMP",
	"uuid":      "CHAR(36)",
}

// MySQL is the capability provider for MySQL.
type MySQL struct {
	base
}

// NewMySQL initializes the MySQL capability provider.
func NewMySQL() *MySQL {
	return &MySQL{base: newBase("mysql", "`", "`")}
}

func (d *MySQL) NativeType(declared string) string {
	return mapType(declared, mysqlTypes)
}

// EscapeStringLiteral escapes the characters MySQL treats specially inside a
// single-quoted string.
func (d *MySQL) EscapeStringLiteral(value string) string {
	var b strings.Builder
	b.Grow(len(value) + len(value)/10)
	for _, char := range value {
		switch char {
		case '\'':
			b.WriteString("''")
		case '\\':
			b.WriteString(`\\`)
		case '\x00':
			b.WriteString(`\0`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\x1A':
			b.WriteString(`\Z`)
		default:
			b.WriteRune(char)
		}
	}
	return b.String()
}

func (d *MySQL) SupportsIfNotExists() bool { return true }

// SupportsAutoIncrementBy is false: AUTO_INCREMENT has no per-column
// increment, so incrementBy is rejected during validation.
func (d *MySQL) SupportsAutoIncrementBy() bool { return false }

func (d *MySQL) SupportsPrimaryKeyNames() bool { return false }

func (d *MySQL) AutoIncrementClause(*core.AutoIncrementConstraint) string {
	return "AUTO_INCREMENT"
}

func (d *MySQL) RequiresExplicitNull(string) bool { return true }

func (d *MySQL) InlineColumnComments() bool { return true }
func (d *MySQL) InlineTableComment() bool   { return true }

func (d *MySQL) AutoIncrementColumnsFirstInPrimaryKey() bool { return true }

func (d *MySQL) TableLevelAutoIncrementStart() bool { return true }

func (d *MySQL) TableOptionAutoIncrementStart(value int64) string {
	return "AUTO_INCREMENT=" + strconv.FormatInt(value, 10)
}

func (d *MySQL) DefaultMajorVersion() int { return 8 }
func (d *MySQL) VersionQuery() string     { return "SELECT VERSION()" }

// MariaDB shares MySQL's syntax surface under its own name.
type MariaDB struct {
	MySQL
}

// NewMariaDB initializes the MariaDB capability provider.
func NewMariaDB() *MariaDB {
	d := &MariaDB{MySQL: *NewMySQL()}
	d.base = newBase("mariadb", "`", "`")
	return d
}

func (d *MariaDB) DefaultMajorVersion() int { return 10 }
