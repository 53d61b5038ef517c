package dialect

import (
	"strings"

	"sqlgen/internal/core"
)

func init() {
	Register("sybase", func() Dialect { return NewSybase() })
	Register("asany", func() Dialect { return NewSybaseASA() })
}

var sybaseTypes = map[string]string{
	"int":       "INT",
	"integer":   "INT",
	"bigint":    "BIGINT",
	"smallint":  "SMALLINT",
	"boolean":   "BIT",
	"varchar":   "VARCHAR",
	"char":      "CHAR",
	"clob":      "TEXT",
	"text":      "TEXT",
	"blob":      "IMAGE",
	"decimal":   "DECIMAL",
	"float":     "FLOAT",
	"double":    "DOUBLE PRECISION",
	"date":      "DATE",
	"datetime":  "DATETIME",
	"timestamp": "TIMESTAMP",
	"uuid":      "VARCHAR(36)",
}

// Sybase is the capability provider for Sybase ASE.
type Sybase struct {
	base
}

// NewSybase initializes the Sybase ASE capability provider.
func NewSybase() *Sybase {
	return &Sybase{base: newBase("sybase", "[", "]")}
}

func (d *Sybase) NativeType(declared string) string {
	return mapType(declared, sybaseTypes)
}

// RequiresExplicitNull is true: columns without a NOT NULL constraint must
// carry an explicit NULL token.
func (d *Sybase) RequiresExplicitNull(string) bool { return true }

func (d *Sybase) AutoIncrementClause(*core.AutoIncrementConstraint) string {
	return "IDENTITY"
}

func (d *Sybase) SupportsAutoIncrementBy() bool { return false }

func (d *Sybase) DefaultMajorVersion() int { return 16 }
func (d *Sybase) VersionQuery() string     { return "SELECT @@version" }

// SybaseASA is the capability provider for SQL Anywhere, which diverges from
// ASE on deferrability and computed defaults.
type SybaseASA struct {
	Sybase
}

// NewSybaseASA initializes the SQL Anywhere capability provider.
func NewSybaseASA() *SybaseASA {
	d := &SybaseASA{Sybase: *NewSybase()}
	d.base = newBase("asany", `"`, `"`)
	return d
}

func (d *SybaseASA) SupportsTablespaces() bool { return true }

// TablespaceKeyword places the table ON a dbspace.
func (d *SybaseASA) TablespaceKeyword() TablespaceKeyword { return TablespaceOn }

// SupportsDeferrableForeignKeys is false; deferred checking is requested with
// CHECK ON COMMIT instead.
func (d *SybaseASA) SupportsDeferrableForeignKeys() bool { return false }

func (d *SybaseASA) DeferredForeignKeyPhrase() string { return " CHECK ON COMMIT" }

// DefaultValueLeader suppresses the DEFAULT keyword for COMPUTE defaults,
// which are column expressions rather than default values.
func (d *SybaseASA) DefaultValueLeader(v core.DefaultValue) string {
	if strings.HasPrefix(v.String(), "COMPUTE") {
		return " "
	}
	return " DEFAULT "
}

func (d *SybaseASA) AutoIncrementClause(*core.AutoIncrementConstraint) string {
	return "DEFAULT AUTOINCREMENT"
}
