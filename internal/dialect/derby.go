package dialect

import "sqlgen/internal/core"

func init() {
	Register("derby", func() Dialect { return NewDerby() })
	Register("firebird", func() Dialect { return NewFirebird() })
}

var derbyTypes = map[string]string{
	"int":       "INTEGER",
	"integer":   "INTEGER",
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
	"uuid":      "CHAR(36)",
}

// Derby is the capability provider for Apache Derby.
type Derby struct {
	base
}

// NewDerby initializes the Derby capability provider.
func NewDerby() *Derby {
	return &Derby{base: newBase("derby", `"`, `"`)}
}

func (d *Derby) NativeType(declared string) string {
	return mapType(declared, derbyTypes)
}

func (d *Derby) AutoIncrementClause(c *core.AutoIncrementConstraint) string {
	return identityClause(c, ", ")
}

func (d *Derby) DefaultMajorVersion() int { return 10 }

func (d *Derby) VersionQuery() string {
	return "VALUES SYSCS_UTIL.SYSCS_GET_DATABASE_PROPERTY('DataDictionaryVersion')"
}

var firebirdTypes = map[string]string{
	"int":       "INTEGER",
	"integer":   "INTEGER",
	"bigint":    "BIGINT",
	"smallint":  "SMALLINT",
	"boolean":   "BOOLEAN",
	"varchar":   "VARCHAR",
	"char":      "CHAR",
	"clob":      "BLOB SUB_TYPE TEXT",
	"text":      "BLOB SUB_TYPE TEXT",
	"blob":      "BLOB",
	"decimal":   "DECIMAL",
	"float":     "FLOAT",
	"double":    "DOUBLE PRECISION",
	"date":      "DATE",
	"datetime":  "TIMESTAMP",
	"timestamp": "TIMESTAMP",
	"uuid":      "CHAR(36)",
}

// Firebird is the capability provider for Firebird.
type Firebird struct {
	base
}

// NewFirebird initializes the Firebird capability provider.
func NewFirebird() *Firebird {
	return &Firebird{base: newBase("firebird", `"`, `"`)}
}

func (d *Firebird) NativeType(declared string) string {
	return mapType(declared, firebirdTypes)
}

func (d *Firebird) AutoIncrementClause(c *core.AutoIncrementConstraint) string {
	return identityClause(c, " ")
}

func (d *Firebird) RenderSequenceNext(sequence string) string {
	return "NEXT VALUE FOR " + sequence
}

func (d *Firebird) DefaultMajorVersion() int { return 4 }

func (d *Firebird) VersionQuery() string {
	return "SELECT rdb$get_context('SYSTEM', 'ENGINE_VERSION') FROM rdb$database"
}
