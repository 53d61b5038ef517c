// Package dialect provides per-database capability providers. A Dialect is a
// stateless object answering quoting, type-mapping and feature questions;
// generators query capabilities instead of switching on database products, so
// new dialects are added here without touching generator logic.
package dialect

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"sqlgen/internal/core"
)

// TablespaceKeyword selects the clause keyword a dialect uses to place a
// table in a tablespace.
type TablespaceKeyword string

const (
	TablespaceOn   TablespaceKeyword = "ON"
	TablespaceIn   TablespaceKeyword = "IN"
	TablespaceWord TablespaceKeyword = "TABLESPACE"
)

// Dialect answers capability and syntax questions for one database product.
// Implementations are stateless and safe to share across concurrent
// generation calls. Unsupported features answer with a zero value meaning
// "omit this clause", never an error.
type Dialect interface {
	Name() string

	// Identifier escaping.
	EscapeTableName(catalog, schema, table string) string
	EscapeColumnName(name string) string
	EscapeColumnList(names []string) string
	EscapeConstraintName(name string) string
	EscapeSequenceName(catalog, schema, name string) string
	EscapeObjectName(name string) string
	EscapeStringLiteral(value string) string

	// NativeType maps a generic declared type to the dialect's DDL spelling.
	NativeType(declared string) string
	// AutoIncrementNativeType maps a declared type to the native type an
	// auto-increment column uses when the dialect expresses identity through
	// the type itself (the serial families). Empty means the ordinary
	// NativeType mapping applies and identity is a column clause.
	AutoIncrementNativeType(declared string, majorVersion int) string
	// TypeSelfIncrements reports whether the native type already expresses
	// identity (serial-family types), making an auto-increment clause and an
	// explicit default redundant.
	TypeSelfIncrements(nativeType string) bool

	// Feature flags.
	SupportsIfNotExists() bool
	SupportsAutoIncrement() bool
	SupportsAutoIncrementBy() bool
	SupportsPrimaryKeyNames() bool
	SupportsNotNullConstraintNames() bool
	SupportsTablespaces() bool
	SupportsIndexTablespace() bool
	SupportsInitiallyDeferrable() bool
	SupportsDeferrableForeignKeys() bool
	SupportsRowDependencies() bool
	RequiresExplicitNull(nativeType string) bool

	// Clause helpers.
	AutoIncrementClause(c *core.AutoIncrementConstraint) string
	GeneratePrimaryKeyName(table string) string
	NamesDefaultConstraints() bool
	GenerateDefaultConstraintName(table, column string) string
	DefaultValueLeader(v core.DefaultValue) string
	RenderFunction(fn core.DatabaseFunction) string
	RenderSequenceNext(sequence string) string
	RenderLiteralDefault(value string) string

	// Schema handling.
	DefaultSchemaName() string
	OutputsDefaultSchema() bool
	QualifiesTemporaryTables() bool

	// Syntax-family branches.
	TablespaceKeyword() TablespaceKeyword
	ConstraintNameAfterForeignKey() bool
	NotValidatedPhrase() string
	DeferredForeignKeyPhrase() string
	InlineColumnComments() bool
	InlineTableComment() bool
	AutoIncrementColumnsFirstInPrimaryKey() bool
	RowidInlinePrimaryKey() bool

	// Auto-increment start-value placement.
	TableLevelAutoIncrementStart() bool
	TableOptionAutoIncrementStart(value int64) string
	InlineAutoIncrementStart(majorVersion int) bool

	// Version probing.
	DefaultMajorVersion() int
	VersionQuery() string
}

var (
	registry   = map[string]func() Dialect{}
	registryMu sync.RWMutex
)

// Register adds a dialect constructor under its name.
func Register(name string, ctor func() Dialect) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = ctor
}

// Get returns the dialect registered under name.
func Get(name string) (Dialect, error) {
	registryMu.RLock()
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unsupported dialect %q", name)
	}
	return ctor(), nil
}

// Names returns all registered dialect names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var rePlainIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

// base carries the defaults shared by all dialects. Concrete dialects embed it
// and override only what differs. Methods on base never call other capability
// methods, so overrides stay local to the embedding struct.
type base struct {
	name       string
	quoteStart string
	quoteEnd   string
}

func newBase(name, quoteStart, quoteEnd string) base {
	return base{name: name, quoteStart: quoteStart, quoteEnd: quoteEnd}
}

func (b base) Name() string { return b.name }

// escape quotes the identifier only when it is not a plain identifier, so
// ordinary names appear unquoted in output.
func (b base) escape(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || rePlainIdent.MatchString(name) {
		return name
	}
	escaped := strings.ReplaceAll(name, b.quoteEnd, b.quoteEnd+b.quoteEnd)
	return b.quoteStart + escaped + b.quoteEnd
}

func (b base) qualify(catalog, schema, name string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{catalog, schema, name} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, b.escape(p))
		}
	}
	return strings.Join(parts, ".")
}

func (b base) EscapeTableName(catalog, schema, table string) string {
	return b.qualify("", schema, table)
}

func (b base) EscapeColumnName(name string) string { return b.escape(name) }

func (b base) EscapeColumnList(names []string) string {
	escaped := make([]string, 0, len(names))
	for _, n := range names {
		escaped = append(escaped, b.escape(n))
	}
	return strings.Join(escaped, ", ")
}

func (b base) EscapeConstraintName(name string) string { return b.escape(name) }

func (b base) EscapeSequenceName(catalog, schema, name string) string {
	return b.qualify("", schema, name)
}

func (b base) EscapeObjectName(name string) string { return b.escape(name) }

func (b base) EscapeStringLiteral(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}

func (b base) NativeType(declared string) string {
	return strings.ToUpper(strings.TrimSpace(declared))
}

func (b base) AutoIncrementNativeType(string, int) string { return "" }

func (b base) TypeSelfIncrements(string) bool { return false }

func (b base) SupportsIfNotExists() bool            { return false }
func (b base) SupportsAutoIncrement() bool          { return true }
func (b base) SupportsAutoIncrementBy() bool        { return true }
func (b base) SupportsPrimaryKeyNames() bool        { return true }
func (b base) SupportsNotNullConstraintNames() bool { return false }
func (b base) SupportsTablespaces() bool            { return false }
func (b base) SupportsIndexTablespace() bool        { return false }
func (b base) SupportsInitiallyDeferrable() bool    { return false }
func (b base) SupportsDeferrableForeignKeys() bool  { return true }
func (b base) SupportsRowDependencies() bool        { return false }
func (b base) RequiresExplicitNull(string) bool     { return false }

// AutoIncrementClause renders the SQL standard identity phrasing. Dialects
// with their own keyword override this.
func (b base) AutoIncrementClause(c *core.AutoIncrementConstraint) string {
	return identityClause(c, ", ")
}

// identityClause builds "GENERATED <type> AS IDENTITY (START WITH n<sep>INCREMENT BY m)".
func identityClause(c *core.AutoIncrementConstraint, sep string) string {
	generation := strings.ToUpper(strings.TrimSpace(c.GenerationType))
	if generation == "" {
		generation = "BY DEFAULT"
	}
	clause := "GENERATED " + generation
	if c.DefaultOnNull && generation == "BY DEFAULT" {
		clause += " ON NULL"
	}
	clause += " AS IDENTITY"

	var params []string
	if c.StartWith != nil {
		params = append(params, "START WITH "+strconv.FormatInt(*c.StartWith, 10))
	}
	if c.IncrementBy != nil {
		params = append(params, "INCREMENT BY "+strconv.FormatInt(*c.IncrementBy, 10))
	}
	if len(params) > 0 {
		clause += " (" + strings.Join(params, sep) + ")"
	}
	return clause
}

func (b base) GeneratePrimaryKeyName(table string) string {
	return "PK_" + strings.ToUpper(table)
}

func (b base) NamesDefaultConstraints() bool                    { return false }
func (b base) GenerateDefaultConstraintName(_, _ string) string { return "" }

func (b base) DefaultValueLeader(core.DefaultValue) string { return " DEFAULT " }

func (b base) RenderFunction(fn core.DatabaseFunction) string { return string(fn) }

func (b base) RenderSequenceNext(sequence string) string {
	return "NEXT VALUE FOR " + sequence
}

func (b base) RenderLiteralDefault(value string) string { return value }

func (b base) DefaultSchemaName() string      { return "" }
func (b base) OutputsDefaultSchema() bool     { return true }
func (b base) QualifiesTemporaryTables() bool { return true }

func (b base) TablespaceKeyword() TablespaceKeyword        { return TablespaceWord }
func (b base) ConstraintNameAfterForeignKey() bool         { return false }
func (b base) NotValidatedPhrase() string                  { return "" }
func (b base) DeferredForeignKeyPhrase() string            { return " INITIALLY DEFERRED" }
func (b base) InlineColumnComments() bool                  { return false }
func (b base) InlineTableComment() bool                    { return false }
func (b base) AutoIncrementColumnsFirstInPrimaryKey() bool { return false }
func (b base) RowidInlinePrimaryKey() bool                 { return false }

func (b base) TableLevelAutoIncrementStart() bool         { return false }
func (b base) TableOptionAutoIncrementStart(int64) string { return "" }
func (b base) InlineAutoIncrementStart(int) bool          { return true }

func (b base) DefaultMajorVersion() int { return 0 }
func (b base) VersionQuery() string     { return "" }

var reBaseType = regexp.MustCompile(`(?i)^\s*([a-z0-9_ ]+?)\s*(\(.*\))?\s*$`)

// mapType rewrites the base name of a declared type through the given table,
// preserving any length/precision parameters. Unknown types pass through
// upper-cased.
func mapType(declared string, table map[string]string) string {
	m := reBaseType.FindStringSubmatch(declared)
	if len(m) < 2 {
		return strings.ToUpper(strings.TrimSpace(declared))
	}
	baseName := strings.ToLower(strings.Join(strings.Fields(m[1]), " "))
	params := m[2]
	if native, ok := table[baseName]; ok {
		if params != "" && !strings.Contains(native, "(") {
			return native + params
		}
		return native
	}
	return strings.ToUpper(strings.TrimSpace(declared))
}

// serialFor maps the base name of a declared type onto the dialect's serial
// family, or empty when the type has no serial counterpart. Serial types
// carry no length parameters, so any declared parameters are dropped.
func serialFor(declared string, table map[string]string) string {
	m := reBaseType.FindStringSubmatch(declared)
	if len(m) < 2 {
		return ""
	}
	return table[strings.ToLower(strings.Join(strings.Fields(m[1]), " "))]
}
