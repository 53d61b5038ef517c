package generator

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"sqlgen/internal/core"
	"sqlgen/internal/dialect"
	"sqlgen/internal/probe"
)

func init() {
	DefaultRegistry().Register(core.StatementCreateTable, NewCreateTableGenerator(nil, nil))
}

// CreateTableGenerator assembles CREATE TABLE statements for every registered
// dialect, branching on capabilities rather than on database products. It is
// stateless across calls; generation is a pure function of the statement, the
// dialect and the probed version.
type CreateTableGenerator struct {
	log    *zap.Logger
	prober probe.Prober
}

// NewCreateTableGenerator returns a generator logging to log and consulting
// prober for the dialect's major version. Both may be nil: logging is then
// dropped and the dialect's default version assumed.
func NewCreateTableGenerator(log *zap.Logger, prober probe.Prober) *CreateTableGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &CreateTableGenerator{log: log, prober: prober}
}

// Priority marks this as the generic fallback implementation.
func (g *CreateTableGenerator) Priority() int { return PriorityDefault }

// Supports is true for every dialect; capability queries handle the rest.
func (g *CreateTableGenerator) Supports(dialect.Dialect) bool { return true }

// Validate checks the statement's structural preconditions for the dialect.
func (g *CreateTableGenerator) Validate(stmt *core.CreateTableStatement, d dialect.Dialect) *core.ValidationErrors {
	if stmt == nil {
		panic("generator: nil statement")
	}
	if d == nil {
		panic("generator: nil dialect")
	}
	errs := &core.ValidationErrors{}
	errs.CheckRequiredField("tableName", stmt.TableName)
	errs.CheckRequiredField("columns", stmt.Columns)

	for _, c := range stmt.AutoIncrementConstraints {
		if c == nil {
			continue
		}
		if !d.SupportsAutoIncrementBy() {
			errs.CheckDisallowedField("incrementBy", c.IncrementBy, d.Name())
		}
	}
	return errs
}

var reTrailingSeparator = regexp.MustCompile(`,\s*$`)

// Generate produces the CREATE TABLE statement followed by any auxiliary
// statements the dialect needs, in the order they were recorded.
func (g *CreateTableGenerator) Generate(ctx context.Context, stmt *core.CreateTableStatement, d dialect.Dialect) []core.Sql {
	if stmt == nil {
		panic("generator: nil statement")
	}
	if d == nil {
		panic("generator: nil dialect")
	}

	// The version is probed at most once per call, and only when a column
	// actually needs version-dependent syntax.
	probedVersion := -1
	version := func() int {
		if probedVersion < 0 {
			probedVersion = g.majorVersion(ctx, d)
		}
		return probedVersion
	}

	var auxiliary []core.Sql
	var b strings.Builder
	b.WriteString("CREATE ")

	if tableType := strings.TrimSpace(stmt.TableType); tableType != "" {
		b.WriteString(strings.ToUpper(tableType))
		b.WriteString(" ")
	}
	b.WriteString("TABLE ")

	if stmt.IfNotExists && d.SupportsIfNotExists() {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(g.tableName(stmt, d))
	b.WriteString(" (")

	singleColumnPK := stmt.PrimaryKey != nil && len(stmt.PrimaryKey.Columns) == 1
	pkAutoIncrement := false
	var tableStartWith *int64
	var autoIncrementColumns []string

	for i, column := range stmt.Columns {
		autoIncrement := stmt.AutoIncrement(column)

		// Type resolution is auto-increment aware: dialects that express
		// identity through the type itself map integer types onto their
		// serial family here.
		nativeType := ""
		if declared := stmt.ColumnTypes[column]; strings.TrimSpace(declared) != "" {
			if autoIncrement != nil {
				nativeType = d.AutoIncrementNativeType(declared, version())
			}
			if nativeType == "" {
				nativeType = d.NativeType(declared)
			}
		}

		b.WriteString(d.EscapeColumnName(column))
		if nativeType != "" {
			b.WriteString(" ")
			b.WriteString(nativeType)
		}

		if autoIncrement != nil {
			autoIncrementColumns = append(autoIncrementColumns, column)
		}
		isPKColumn := stmt.PrimaryKey != nil && stmt.PrimaryKey.HasColumn(column)
		pkAutoIncrement = pkAutoIncrement || (isPKColumn && autoIncrement != nil)

		// Rowid-style engines inline a single-column auto-increment primary
		// key on the column itself; the table-level clause is skipped below.
		if d.RowidInlinePrimaryKey() && singleColumnPK && isPKColumn && autoIncrement != nil {
			pkName := strings.TrimSpace(stmt.PrimaryKey.Name)
			if pkName == "" {
				pkName = d.GeneratePrimaryKeyName(stmt.TableName)
			}
			if pkName != "" {
				b.WriteString(" CONSTRAINT ")
				b.WriteString(d.EscapeConstraintName(pkName))
			}
			b.WriteString(" PRIMARY KEY")
		}

		// Serial-family types carry their own sequence default; an explicit
		// default would conflict with it.
		if dv, ok := stmt.DefaultValues[column]; ok && nativeType != "" && !d.TypeSelfIncrements(nativeType) {
			g.writeDefaultValue(&b, stmt, d, column, dv)
		}

		if autoIncrement != nil {
			switch {
			case d.TypeSelfIncrements(nativeType):
				// The type mapping already expresses identity; only an
				// explicit start value still needs routing.
				if autoIncrement.StartWith != nil {
					g.recordStartWith(stmt, d, column, autoIncrement, version(), &tableStartWith, &auxiliary)
				}
			case d.SupportsAutoIncrement():
				if clause := d.AutoIncrementClause(autoIncrement); clause != "" {
					b.WriteString(" ")
					b.WriteString(clause)
				}
				if autoIncrement.StartWith != nil {
					g.recordStartWith(stmt, d, column, autoIncrement, version(), &tableStartWith, &auxiliary)
				}
			default:
				g.log.Warn("dialect does not support auto-increment columns; clause omitted",
					zap.String("dialect", d.Name()),
					zap.String("table", d.EscapeTableName(stmt.CatalogName, stmt.SchemaName, stmt.TableName)),
					zap.String("column", column))
			}
		}

		g.writeNullability(&b, stmt, d, column, nativeType)

		if d.InlineColumnComments() {
			if remark := stmt.ColumnRemarks[column]; remark != "" {
				b.WriteString(" COMMENT '")
				b.WriteString(d.EscapeStringLiteral(remark))
				b.WriteString("'")
			}
		}

		if i < len(stmt.Columns)-1 {
			b.WriteString(", ")
		}
	}

	b.WriteString(",")

	if !(d.RowidInlinePrimaryKey() && singleColumnPK && pkAutoIncrement) {
		g.writePrimaryKey(&b, stmt, d, autoIncrementColumns)
	}

	for _, fk := range stmt.ForeignKeys {
		g.writeForeignKey(&b, d, fk)
	}

	g.writeUniqueConstraints(&b, stmt, d)

	// The column/constraint list ends in a separator; strip it so the output
	// never contains ", )".
	sql := reTrailingSeparator.ReplaceAllString(b.String(), "") + ")"

	if tableStartWith != nil {
		g.log.Info("using last start value as table-level auto-increment option",
			zap.String("dialect", d.Name()),
			zap.Int64("startWith", *tableStartWith))
		sql += " " + d.TableOptionAutoIncrementStart(*tableStartWith)
	}

	if stmt.Tablespace != "" && d.SupportsTablespaces() {
		sql += " " + string(d.TablespaceKeyword()) + " " + stmt.Tablespace
	}

	if d.InlineTableComment() && stmt.Remarks != "" {
		sql += " COMMENT='" + d.EscapeStringLiteral(stmt.Remarks) + "'"
	}

	if d.SupportsRowDependencies() && stmt.RowDependencies {
		sql += " ROWDEPENDENCIES"
	}

	primary := core.Sql{
		Statement: sql,
		Affects:   core.TableObject(stmt.CatalogName, stmt.SchemaName, stmt.TableName),
	}
	return append([]core.Sql{primary}, auxiliary...)
}

// tableName schema-qualifies the table unless the dialect scopes temporary
// tables outside normal schemas.
func (g *CreateTableGenerator) tableName(stmt *core.CreateTableStatement, d dialect.Dialect) string {
	temporary := strings.Contains(strings.ToLower(stmt.TableType), "temp")
	if temporary && !d.QualifiesTemporaryTables() {
		return d.EscapeObjectName(stmt.TableName)
	}
	return d.EscapeTableName(stmt.CatalogName, stmt.SchemaName, stmt.TableName)
}

func (g *CreateTableGenerator) writeDefaultValue(b *strings.Builder, stmt *core.CreateTableStatement, d dialect.Dialect, column string, dv core.DefaultValue) {
	if d.NamesDefaultConstraints() {
		name := stmt.DefaultValueConstraintNames[column]
		if strings.TrimSpace(name) == "" {
			name = d.GenerateDefaultConstraintName(stmt.TableName, column)
		}
		b.WriteString(" CONSTRAINT ")
		b.WriteString(d.EscapeObjectName(name))
	}

	b.WriteString(d.DefaultValueLeader(dv))

	switch v := dv.(type) {
	case core.DatabaseFunction:
		b.WriteString(d.RenderFunction(v))
	case core.SequenceNextValue:
		b.WriteString(d.RenderSequenceNext(string(v)))
	default:
		b.WriteString(d.RenderLiteralDefault(dv.String()))
	}
}

// recordStartWith routes an explicit start value to wherever the dialect can
// express it: a table-level option, inline (nothing extra to do), or an
// auxiliary sequence statement for versions lacking inline support.
func (g *CreateTableGenerator) recordStartWith(stmt *core.CreateTableStatement, d dialect.Dialect, column string, c *core.AutoIncrementConstraint, majorVersion int, tableStartWith **int64, auxiliary *[]core.Sql) {
	if d.TableLevelAutoIncrementStart() {
		// Last processed column wins when several request a start value.
		*tableStartWith = c.StartWith
		return
	}
	if d.InlineAutoIncrementStart(majorVersion) {
		return
	}
	sequence := stmt.TableName + "_" + column + "_seq"
	*auxiliary = append(*auxiliary, core.Sql{
		Statement: "ALTER SEQUENCE " + d.EscapeSequenceName(stmt.CatalogName, stmt.SchemaName, sequence) +
			" START WITH " + strconv.FormatInt(*c.StartWith, 10),
		Affects: core.SequenceObject(stmt.CatalogName, stmt.SchemaName, sequence),
	})
}

// majorVersion asks the prober and degrades to the dialect's default on
// absence or failure; a failed probe never aborts generation.
func (g *CreateTableGenerator) majorVersion(ctx context.Context, d dialect.Dialect) int {
	if g.prober == nil {
		return d.DefaultMajorVersion()
	}
	version, err := g.prober.MajorVersion(ctx)
	if err != nil {
		g.log.Debug("version probe failed; assuming default",
			zap.String("dialect", d.Name()),
			zap.Int("default", d.DefaultMajorVersion()),
			zap.Error(err))
		return d.DefaultMajorVersion()
	}
	return version
}

func (g *CreateTableGenerator) writeNullability(b *strings.Builder, stmt *core.CreateTableStatement, d dialect.Dialect, column, nativeType string) {
	nn := stmt.NotNullColumns[column]
	if nn == nil {
		// A few dialects require an explicit NULL token for specific types.
		if nativeType != "" && d.RequiresExplicitNull(nativeType) {
			b.WriteString(" NULL")
		}
		return
	}

	name := strings.TrimSpace(nn.Name)
	if name != "" && d.SupportsNotNullConstraintNames() {
		b.WriteString(" CONSTRAINT ")
		b.WriteString(d.EscapeConstraintName(name))
	}
	b.WriteString(" NOT NULL")
	if !nn.Validate {
		b.WriteString(d.NotValidatedPhrase())
	}
}

func (g *CreateTableGenerator) writePrimaryKey(b *strings.Builder, stmt *core.CreateTableStatement, d dialect.Dialect, autoIncrementColumns []string) {
	pk := stmt.PrimaryKey
	if pk == nil || len(pk.Columns) == 0 {
		return
	}

	if d.SupportsPrimaryKeyNames() {
		name := strings.TrimSpace(pk.Name)
		if name == "" {
			name = d.GeneratePrimaryKeyName(stmt.TableName)
		}
		if name != "" {
			b.WriteString(" CONSTRAINT ")
			b.WriteString(d.EscapeConstraintName(name))
		}
	}
	b.WriteString(" PRIMARY KEY (")
	b.WriteString(d.EscapeColumnList(primaryKeyColumns(pk.Columns, d, autoIncrementColumns)))
	b.WriteString(")")

	if d.SupportsIndexTablespace() && strings.TrimSpace(pk.Tablespace) != "" {
		b.WriteString(" USING INDEX TABLESPACE ")
		b.WriteString(pk.Tablespace)
	}
	if !pk.Validate {
		b.WriteString(d.NotValidatedPhrase())
	}
	if d.SupportsInitiallyDeferrable() {
		if pk.InitiallyDeferred {
			b.WriteString(" INITIALLY DEFERRED")
		}
		if pk.Deferrable {
			b.WriteString(" DEFERRABLE")
		}
	}
	b.WriteString(",")
}

// primaryKeyColumns reorders the key columns when the dialect requires
// auto-increment columns first, keeping their declared auto-increment order
// and appending the rest in original order. The input slice is never mutated.
func primaryKeyColumns(pkColumns []string, d dialect.Dialect, autoIncrementColumns []string) []string {
	if !d.AutoIncrementColumnsFirstInPrimaryKey() {
		return pkColumns
	}
	inPK := make(map[string]bool, len(pkColumns))
	for _, c := range pkColumns {
		inPK[c] = true
	}
	sorted := make([]string, 0, len(pkColumns))
	leading := make(map[string]bool, len(autoIncrementColumns))
	for _, c := range autoIncrementColumns {
		if inPK[c] {
			sorted = append(sorted, c)
			leading[c] = true
		}
	}
	for _, c := range pkColumns {
		if !leading[c] {
			sorted = append(sorted, c)
		}
	}
	return sorted
}

func (g *CreateTableGenerator) writeForeignKey(b *strings.Builder, d dialect.Dialect, fk *core.ForeignKeyConstraint) {
	if fk == nil {
		return
	}

	if !d.ConstraintNameAfterForeignKey() {
		b.WriteString(" CONSTRAINT ")
		b.WriteString(d.EscapeConstraintName(fk.Name))
	}

	b.WriteString(" FOREIGN KEY (")
	b.WriteString(d.EscapeColumnName(fk.Column))
	b.WriteString(") REFERENCES ")

	if references := strings.TrimSpace(fk.References); references != "" {
		if !strings.Contains(references, ".") && d.DefaultSchemaName() != "" && d.OutputsDefaultSchema() {
			references = d.EscapeObjectName(d.DefaultSchemaName()) + "." + references
		}
		b.WriteString(references)
	} else {
		b.WriteString(d.EscapeTableName(fk.ReferencedCatalog, fk.ReferencedSchema, fk.ReferencedTable))
		b.WriteString("(")
		b.WriteString(d.EscapeColumnList(fk.ReferencedColumns))
		b.WriteString(")")
	}

	if fk.DeleteCascade {
		b.WriteString(" ON DELETE CASCADE")
	}

	if d.ConstraintNameAfterForeignKey() {
		b.WriteString(" CONSTRAINT ")
		b.WriteString(d.EscapeConstraintName(fk.Name))
	}

	if fk.InitiallyDeferred {
		b.WriteString(d.DeferredForeignKeyPhrase())
	}
	if fk.Deferrable && d.SupportsDeferrableForeignKeys() {
		b.WriteString(" DEFERRABLE")
	}
	if !fk.Validate {
		b.WriteString(d.NotValidatedPhrase())
	}

	b.WriteString(",")
}

// writeUniqueConstraints merges same-named constraints into one clause via a
// generation-local accumulator; the caller's statement is never mutated.
// Unnamed constraints come first in declared order, then merged named ones in
// first-seen-name order.
func (g *CreateTableGenerator) writeUniqueConstraints(b *strings.Builder, stmt *core.CreateTableStatement, d dialect.Dialect) {
	var unnamed []*core.UniqueConstraint
	named := make(map[string]*core.UniqueConstraint)
	var nameOrder []string

	for _, uc := range stmt.UniqueConstraints {
		if uc == nil {
			continue
		}
		if uc.Name == "" {
			unnamed = append(unnamed, uc)
			continue
		}
		existing := named[uc.Name]
		if existing == nil {
			clone := *uc
			clone.Columns = append([]string(nil), uc.Columns...)
			named[uc.Name] = &clone
			nameOrder = append(nameOrder, uc.Name)
			continue
		}
		for _, col := range uc.Columns {
			seen := false
			for _, have := range existing.Columns {
				if have == col {
					seen = true
					break
				}
			}
			if !seen {
				existing.Columns = append(existing.Columns, col)
			}
		}
		if uc.Validate {
			existing.Validate = true
		}
	}

	ordered := make([]*core.UniqueConstraint, 0, len(unnamed)+len(nameOrder))
	ordered = append(ordered, unnamed...)
	for _, name := range nameOrder {
		ordered = append(ordered, named[name])
	}

	for _, uc := range ordered {
		if uc.Name != "" {
			b.WriteString(" CONSTRAINT ")
			b.WriteString(d.EscapeConstraintName(uc.Name))
		}
		b.WriteString(" UNIQUE (")
		b.WriteString(d.EscapeColumnList(uc.Columns))
		b.WriteString(")")
		if !uc.Validate {
			b.WriteString(d.NotValidatedPhrase())
		}
		b.WriteString(",")
	}
}
