package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlgen/internal/core"
	"sqlgen/internal/dialect"
	"sqlgen/internal/probe"
)

func int64p(v int64) *int64 { return &v }

func mustDialect(t *testing.T, name string) dialect.Dialect {
	t.Helper()
	d, err := dialect.Get(name)
	require.NoError(t, err)
	return d
}

func basicStatement() *core.CreateTableStatement {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int").AddColumn("name", "varchar(50)")
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "id"})
	stmt.PrimaryKey = core.NewPrimaryKeyConstraint("", "id")
	return stmt
}

func generate(t *testing.T, stmt *core.CreateTableStatement, dialectName string) []core.Sql {
	t.Helper()
	g := NewCreateTableGenerator(nil, nil)
	d := mustDialect(t, dialectName)
	errs := g.Validate(stmt, d)
	require.False(t, errs.HasErrors(), errs.Error())
	return g.Generate(context.Background(), stmt, d)
}

func TestGenerateMySQLEndToEnd(t *testing.T) {
	out := generate(t, basicStatement(), "mysql")

	require.Len(t, out, 1)
	assert.Equal(t,
		"CREATE TABLE T (id INT AUTO_INCREMENT NULL, name VARCHAR(50) NULL, PRIMARY KEY (id))",
		out[0].Statement)
	assert.Equal(t, "T", out[0].Affects.QualifiedName())
}

func TestGenerateIsIdempotent(t *testing.T) {
	stmt := basicStatement()

	first := generate(t, stmt, "oracle")
	second := generate(t, stmt, "oracle")

	assert.Equal(t, first, second)
}

func TestColumnOrderMatchesDeclarationOnEveryDialect(t *testing.T) {
	for _, name := range dialect.Names() {
		stmt := core.NewCreateTableStatement("", "", "t")
		stmt.AddColumn("alpha", "int").AddColumn("beta", "varchar(10)").AddColumn("gamma", "int")

		out := generate(t, stmt, name)

		sql := out[0].Statement
		alpha := strings.Index(sql, "alpha")
		beta := strings.Index(sql, "beta")
		gamma := strings.Index(sql, "gamma")
		assert.True(t, alpha < beta && beta < gamma, "dialect %s: %s", name, sql)
	}
}

func TestGeneratedStatementIsWellFormedOnEveryDialect(t *testing.T) {
	for _, name := range dialect.Names() {
		stmt := core.NewCreateTableStatement("", "app", "orders")
		stmt.IfNotExists = true
		stmt.Tablespace = "big_space"
		stmt.Remarks = "order data"
		stmt.AddColumn("id", "bigint").AddColumn("status", "varchar(16)").AddColumn("created", "timestamp")
		stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "id", StartWith: int64p(100)})
		stmt.PrimaryKey = core.NewPrimaryKeyConstraint("pk_orders", "id")
		stmt.SetNotNull("status", core.NewNotNullConstraint("nn_status"))
		stmt.SetDefaultValue("status", core.LiteralValue("'new'"))
		stmt.SetColumnRemark("status", "state machine")
		fk := core.NewForeignKeyConstraint("fk_customer", "customer_id")
		fk.ReferencedTable = "customers"
		fk.ReferencedColumns = []string{"id"}
		fk.DeleteCascade = true
		stmt.AddColumn("customer_id", "bigint")
		stmt.AddForeignKey(fk)
		stmt.AddUnique(core.NewUniqueConstraint("uq_status", "status"))

		out := generate(t, stmt, name)

		require.NotEmpty(t, out, "dialect %s", name)
		sql := out[0].Statement
		assert.True(t, strings.HasPrefix(sql, "CREATE TABLE "), "dialect %s: %s", name, sql)
		assert.NotContains(t, sql, ", )", "dialect %s", name)
		assert.NotContains(t, sql, ",)", "dialect %s", name)
		assert.Equal(t, strings.Count(sql, "("), strings.Count(sql, ")"), "dialect %s: %s", name, sql)
	}
}

func TestSQLiteInlinesSingleColumnAutoIncrementPrimaryKey(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int").AddColumn("name", "text")
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "id"})
	stmt.PrimaryKey = core.NewPrimaryKeyConstraint("", "id")

	out := generate(t, stmt, "sqlite")

	require.Len(t, out, 1)
	assert.Equal(t,
		"CREATE TABLE T (id INTEGER CONSTRAINT PK_T PRIMARY KEY AUTOINCREMENT, name TEXT)",
		out[0].Statement)
	// The table-level clause must not appear in addition to the inline one.
	assert.Equal(t, 1, strings.Count(out[0].Statement, "PRIMARY KEY"))
}

func TestSQLiteMultiColumnPrimaryKeyStaysTableLevel(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("a", "int").AddColumn("b", "int")
	stmt.PrimaryKey = core.NewPrimaryKeyConstraint("pk_t", "a", "b")

	out := generate(t, stmt, "sqlite")

	assert.Contains(t, out[0].Statement, " CONSTRAINT pk_t PRIMARY KEY (a, b)")
}

func TestNamedNotNullOnSupportingDialect(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("status", "varchar(10)")
	stmt.SetNotNull("status", core.NewNotNullConstraint("nn_status"))

	out := generate(t, stmt, "oracle")

	assert.Contains(t, out[0].Statement, "status VARCHAR2(10) CONSTRAINT nn_status NOT NULL")
}

func TestNamedNotNullDroppedSilentlyWithoutSupport(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("status", "varchar(10)")
	stmt.SetNotNull("status", core.NewNotNullConstraint("nn_status"))

	out := generate(t, stmt, "mysql")

	assert.Contains(t, out[0].Statement, "status VARCHAR(10) NOT NULL")
	assert.NotContains(t, out[0].Statement, "nn_status")
}

func TestNotNullNoValidateOnOracle(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("status", "varchar(10)")
	nn := core.NewNotNullConstraint("nn_status")
	nn.Validate = false
	stmt.SetNotNull("status", nn)

	out := generate(t, stmt, "oracle")

	assert.Contains(t, out[0].Statement, "CONSTRAINT nn_status NOT NULL ENABLE NOVALIDATE")
}

func TestExplicitNullForMSSQLTimestamp(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("rv", "timestamp").AddColumn("n", "int")

	out := generate(t, stmt, "mssql")

	assert.Contains(t, out[0].Statement, "rv timestamp NULL")
	assert.NotContains(t, out[0].Statement, "n int NULL")
}

func TestUniqueConstraintsMergedByName(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("colA", "int").AddColumn("colB", "int")
	first := core.NewUniqueConstraint("U1", "colA")
	first.Validate = false
	second := core.NewUniqueConstraint("U1", "colB")
	second.Validate = false
	stmt.AddUnique(first)
	stmt.AddUnique(second)

	out := generate(t, stmt, "oracle")

	sql := out[0].Statement
	assert.Equal(t, 1, strings.Count(sql, "UNIQUE"))
	assert.Contains(t, sql, "CONSTRAINT U1 UNIQUE (colA, colB)")
	// Neither contributor asked for validation.
	assert.Contains(t, sql, "UNIQUE (colA, colB) ENABLE NOVALIDATE")
}

func TestUniqueMergeValidatesWhenAnyContributorDoes(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("colA", "int").AddColumn("colB", "int")
	first := core.NewUniqueConstraint("U1", "colA")
	first.Validate = false
	stmt.AddUnique(first)
	stmt.AddUnique(core.NewUniqueConstraint("U1", "colB"))

	out := generate(t, stmt, "oracle")

	assert.Contains(t, out[0].Statement, "CONSTRAINT U1 UNIQUE (colA, colB)")
	assert.NotContains(t, out[0].Statement, "NOVALIDATE")
}

func TestUniqueMergeDoesNotMutateStatement(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("colA", "int").AddColumn("colB", "int")
	first := core.NewUniqueConstraint("U1", "colA")
	stmt.AddUnique(first)
	stmt.AddUnique(core.NewUniqueConstraint("U1", "colB"))

	generate(t, stmt, "oracle")

	assert.Equal(t, []string{"colA"}, first.Columns)
	require.Len(t, stmt.UniqueConstraints, 2)
}

func TestUnnamedUniqueConstraintsComeFirst(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("a", "int").AddColumn("b", "int")
	stmt.AddUnique(core.NewUniqueConstraint("named_uq", "a"))
	stmt.AddUnique(core.NewUniqueConstraint("", "b"))

	out := generate(t, stmt, "postgresql")

	sql := out[0].Statement
	unnamed := strings.Index(sql, "UNIQUE (b)")
	named := strings.Index(sql, "CONSTRAINT named_uq UNIQUE (a)")
	require.NotEqual(t, -1, unnamed)
	require.NotEqual(t, -1, named)
	assert.Less(t, unnamed, named)
}

func TestForeignKeyRawReferencesGetsDefaultSchema(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("org_id", "int")
	fk := core.NewForeignKeyConstraint("fk_org", "org_id")
	fk.References = "orgs(id)"
	stmt.AddForeignKey(fk)

	out := generate(t, stmt, "mssql")

	assert.Contains(t, out[0].Statement, "CONSTRAINT fk_org FOREIGN KEY (org_id) REFERENCES dbo.orgs(id)")
}

func TestForeignKeyQualifiedReferencesLeftAlone(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("org_id", "int")
	fk := core.NewForeignKeyConstraint("fk_org", "org_id")
	fk.References = "crm.orgs(id)"
	stmt.AddForeignKey(fk)

	out := generate(t, stmt, "mssql")

	assert.Contains(t, out[0].Statement, "REFERENCES crm.orgs(id)")
	assert.NotContains(t, out[0].Statement, "dbo.crm")
}

func TestForeignKeyRawReferencesWithDeferrability(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("org_id", "int")
	fk := core.NewForeignKeyConstraint("fk_org", "org_id")
	fk.References = "orgs(id)"
	fk.InitiallyDeferred = true
	fk.Deferrable = true
	stmt.AddForeignKey(fk)

	out := generate(t, stmt, "postgresql")

	assert.Contains(t, out[0].Statement,
		"CONSTRAINT fk_org FOREIGN KEY (org_id) REFERENCES orgs(id) INITIALLY DEFERRED DEFERRABLE")
}

func TestForeignKeyExplicitTarget(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("org_id", "int")
	fk := core.NewForeignKeyConstraint("fk_org", "org_id")
	fk.ReferencedSchema = "crm"
	fk.ReferencedTable = "orgs"
	fk.ReferencedColumns = []string{"id"}
	fk.DeleteCascade = true
	stmt.AddForeignKey(fk)

	out := generate(t, stmt, "postgresql")

	assert.Contains(t, out[0].Statement,
		"CONSTRAINT fk_org FOREIGN KEY (org_id) REFERENCES crm.orgs(id) ON DELETE CASCADE")
}

func TestInformixNamesForeignKeyAfterReferences(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("org_id", "int")
	fk := core.NewForeignKeyConstraint("fk_org", "org_id")
	fk.ReferencedTable = "orgs"
	fk.ReferencedColumns = []string{"id"}
	stmt.AddForeignKey(fk)

	out := generate(t, stmt, "informix")

	assert.Contains(t, out[0].Statement, "FOREIGN KEY (org_id) REFERENCES orgs(id) CONSTRAINT fk_org")
	assert.NotContains(t, out[0].Statement, "CONSTRAINT fk_org FOREIGN KEY")
}

func TestSybaseASADeferredForeignKey(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("org_id", "int")
	fk := core.NewForeignKeyConstraint("fk_org", "org_id")
	fk.ReferencedTable = "orgs"
	fk.ReferencedColumns = []string{"id"}
	fk.InitiallyDeferred = true
	fk.Deferrable = true
	stmt.AddForeignKey(fk)

	out := generate(t, stmt, "asany")

	assert.Contains(t, out[0].Statement, "CHECK ON COMMIT")
	assert.NotContains(t, out[0].Statement, "DEFERRABLE")
}

func TestPostgresDeferredForeignKey(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("org_id", "int")
	fk := core.NewForeignKeyConstraint("fk_org", "org_id")
	fk.ReferencedTable = "orgs"
	fk.ReferencedColumns = []string{"id"}
	fk.InitiallyDeferred = true
	fk.Deferrable = true
	stmt.AddForeignKey(fk)

	out := generate(t, stmt, "postgresql")

	assert.Contains(t, out[0].Statement, " INITIALLY DEFERRED DEFERRABLE")
}

func TestPostgresOldVersionEmitsAuxiliarySequenceStatement(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "id", StartWith: int64p(5)})

	g := NewCreateTableGenerator(nil, probe.Fixed(9))
	out := g.Generate(context.Background(), stmt, mustDialect(t, "postgresql"))

	require.Len(t, out, 2)
	assert.Equal(t, "CREATE TABLE T (id SERIAL)", out[0].Statement)
	assert.Equal(t, "ALTER SEQUENCE T_id_seq START WITH 5", out[1].Statement)
	require.NotNil(t, out[1].Affects)
	assert.Equal(t, core.ObjectSequence, out[1].Affects.Kind)
}

func TestPostgresModernVersionSkipsAuxiliaryStatement(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "id", StartWith: int64p(5)})

	g := NewCreateTableGenerator(nil, probe.Fixed(14))
	out := g.Generate(context.Background(), stmt, mustDialect(t, "postgresql"))

	require.Len(t, out, 1)
	assert.Equal(t,
		"CREATE TABLE T (id INTEGER GENERATED BY DEFAULT AS IDENTITY (START WITH 5))",
		out[0].Statement)
}

type failingProber struct{}

func (failingProber) MajorVersion(context.Context) (int, error) {
	return 0, errors.New("connection refused")
}

func TestProbeFailureFallsBackToDefaultVersion(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "id", StartWith: int64p(5)})

	g := NewCreateTableGenerator(nil, failingProber{})
	out := g.Generate(context.Background(), stmt, mustDialect(t, "postgresql"))

	// Default major version is 9: serial mapping plus the sequence statement.
	require.Len(t, out, 2)
	assert.Contains(t, out[0].Statement, "id SERIAL")
	assert.Contains(t, out[1].Statement, "ALTER SEQUENCE")
}

func TestPostgresIntegerAutoIncrementBecomesSerial(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int").AddColumn("ref", "bigint")
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "id"})

	g := NewCreateTableGenerator(nil, probe.Fixed(9))
	out := g.Generate(context.Background(), stmt, mustDialect(t, "postgresql"))

	require.Len(t, out, 1)
	assert.Equal(t, "CREATE TABLE T (id SERIAL, ref BIGINT)", out[0].Statement)
}

func TestPostgresModernIntegerAutoIncrementUsesIdentity(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "id"})

	g := NewCreateTableGenerator(nil, probe.Fixed(14))
	out := g.Generate(context.Background(), stmt, mustDialect(t, "postgresql"))

	require.Len(t, out, 1)
	assert.Equal(t, "CREATE TABLE T (id INTEGER GENERATED BY DEFAULT AS IDENTITY)", out[0].Statement)
}

func TestInformixIntegerAutoIncrementBecomesSerial(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int").AddColumn("big", "bigint")
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "id"})
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "big"})

	out := generate(t, stmt, "informix")

	require.Len(t, out, 1)
	assert.Equal(t, "CREATE TABLE T (id SERIAL, big SERIAL8)", out[0].Statement)
}

func TestPostgresSerialSuppressesDefaultAndClause(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "serial")
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "id"})
	stmt.SetDefaultValue("id", core.LiteralValue("1"))

	out := generate(t, stmt, "postgresql")

	require.Len(t, out, 1)
	assert.Equal(t, "CREATE TABLE T (id SERIAL)", out[0].Statement)
}

func TestMySQLStartWithBecomesTableOption(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "id", StartWith: int64p(10)})

	out := generate(t, stmt, "mysql")

	require.Len(t, out, 1)
	assert.True(t, strings.HasSuffix(out[0].Statement, ") AUTO_INCREMENT=10"), out[0].Statement)
}

func TestMySQLMultipleStartWithLastWins(t *testing.T) {
	// Only one table-level start value can exist; the last processed column
	// wins for an ambiguous multi-column request.
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("a", "int").AddColumn("b", "int")
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "a", StartWith: int64p(10)})
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "b", StartWith: int64p(20)})

	out := generate(t, stmt, "mysql")

	assert.Contains(t, out[0].Statement, "AUTO_INCREMENT=20")
	assert.NotContains(t, out[0].Statement, "AUTO_INCREMENT=10")
}

func TestMySQLPrimaryKeyOrdersAutoIncrementColumnsFirst(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("a", "int").AddColumn("b", "int").AddColumn("c", "int")
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "c"})
	stmt.PrimaryKey = core.NewPrimaryKeyConstraint("", "a", "b", "c")

	out := generate(t, stmt, "mysql")

	assert.Contains(t, out[0].Statement, "PRIMARY KEY (c, a, b)")
}

func TestAutoIncrementUnsupportedWarnsAndOmits(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	stmt.AddAutoIncrement(&core.AutoIncrementConstraint{ColumnName: "id"})

	g := NewCreateTableGenerator(nil, nil)
	out := g.Generate(context.Background(), stmt, noAutoIncrementDialect{mustDialect(t, "db2")})

	require.Len(t, out, 1)
	assert.Equal(t, "CREATE TABLE T (id INTEGER)", out[0].Statement)
}

// noAutoIncrementDialect masks auto-increment support for warning-path tests.
type noAutoIncrementDialect struct {
	dialect.Dialect
}

func (noAutoIncrementDialect) SupportsAutoIncrement() bool { return false }

func TestOracleTableLevelOptions(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	stmt.Tablespace = "users_ts"
	stmt.RowDependencies = true

	out := generate(t, stmt, "oracle")

	assert.True(t, strings.HasSuffix(out[0].Statement, ") TABLESPACE users_ts ROWDEPENDENCIES"), out[0].Statement)
}

func TestPrimaryKeyIndexTablespaceOnOracle(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	pk := core.NewPrimaryKeyConstraint("pk_t", "id")
	pk.Tablespace = "idx_ts"
	stmt.PrimaryKey = pk

	out := generate(t, stmt, "oracle")

	assert.Contains(t, out[0].Statement, "PRIMARY KEY (id) USING INDEX TABLESPACE idx_ts")
}

func TestPrimaryKeyNotValidatedOnOracle(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	pk := core.NewPrimaryKeyConstraint("pk_t", "id")
	pk.Validate = false
	stmt.PrimaryKey = pk

	out := generate(t, stmt, "oracle")

	assert.Contains(t, out[0].Statement, "PRIMARY KEY (id) ENABLE NOVALIDATE")
}

func TestDB2TablespaceUsesIn(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	stmt.Tablespace = "ts1"

	out := generate(t, stmt, "db2")

	assert.True(t, strings.HasSuffix(out[0].Statement, ") IN ts1"), out[0].Statement)
}

func TestMySQLInlineComments(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	stmt.SetColumnRemark("id", "it's the key")
	stmt.Remarks = "main table"

	out := generate(t, stmt, "mysql")

	assert.Contains(t, out[0].Statement, "COMMENT 'it''s the key'")
	assert.True(t, strings.HasSuffix(out[0].Statement, "COMMENT='main table'"), out[0].Statement)
}

func TestCommentsOmittedWithoutInlineSupport(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	stmt.SetColumnRemark("id", "the key")
	stmt.Remarks = "main table"

	out := generate(t, stmt, "postgresql")

	assert.NotContains(t, out[0].Statement, "COMMENT")
}

func TestTemporaryTableUnqualifiedOnPostgres(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "app", "scratch")
	stmt.TableType = "TEMPORARY"
	stmt.AddColumn("id", "int")

	out := generate(t, stmt, "postgresql")

	assert.True(t, strings.HasPrefix(out[0].Statement, "CREATE TEMPORARY TABLE scratch ("), out[0].Statement)
}

func TestTemporaryTableStaysQualifiedElsewhere(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "app", "scratch")
	stmt.TableType = "TEMPORARY"
	stmt.AddColumn("id", "int")

	out := generate(t, stmt, "oracle")

	assert.True(t, strings.HasPrefix(out[0].Statement, "CREATE TEMPORARY TABLE app.scratch ("), out[0].Statement)
}

func TestIfNotExistsGatedByCapability(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.IfNotExists = true
	stmt.AddColumn("id", "int")

	mysqlOut := generate(t, stmt, "mysql")
	oracleOut := generate(t, stmt, "oracle")

	assert.Contains(t, mysqlOut[0].Statement, "IF NOT EXISTS")
	assert.NotContains(t, oracleOut[0].Statement, "IF NOT EXISTS")
}

func TestComputedColumnEmitsBareName(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int").AddColumn("derived", "")

	out := generate(t, stmt, "mssql")

	assert.Contains(t, out[0].Statement, "id int, derived)")
}

func TestMSSQLNamedDefaultConstraint(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "orders")
	stmt.AddColumn("status", "varchar(10)")
	stmt.SetDefaultValue("status", core.LiteralValue("'new'"))

	out := generate(t, stmt, "mssql")

	assert.Contains(t, out[0].Statement, "status varchar(10) CONSTRAINT DF_orders_status DEFAULT 'new'")
}

func TestMSSQLDefaultConstraintExplicitName(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "orders")
	stmt.AddColumn("status", "varchar(10)")
	stmt.SetDefaultValue("status", core.LiteralValue("'new'"))
	stmt.DefaultValueConstraintNames["status"] = "DF_custom"

	out := generate(t, stmt, "mssql")

	assert.Contains(t, out[0].Statement, "CONSTRAINT DF_custom DEFAULT 'new'")
}

func TestFunctionDefaultRenderedViaDialect(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("created", "timestamp")
	stmt.SetDefaultValue("created", core.DatabaseFunction("CURRENT_TIMESTAMP"))

	out := generate(t, stmt, "postgresql")

	assert.Contains(t, out[0].Statement, "created TIMESTAMP WITHOUT TIME ZONE DEFAULT CURRENT_TIMESTAMP")
}

func TestSequenceDefaultOnOracle(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	stmt.SetDefaultValue("id", core.SequenceNextValue("t_seq"))

	out := generate(t, stmt, "oracle")

	assert.Contains(t, out[0].Statement, "id NUMBER(10) DEFAULT t_seq.NEXTVAL")
}

func TestSequenceDefaultOnHSQLSuppressesKeyword(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	stmt.SetDefaultValue("id", core.SequenceNextValue("t_seq"))

	out := generate(t, stmt, "hsqldb")

	assert.Contains(t, out[0].Statement, "id INT GENERATED BY DEFAULT AS SEQUENCE t_seq")
	assert.NotContains(t, out[0].Statement, "DEFAULT GENERATED")
}

func TestDB2zIdentityDefaultPhrasing(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("id", "int")
	stmt.SetDefaultValue("id", core.LiteralValue("IDENTITY GENERATED BY DEFAULT"))

	out := generate(t, stmt, "db2z")

	assert.Contains(t, out[0].Statement, "id INTEGER GENERATED BY DEFAULT AS IDENTITY")
	assert.NotContains(t, out[0].Statement, "DEFAULT IDENTITY")
}

func TestGeneratedAlwaysDefaultSkipsKeywordOnOracle(t *testing.T) {
	stmt := core.NewCreateTableStatement("", "", "T")
	stmt.AddColumn("total", "int")
	stmt.SetDefaultValue("total", core.LiteralValue("GENERATED ALWAYS AS (qty * price)"))

	out := generate(t, stmt, "oracle")

	assert.Contains(t, out[0].Statement, "total NUMBER(10) GENERATED ALWAYS AS (qty * price)")
	assert.NotContains(t, out[0].Statement, "DEFAULT GENERATED")
}

func TestValidateRequiresTableNameAndColumns(t *testing.T) {
	g := NewCreateTableGenerator(nil, nil)
	stmt := core.NewCreateTableStatement("", "", "")

	errs := g.Validate(stmt, mustDialect(t, "mysql"))

	require.True(t, errs.HasErrors())
	assert.Len(t, errs.Errors, 2)
}

func TestValidateDisallowsIncrementByOnMySQL(t *testing.T) {
	g := NewCreateTableGenerator(nil, nil)
	stmt := basicStatement()
	stmt.AutoIncrementConstraints[0].IncrementBy = int64p(2)

	errs := g.Validate(stmt, mustDialect(t, "mysql"))

	require.True(t, errs.HasErrors())
	assert.Contains(t, errs.Error(), "incrementBy is not allowed on mysql")
}

func TestValidateAllowsIncrementByOnOracle(t *testing.T) {
	g := NewCreateTableGenerator(nil, nil)
	stmt := basicStatement()
	stmt.AutoIncrementConstraints[0].IncrementBy = int64p(2)

	errs := g.Validate(stmt, mustDialect(t, "oracle"))

	assert.False(t, errs.HasErrors())
}

func TestNilStatementPanics(t *testing.T) {
	g := NewCreateTableGenerator(nil, nil)
	d := mustDialect(t, "mysql")

	assert.Panics(t, func() { g.Validate(nil, d) })
	assert.Panics(t, func() { g.Generate(context.Background(), nil, d) })
}

func TestNilDialectPanics(t *testing.T) {
	g := NewCreateTableGenerator(nil, nil)

	assert.Panics(t, func() { g.Generate(context.Background(), basicStatement(), nil) })
}
