package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlgen/internal/core"
	"sqlgen/internal/dialect"
)

type stubGenerator struct {
	priority int
	only     string
}

func (s *stubGenerator) Priority() int { return s.priority }

func (s *stubGenerator) Supports(d dialect.Dialect) bool {
	return s.only == "" || d.Name() == s.only
}

func (s *stubGenerator) Validate(*core.CreateTableStatement, dialect.Dialect) *core.ValidationErrors {
	return &core.ValidationErrors{}
}

func (s *stubGenerator) Generate(context.Context, *core.CreateTableStatement, dialect.Dialect) []core.Sql {
	return nil
}

func TestRegistryPicksHighestPriority(t *testing.T) {
	r := NewRegistry()
	generic := &stubGenerator{priority: PriorityDefault}
	override := &stubGenerator{priority: PriorityDialect, only: "mysql"}
	r.Register(core.StatementCreateTable, generic)
	r.Register(core.StatementCreateTable, override)

	mysql := mustDialect(t, "mysql")
	got, err := r.For(core.StatementCreateTable, mysql)
	require.NoError(t, err)
	assert.Same(t, SqlGenerator(override), got)
}

func TestRegistryFallsBackWhenOverrideDoesNotSupport(t *testing.T) {
	r := NewRegistry()
	generic := &stubGenerator{priority: PriorityDefault}
	override := &stubGenerator{priority: PriorityDialect, only: "mysql"}
	r.Register(core.StatementCreateTable, generic)
	r.Register(core.StatementCreateTable, override)

	got, err := r.For(core.StatementCreateTable, mustDialect(t, "oracle"))
	require.NoError(t, err)
	assert.Same(t, SqlGenerator(generic), got)
}

func TestRegistryTieResolvesToEarliestRegistration(t *testing.T) {
	r := NewRegistry()
	first := &stubGenerator{priority: PriorityDialect}
	second := &stubGenerator{priority: PriorityDialect}
	r.Register(core.StatementCreateTable, first)
	r.Register(core.StatementCreateTable, second)

	got, err := r.For(core.StatementCreateTable, mustDialect(t, "postgresql"))
	require.NoError(t, err)
	assert.Same(t, SqlGenerator(first), got)
}

func TestRegistryErrsWithoutGenerator(t *testing.T) {
	r := NewRegistry()

	_, err := r.For(core.StatementCreateTable, mustDialect(t, "mysql"))
	assert.Error(t, err)
}

func TestRegistryPanicsOnNilDialect(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() { r.For(core.StatementCreateTable, nil) })
}

func TestDefaultRegistryHasCreateTableGenerator(t *testing.T) {
	got, err := DefaultRegistry().For(core.StatementCreateTable, mustDialect(t, "sqlite"))
	require.NoError(t, err)
	assert.IsType(t, &CreateTableGenerator{}, got)
}
