// Package generator turns an abstract statement into SQL text for a target
// dialect. Generators register against a statement kind with a specificity
// score; the registry picks the highest-scoring generator that supports the
// dialect, so a dialect can override generation without the generic
// implementation knowing about it.
package generator

import (
	"context"
	"fmt"
	"sync"

	"sqlgen/internal/core"
	"sqlgen/internal/dialect"
)

// Specificity scores for generator registration. A dialect-specific override
// registers above PriorityDefault.
const (
	PriorityDefault  = 1
	PriorityDialect  = 5
	PriorityOverride = 10
)

// SqlGenerator produces the SQL fragments realizing one statement kind on the
// dialects it supports.
type SqlGenerator interface {
	// Priority is the generator's specificity score.
	Priority() int
	// Supports reports whether the generator can handle the dialect.
	Supports(d dialect.Dialect) bool
	// Validate checks statement preconditions for the dialect. It reports
	// data-shape problems as a batch and never fails for them.
	Validate(stmt *core.CreateTableStatement, d dialect.Dialect) *core.ValidationErrors
	// Generate produces the ordered SQL fragments, primary statement first.
	// The statement must already have passed validation.
	Generate(ctx context.Context, stmt *core.CreateTableStatement, d dialect.Dialect) []core.Sql
}

type registryEntry struct {
	generator SqlGenerator
	order     int
}

// Registry maps a statement kind to its registered generators.
type Registry struct {
	mu      sync.RWMutex
	entries map[core.StatementKind][]registryEntry
	next    int
}

// NewRegistry returns an empty generator registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[core.StatementKind][]registryEntry)}
}

// Register adds a generator for the statement kind.
func (r *Registry) Register(kind core.StatementKind, g SqlGenerator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[kind] = append(r.entries[kind], registryEntry{generator: g, order: r.next})
	r.next++
}

// For returns the most specific generator supporting the dialect: highest
// priority wins, ties resolve to the earliest registration.
func (r *Registry) For(kind core.StatementKind, d dialect.Dialect) (SqlGenerator, error) {
	if d == nil {
		panic("generator: nil dialect")
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *registryEntry
	for i := range r.entries[kind] {
		e := &r.entries[kind][i]
		if !e.generator.Supports(d) {
			continue
		}
		if best == nil || e.generator.Priority() > best.generator.Priority() ||
			(e.generator.Priority() == best.generator.Priority() && e.order < best.order) {
			best = e
		}
	}
	if best == nil {
		return nil, fmt.Errorf("no generator for %s on dialect %s", kind, d.Name())
	}
	return best.generator, nil
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry that package init
// functions register into.
func DefaultRegistry() *Registry { return defaultRegistry }
