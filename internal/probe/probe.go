// Package probe looks up the major version of a live database so generation
// can gate version-dependent syntax. The probe is best-effort: it is
// read-only, runs under a short timeout, and callers fall back to a default
// version when it fails.
package probe

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 3 * time.Second

// Prober answers the current dialect major version.
type Prober interface {
	MajorVersion(ctx context.Context) (int, error)
}

// DBProber runs a dialect's version query against an open connection.
type DBProber struct {
	db      *sql.DB
	query   string
	timeout time.Duration
}

// NewDBProber returns a prober running query against db with a short
// per-probe timeout.
func NewDBProber(db *sql.DB, query string) *DBProber {
	return &DBProber{db: db, query: query, timeout: defaultTimeout}
}

// MajorVersion executes the version query and parses the leading major
// component of the returned version string.
func (p *DBProber) MajorVersion(ctx context.Context) (int, error) {
	if p.db == nil || strings.TrimSpace(p.query) == "" {
		return 0, fmt.Errorf("probe: no connection or version query configured")
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var version string
	if err := p.db.QueryRowContext(ctx, p.query).Scan(&version); err != nil {
		return 0, fmt.Errorf("probe version: %w", err)
	}
	major, ok := ParseMajor(version)
	if !ok {
		return 0, fmt.Errorf("probe: unparseable version %q", version)
	}
	return major, nil
}

// Fixed is a Prober returning a constant version, for callers that already
// know the target release.
type Fixed int

func (f Fixed) MajorVersion(context.Context) (int, error) { return int(f), nil }

// ParseMajor extracts the leading integer of a version string such as
// "10.4.2" or "8.0.36-log".
func ParseMajor(version string) (int, bool) {
	version = strings.TrimSpace(version)
	end := 0
	for end < len(version) && version[end] >= '0' && version[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	major, err := strconv.Atoi(version[:end])
	if err != nil {
		return 0, false
	}
	return major, true
}
