// Package ledger defines the ports between the dashboard and its tabular
// data sources, plus the error kinds a load or export can fail with.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fundboard/internal/core"
)

type (
	// Source loads the full ledger from a tabular backend. Each call
	// re-reads the backend; the dashboard reloads on every interaction.
	Source interface {
		Load(ctx context.Context) (core.Ledger, error)
	}

	// Exporter writes a filtered view to a fresh tabular file and
	// returns the path written. Existing files at that path are
	// overwritten.
	Exporter interface {
		Export(ctx context.Context, view core.Ledger) (path string, err error)
	}
)

// ErrSourceNotFound marks a load attempt against a missing source file.
var ErrSourceNotFound = errors.New("ledger source not found")

// SchemaError reports every required column absent from the source
// header, not just the first.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// ParseError reports a value that could not be converted to its expected
// type. Any ParseError fails the whole load.
type ParseError struct {
	Row    int // 1-based, header included
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: parsing %s %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
