// Package memory holds a fixed ledger in process. It backs tests and
// local development where no spreadsheet is at hand.
package memory

import (
	"context"
	"sync"

	"fundboard/internal/core"
	"fundboard/internal/ledger"
)

type Store struct {
	mu   sync.Mutex
	rows core.Ledger
	err  error
}

var _ ledger.Source = (*Store)(nil)

func New(rows core.Ledger) *Store {
	return &Store{rows: rows}
}

// NewFailing returns a store whose Load always fails with err. Handler
// tests use it to exercise the error paths.
func NewFailing(err error) *Store {
	return &Store{err: err}
}

// Load returns a copy so callers can never mutate the seed rows.
func (s *Store) Load(_ context.Context) (core.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make(core.Ledger, len(s.rows))
	copy(out, s.rows)
	return out, nil
}
