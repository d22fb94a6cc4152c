// Package store provides the journal entry storage interface and SQLite implementation.
package store

import (
	"context"
	"errors"

	"github.com/rcliao/reflect-journal/internal/model"
)

// ErrNotFound is returned when no entry exists for a date. Any other error
// from a Store is a storage failure.
var ErrNotFound = errors.New("entry not found")

// ListParams holds parameters for listing entries.
type ListParams struct {
	Since string // inclusive, YYYY-MM-DD
	Until string // inclusive, YYYY-MM-DD
	Limit int
}

// Store defines the entry storage interface.
type Store interface {
	// Upsert writes all eight content fields for e.Date, creating the entry
	// or replacing every field of the existing one. Returns the stored entry.
	Upsert(ctx context.Context, e model.Entry) (*model.Entry, error)

	// Load returns the entry for date, or ErrNotFound.
	Load(ctx context.Context, date string) (*model.Entry, error)

	// ListDates returns every date with an entry, most recent first.
	ListDates(ctx context.Context) ([]string, error)

	// Close closes the store.
	Close() error
}
