package store

import (
	"context"
	"fmt"

	"github.com/rcliao/reflect-journal/internal/model"
)

// ExportAll returns every entry, oldest first.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM entries ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Import stores entries from an export. Each entry goes through Upsert, so an
// imported date replaces any existing entry for that date.
func (s *SQLiteStore) Import(ctx context.Context, entries []model.Entry) (int, error) {
	imported := 0
	for _, e := range entries {
		if _, err := s.Upsert(ctx, e); err != nil {
			return imported, fmt.Errorf("import %s: %w", e.Date, err)
		}
		imported++
	}
	return imported, nil
}
