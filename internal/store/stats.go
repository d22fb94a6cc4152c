package store

import (
	"context"
	"database/sql"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath          string `json:"db_path"`
	DBSizeBytes     int64  `json:"db_size_bytes"`
	TotalEntries    int    `json:"total_entries"`
	WithInsights    int    `json:"with_insights"`
	WithoutInsights int    `json:"without_insights"`
	FirstDate       string `json:"first_date,omitempty"`
	LastDate        string `json:"last_date,omitempty"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	var first, last sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN reflection != '' OR dream_interpretation != ''
		                          OR mindset_insight != '' OR strategy != '' THEN 1 ELSE 0 END), 0),
		       MIN(date), MAX(date)
		FROM entries`).Scan(&st.TotalEntries, &st.WithInsights, &first, &last)
	if err != nil {
		return st, err
	}

	st.WithoutInsights = st.TotalEntries - st.WithInsights
	st.FirstDate = first.String
	st.LastDate = last.String
	return st, nil
}
