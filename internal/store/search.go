package store

import (
	"context"
	"strings"

	"github.com/rcliao/reflect-journal/internal/model"
)

// SearchParams holds parameters for searching entries.
type SearchParams struct {
	Query string
	Limit int
}

// SearchResult wraps an entry with the names of the fields that matched.
type SearchResult struct {
	model.Entry
	Fields []string `json:"matched_fields"`
}

// Search finds entries where any of the eight text fields contains the
// query (case-insensitive for ASCII, as SQLite LIKE is).
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]SearchResult, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}
	if strings.TrimSpace(p.Query) == "" {
		return []SearchResult{}, nil
	}

	like := "%" + p.Query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM entries
		WHERE journal LIKE ? OR intention LIKE ? OR dream LIKE ? OR priorities LIKE ?
		   OR reflection LIKE ? OR dream_interpretation LIKE ? OR mindset_insight LIKE ? OR strategy LIKE ?
		ORDER BY date DESC
		LIMIT ?`,
		like, like, like, like, like, like, like, like, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []SearchResult{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, SearchResult{Entry: e, Fields: matchedFields(e, p.Query)})
	}
	return results, rows.Err()
}

func matchedFields(e model.Entry, query string) []string {
	q := strings.ToLower(query)
	fields := []struct {
		name, text string
	}{
		{"journal", e.Journal},
		{"intention", e.Intention},
		{"dream", e.Dream},
		{"priorities", e.Priorities},
		{model.KeyReflection, e.Reflection},
		{model.KeyDreamInterpretation, e.DreamInterpretation},
		{model.KeyMindsetInsight, e.MindsetInsight},
		{"strategy", e.Strategy},
	}

	var out []string
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f.text), q) {
			out = append(out, f.name)
		}
	}
	return out
}
