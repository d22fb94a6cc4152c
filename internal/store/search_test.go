package store

import (
	"context"
	"testing"

	"github.com/rcliao/reflect-journal/internal/model"
)

func TestSearch_Basic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Upsert(ctx, model.Entry{Date: "2026-10-16", Journal: "Slept poorly", Dream: "Flying over a city"})
	s.Upsert(ctx, model.Entry{Date: "2026-10-17", Journal: "Good run", Strategy: "Rest at noon"})
	s.Upsert(ctx, model.Entry{Date: "2026-10-18", Intention: "Stay calm", Reflection: "You slept little"})

	results, err := s.Search(ctx, SearchParams{Query: "slept"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Date != "2026-10-18" {
		t.Errorf("expected newest first, got %s", results[0].Date)
	}
	if len(results[0].Fields) != 1 || results[0].Fields[0] != "reflection" {
		t.Errorf("expected reflection match, got %v", results[0].Fields)
	}
	if len(results[1].Fields) != 1 || results[1].Fields[0] != "journal" {
		t.Errorf("expected journal match, got %v", results[1].Fields)
	}

	// Derived field
	results, _ = s.Search(ctx, SearchParams{Query: "noon"})
	if len(results) != 1 || results[0].Date != "2026-10-17" {
		t.Fatalf("expected strategy match on 2026-10-17, got %+v", results)
	}

	// No results
	results, _ = s.Search(ctx, SearchParams{Query: "javascript"})
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	s.Upsert(ctx, model.Entry{Date: "2026-10-18", Journal: "anything"})

	results, err := s.Search(ctx, SearchParams{Query: "  "})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results for blank query, got %d", len(results))
	}
}

func TestSearch_Limit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	for _, d := range []string{"2026-10-01", "2026-10-02", "2026-10-03"} {
		s.Upsert(ctx, model.Entry{Date: d, Journal: "walk"})
	}

	results, _ := s.Search(ctx, SearchParams{Query: "walk", Limit: 2})
	if len(results) != 2 {
		t.Errorf("expected 2 with limit, got %d", len(results))
	}
}
