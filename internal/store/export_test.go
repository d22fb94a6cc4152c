package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rcliao/reflect-journal/internal/model"
)

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)

	src.Upsert(ctx, fullEntry("2026-10-17", "a"))
	src.Upsert(ctx, fullEntry("2026-10-18", "b"))

	exported, err := src.ExportAll(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exported) != 2 || exported[0].Date != "2026-10-17" {
		t.Fatalf("expected 2 entries oldest first, got %+v", exported)
	}

	dst, err := NewSQLiteStore(filepath.Join(t.TempDir(), "dst.db"))
	if err != nil {
		t.Fatalf("create dst: %v", err)
	}
	defer dst.Close()

	// Pre-existing entry for an imported date is replaced, not duplicated.
	dst.Upsert(ctx, fullEntry("2026-10-18", "stale"))

	n, err := dst.Import(ctx, exported)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 imported, got %d", n)
	}

	dates, _ := dst.ListDates(ctx)
	if len(dates) != 2 {
		t.Errorf("expected 2 dates, got %v", dates)
	}
	got, _ := dst.Load(ctx, "2026-10-18")
	if got.Journal != "journal b" {
		t.Errorf("expected imported journal, got %q", got.Journal)
	}
}

func TestImportStopsOnBadDate(t *testing.T) {
	s := newTestStore(t)

	n, err := s.Import(context.Background(), []model.Entry{
		{Date: "2026-10-17"},
		{Date: "not-a-date"},
		{Date: "2026-10-18"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if n != 1 {
		t.Errorf("expected 1 imported before failure, got %d", n)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "stats.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	st, err := s.Stats(ctx, dbPath)
	if err != nil {
		t.Fatalf("stats on empty: %v", err)
	}
	if st.TotalEntries != 0 || st.FirstDate != "" {
		t.Errorf("expected empty stats, got %+v", st)
	}

	s.Upsert(ctx, fullEntry("2026-10-16", "x"))
	s.Upsert(ctx, model.Entry{Date: "2026-10-18", Journal: "model was down"})

	st, err = s.Stats(ctx, dbPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalEntries != 2 || st.WithInsights != 1 || st.WithoutInsights != 1 {
		t.Errorf("unexpected counts: %+v", st)
	}
	if st.FirstDate != "2026-10-16" || st.LastDate != "2026-10-18" {
		t.Errorf("unexpected range: %+v", st)
	}
	if st.DBPath != dbPath {
		t.Errorf("expected db path %q, got %q", dbPath, st.DBPath)
	}
}
