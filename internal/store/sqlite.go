package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/reflect-journal/internal/model"
)

const entryColumns = `id, date, journal, intention, dream, priorities,
	reflection, dream_interpretation, mindset_insight, strategy,
	created_at, updated_at`

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	// busy_timeout makes a second session wait for the write lock instead of
	// failing with SQLITE_BUSY.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id                   TEXT PRIMARY KEY,
		date                 TEXT NOT NULL UNIQUE,
		journal              TEXT NOT NULL DEFAULT '',
		intention            TEXT NOT NULL DEFAULT '',
		dream                TEXT NOT NULL DEFAULT '',
		priorities           TEXT NOT NULL DEFAULT '',
		reflection           TEXT NOT NULL DEFAULT '',
		dream_interpretation TEXT NOT NULL DEFAULT '',
		mindset_insight      TEXT NOT NULL DEFAULT '',
		strategy             TEXT NOT NULL DEFAULT '',
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Upsert(ctx context.Context, e model.Entry) (*model.Entry, error) {
	date, err := model.ParseDate(e.Date)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	// Insert-or-replace keyed on date, in one statement, so two sessions
	// saving the same day can never produce two rows.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO entries (`+entryColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
			journal              = excluded.journal,
			intention            = excluded.intention,
			dream                = excluded.dream,
			priorities           = excluded.priorities,
			reflection           = excluded.reflection,
			dream_interpretation = excluded.dream_interpretation,
			mindset_insight      = excluded.mindset_insight,
			strategy             = excluded.strategy,
			updated_at           = excluded.updated_at`,
		s.newID(), date,
		e.Journal, e.Intention, e.Dream, e.Priorities,
		e.Reflection, e.DreamInterpretation, e.MindsetInsight, e.Strategy,
		now, now)
	if err != nil {
		return nil, fmt.Errorf("upsert entry %s: %w", date, err)
	}

	saved, err := scanEntry(tx.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE date = ?`, date))
	if err != nil {
		return nil, fmt.Errorf("read back entry %s: %w", date, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &saved, nil
}

func (s *SQLiteStore) Load(ctx context.Context, date string) (*model.Entry, error) {
	e, err := scanEntry(s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE date = ?`, date))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, date)
	}
	if err != nil {
		return nil, fmt.Errorf("load entry %s: %w", date, err)
	}
	return &e, nil
}

func (s *SQLiteStore) ListDates(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT date FROM entries ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list dates: %w", err)
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// List returns full entries, newest first, optionally bounded by date.
func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Entry, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 30
	}

	where := []string{"1 = 1"}
	args := []interface{}{}
	if p.Since != "" {
		where = append(where, "date >= ?")
		args = append(args, p.Since)
	}
	if p.Until != "" {
		where = append(where, "date <= ?")
		args = append(args, p.Until)
	}

	query := fmt.Sprintf(`SELECT %s FROM entries WHERE %s ORDER BY date DESC LIMIT ?`,
		entryColumns, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (model.Entry, error) {
	var e model.Entry
	var createdAt, updatedAt string

	err := row.Scan(
		&e.ID, &e.Date,
		&e.Journal, &e.Intention, &e.Dream, &e.Priorities,
		&e.Reflection, &e.DreamInterpretation, &e.MindsetInsight, &e.Strategy,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return e, err
	}

	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return e, nil
}
