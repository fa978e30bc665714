// Package history archives one row per completed puzzle in a local SQLite
// database. The day record (internal/record) stays the source of truth for
// the current day; history feeds the browser screen and the stats command.
package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id         TEXT PRIMARY KEY,
	day_index  INTEGER NOT NULL UNIQUE,
	date       TEXT    NOT NULL,
	solution   TEXT    NOT NULL,
	won        INTEGER NOT NULL,
	attempts   INTEGER NOT NULL,
	letters    TEXT    NOT NULL,
	statuses   TEXT    NOT NULL,
	created_at TEXT    NOT NULL DEFAULT (datetime('now'))
);`

// Result is one finished day.
type Result struct {
	ID       string
	DayIndex int
	Date     string // YYYY-MM-DD
	Solution string
	Won      bool
	Attempts int
	Letters  string
	Statuses string
}

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// Open connects to the database at dsn, applies the pragmas suited to a
// single-user local file, and creates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert archives a finished day. Re-inserting the same day index is a
// no-op, so a replayed session can call it safely.
func (s *Store) Insert(ctx context.Context, r Result) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO results(id, day_index, date, solution, won, attempts, letters, statuses)
		 VALUES(?,?,?,?,?,?,?,?)`,
		r.ID, r.DayIndex, r.Date, r.Solution, r.Won, r.Attempts, r.Letters, r.Statuses,
	)
	return err
}

// Recent returns up to limit results, newest day first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, day_index, date, solution, won, attempts, letters, statuses
		 FROM results
		 ORDER BY day_index DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.DayIndex, &r.Date, &r.Solution, &r.Won, &r.Attempts, &r.Letters, &r.Statuses); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Totals returns the archived played and won counts.
func (s *Store) Totals(ctx context.Context) (played, won int, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(1), COALESCE(SUM(won), 0) FROM results`,
	).Scan(&played, &won)
	return played, won, err
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
