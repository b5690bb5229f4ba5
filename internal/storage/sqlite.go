// Package storage keeps the session journal in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The default DSN is an in-memory database, so nothing outlives the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/alien-evolution/internal/core"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store manages the journal database connection.
type Store struct {
	db *sql.DB
}

// Outcome is one journaled game event.
type Outcome struct {
	ID         int64
	Kind       string
	Level      int
	Stage      int
	Explosions int
	At         time.Duration // Session clock time of the event
}

// Summary aggregates the journal for the stats overlay.
type Summary struct {
	Rounds     int
	Catches    int
	Misses     int
	Explosions int
	BestLevel  int
	BestStage  int
}

// Open creates the journal. An empty dsn means MemoryDSN.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: gets its own database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS outcomes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			level INTEGER NOT NULL,
			stage INTEGER NOT NULL,
			explosions INTEGER NOT NULL,
			at_ms INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_outcomes_kind ON outcomes(kind);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordOutcome journals a game event.
// Returns the ID of the inserted record.
func (s *Store) RecordOutcome(e core.Event) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO outcomes (kind, level, stage, explosions, at_ms) VALUES (?, ?, ?, ?, ?)",
		e.Type.String(), e.Level, e.Stage, e.Explosions, e.At.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record outcome: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentOutcomes returns the latest outcomes, newest first.
func (s *Store) RecentOutcomes(limit int) ([]Outcome, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, kind, level, stage, explosions, at_ms
		 FROM outcomes
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []Outcome
	for rows.Next() {
		var o Outcome
		var atMs int64
		if err := rows.Scan(&o.ID, &o.Kind, &o.Level, &o.Stage, &o.Explosions, &atMs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		o.At = time.Duration(atMs) * time.Millisecond
		outcomes = append(outcomes, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return outcomes, nil
}

// Summary aggregates the whole journal.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(
		`SELECT
			COALESCE(SUM(kind = ?), 0),
			COALESCE(SUM(kind = ?), 0),
			COALESCE(SUM(kind = ?), 0),
			COALESCE(SUM(kind = ?), 0),
			COALESCE(MAX(level), 0),
			COALESCE(MAX(stage), 0)
		 FROM outcomes`,
		core.EventRoundStarted.String(),
		core.EventCaught.String(),
		core.EventMissed.String(),
		core.EventExploded.String(),
	).Scan(&sum.Rounds, &sum.Catches, &sum.Misses, &sum.Explosions, &sum.BestLevel, &sum.BestStage)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize outcomes: %w", err)
	}

	if sum.BestStage == 0 {
		sum.BestStage = 1
	}
	return sum, nil
}

// Clear deletes every outcome.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM outcomes")
	if err != nil {
		return fmt.Errorf("storage: cannot clear outcomes: %w", err)
	}
	return nil
}
