// Package storage keeps a ledger of finished races in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Nothing is written to disk; the ledger lives as long as the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pixel-racers/internal/game"
)

// Store manages the in-memory results database.
// It is safe for concurrent use by multiple SSH sessions.
type Store struct {
	db *sql.DB
}

// ResultEntry is one recorded race.
type ResultEntry struct {
	ID          int64
	RaceID      string
	Session     string
	Mode        string // "normal" or "infinite"
	Outcome     game.Outcome
	Score       int
	Lap         int
	HitAI       bool
	HitObstacle bool
	Frames      int
	CreatedAt   time.Time
}

// Summary aggregates every race in the ledger.
type Summary struct {
	Races        int
	Wins         int // completed and forced wins
	Crashes      int
	Abandoned    int
	BestNormal   int
	BestInfinite int
}

// Open creates an empty in-memory ledger.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

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

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS race_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			race_id TEXT NOT NULL,
			session TEXT NOT NULL DEFAULT '',
			mode TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			lap INTEGER NOT NULL,
			hit_ai INTEGER NOT NULL DEFAULT 0,
			hit_obstacle INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_race_results_top ON race_results(mode, score DESC);
		CREATE INDEX IF NOT EXISTS idx_race_results_session ON race_results(session);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and discards the ledger.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished race for a session.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(session string, res game.RaceResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO race_results
		 (race_id, session, mode, outcome, score, lap, hit_ai, hit_obstacle, frames)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID,
		session,
		res.Mode(),
		string(res.Outcome),
		res.Score,
		res.Lap,
		res.HitAI,
		res.HitObstacle,
		res.Frames,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, race_id, session, mode, outcome, score, lap, hit_ai, hit_obstacle, frames, created_at`

// TopResults retrieves the best N races for a mode, ordered by score descending.
// Abandoned races are not ranked.
func (s *Store) TopResults(mode string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM race_results
		 WHERE mode = ? AND outcome != ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, string(game.OutcomeAbandoned), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

// SessionResults retrieves every race of a session in the order they finished.
func (s *Store) SessionResults(session string) ([]ResultEntry, error) {
	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM race_results
		 WHERE session = ?
		 ORDER BY id ASC`,
		session,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session results: %w", err)
	}
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]ResultEntry, error) {
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var outcome string
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.RaceID,
			&e.Session,
			&e.Mode,
			&outcome,
			&e.Score,
			&e.Lap,
			&e.HitAI,
			&e.HitObstacle,
			&e.Frames,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Outcome = game.Outcome(outcome)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestScore returns the highest ranked score for a mode.
// Returns 0 if no races were recorded.
func (s *Store) BestScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM race_results WHERE mode = ? AND outcome != ?",
		mode, string(game.OutcomeAbandoned),
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Summary returns totals over every recorded race.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(
		`SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN outcome IN (?, ?) THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0)
		 FROM race_results`,
		string(game.OutcomeWin), string(game.OutcomeForced),
		string(game.OutcomeCrash),
		string(game.OutcomeAbandoned),
	).Scan(&sum.Races, &sum.Wins, &sum.Crashes, &sum.Abandoned)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot query summary: %w", err)
	}

	if sum.BestNormal, err = s.BestScore("normal"); err != nil {
		return Summary{}, err
	}
	if sum.BestInfinite, err = s.BestScore("infinite"); err != nil {
		return Summary{}, err
	}
	return sum, nil
}
