// Package storage keeps the ledger of finished rounds for the life of the
// process. It runs SQLite in memory through the pure-Go modernc.org/sqlite
// driver, so nothing is written to disk and no CGO is needed.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// End reasons recorded with a round.
const (
	ReasonCollision = "collision"
	ReasonRestart   = "restart"
	ReasonQuit      = "quit"
)

// Ledger records finished rounds. It is safe for concurrent use, so one
// ledger can be shared by every SSH session of a server.
type Ledger struct {
	db *sql.DB
}

// Round is one finished play session.
type Round struct {
	ID        string
	Username  string
	Score     int
	Length    int
	Ticks     uint64
	Reason    string
	CreatedAt time.Time
}

// Open creates an empty in-memory ledger.
func Open() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to ":memory:" is its own database; pin a single one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db}

	// Run migrations
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return l, nil
}

// migrate creates the database schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			username TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			reason TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_user ON rounds(username, score DESC);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close closes the database connection and drops the ledger.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// RecordRound stores a finished round. A zero CreatedAt is set to now.
func (l *Ledger) RecordRound(r Round) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	_, err := l.db.Exec(
		`INSERT INTO rounds (round_id, username, score, length, ticks, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Username, r.Score, r.Length, int64(r.Ticks), r.Reason, r.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record round %s: %w", r.ID, err)
	}
	return nil
}

// Best returns the highest score recorded for username, or 0 if none.
func (l *Ledger) Best(username string) (int, error) {
	var score sql.NullInt64
	err := l.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE username = ?",
		username,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Count returns the number of recorded rounds.
func (l *Ledger) Count() (int, error) {
	var n int
	if err := l.db.QueryRow("SELECT COUNT(*) FROM rounds").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return n, nil
}

// TopRounds returns the best limit rounds, highest score first. Ties go to
// the earlier round.
func (l *Ledger) TopRounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.db.Query(
		`SELECT round_id, username, score, length, ticks, reason, created_at
		 FROM rounds
		 ORDER BY score DESC, seq ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Username, &r.Score, &r.Length, &ticks, &r.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
