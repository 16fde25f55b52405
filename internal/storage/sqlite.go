// Package storage provides SQLite-based persistence for round results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// RoundEntry records the outcome of one finished round.
type RoundEntry struct {
	ID           int64
	Category     string
	Answer       string
	Won          bool
	LivesLeft    int
	Guesses      int
	DurationSecs int
	CreatedAt    time.Time
}

// CategoryStats contains aggregated statistics for one category.
type CategoryStats struct {
	Category      string
	Played        int
	Won           int
	BestLivesLeft int
	LastPlayed    time.Time
}

// WinRate returns the fraction of rounds won, 0 when nothing was played.
func (s CategoryStats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT NOT NULL,
			answer TEXT NOT NULL,
			won INTEGER NOT NULL,
			lives_left INTEGER NOT NULL,
			guesses INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_category ON rounds(category);
		CREATE INDEX IF NOT EXISTS idx_rounds_recent ON rounds(category, created_at DESC);
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

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(entry RoundEntry) (int64, error) {
	won := 0
	if entry.Won {
		won = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (category, answer, won, lives_left, guesses, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Category, entry.Answer, won, entry.LivesLeft, entry.Guesses, entry.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the most recent rounds for the given category.
// An empty category returns rounds across all categories.
func (s *Store) RecentRounds(category string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, category, answer, won, lives_left, guesses, duration_secs, created_at
	          FROM rounds`
	args := []any{}
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var won int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Category, &e.Answer, &won, &e.LivesLeft, &e.Guesses, &e.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Won = won != 0
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats retrieves aggregated statistics for a category.
func (s *Store) Stats(category string) (*CategoryStats, error) {
	stats := &CategoryStats{Category: category}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(CASE WHEN won = 1 THEN lives_left END), 0)
		 FROM rounds WHERE category = ?`,
		category,
	).Scan(&stats.Played, &stats.Won, &stats.BestLivesLeft)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE category = ? ORDER BY created_at DESC LIMIT 1`,
		category,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves statistics for every category that has been played.
func (s *Store) AllStats() (map[string]*CategoryStats, error) {
	rows, err := s.db.Query(
		`SELECT category, COUNT(*), COALESCE(SUM(won), 0),
		        COALESCE(MAX(CASE WHEN won = 1 THEN lives_left END), 0), MAX(created_at)
		 FROM rounds
		 GROUP BY category`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*CategoryStats)
	for rows.Next() {
		var st CategoryStats
		var lastPlayed any
		if err := rows.Scan(&st.Category, &st.Played, &st.Won, &st.BestLivesLeft, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseCreatedAt(lastPlayed)
		stats[st.Category] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRounds deletes all rounds for the given category.
func (s *Store) ClearRounds(category string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE category = ?", category)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// parseCreatedAt handles both time.Time and string datetime values
// returned by the driver.
func parseCreatedAt(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", val); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
