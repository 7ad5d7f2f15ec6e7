//go:build !js && !android

package record

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLite keeps the best score in a single-row table. The database is opened
// for each call and closed again before returning.
type SQLite struct {
	path string
}

// NewSQLite returns a store backed by the database at path. The parent
// directory is created and the schema migrated eagerly so configuration
// problems surface at startup.
func NewSQLite(path string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("record: cannot create directory %s: %w", dir, err)
	}
	s := &SQLite{path: path}
	if err := s.withDB(func(*sql.DB) error { return nil }); err != nil {
		return nil, err
	}
	return s, nil
}

// withDB opens the database, runs migrations, calls fn and closes the database.
func (s *SQLite) withDB(fn func(db *sql.DB) error) error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("record: cannot open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("record: cannot connect to database: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS best_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`); err != nil {
		return fmt.Errorf("record: migration failed: %w", err)
	}
	return fn(db)
}

// Load returns the stored best score, 0 when no row exists yet.
func (s *SQLite) Load() (int, error) {
	var best int
	err := s.withDB(func(db *sql.DB) error {
		return db.QueryRow("SELECT score FROM best_score WHERE id = 1").Scan(&best)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("record: cannot read best score: %w", err)
	}
	if best < 0 {
		return 0, fmt.Errorf("%w: %d in %s", ErrMalformed, best, s.path)
	}
	return best, nil
}

// Save stores best in a single upsert statement.
func (s *SQLite) Save(best int) error {
	return s.withDB(func(db *sql.DB) error {
		_, err := db.Exec(`
			INSERT INTO best_score (id, score) VALUES (1, ?)
			ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = CURRENT_TIMESTAMP
		`, best)
		if err != nil {
			return fmt.Errorf("record: cannot save best score: %w", err)
		}
		return nil
	})
}
