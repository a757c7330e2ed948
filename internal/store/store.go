// Package store provides the sqlite-backed persistence layer for projects
// and tasks.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrDuplicateName is returned when creating a project whose name already exists.
var ErrDuplicateName = errors.New("project already exists")

// ErrProjectNotFound is returned when adding a task to an unknown project.
var ErrProjectNotFound = errors.New("project not found")

// Store wraps the task database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the task database at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ensureSchema creates the projects and tasks tables (idempotent via
// CREATE IF NOT EXISTS). Deleting a project does not cascade to its tasks.
func (s *Store) ensureSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			created_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			status TEXT DEFAULT 'active'
		);

		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER,
			title TEXT NOT NULL,
			description TEXT,
			priority TEXT DEFAULT 'medium',
			status TEXT DEFAULT 'pending',
			created_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			due_date TEXT,
			FOREIGN KEY (project_id) REFERENCES projects (id)
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
