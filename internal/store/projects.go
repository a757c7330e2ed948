package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// CreateProject creates a new project and returns its id.
// Returns ErrDuplicateName if a project with the same name already exists.
func (s *Store) CreateProject(name, description string) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO projects (name, description) VALUES (?, ?)",
		name, description,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		return 0, fmt.Errorf("inserting project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading project id: %w", err)
	}
	return id, nil
}

// projectID looks up a project id by exact name.
// Returns ErrProjectNotFound if no project has that name.
func (s *Store) projectID(name string) (int64, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM projects WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: %q", ErrProjectNotFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("querying project: %w", err)
	}
	return id, nil
}
