package store

import "fmt"

// AddTask adds a task to the named project and returns the task id.
// Priority defaults to "medium" when empty. Returns ErrProjectNotFound
// if the project doesn't exist.
func (s *Store) AddTask(projectName, title, description, priority string, dueDate *string) (int64, error) {
	projectID, err := s.projectID(projectName)
	if err != nil {
		return 0, err
	}

	if priority == "" {
		priority = "medium"
	}

	res, err := s.db.Exec(
		"INSERT INTO tasks (project_id, title, description, priority, due_date) VALUES (?, ?, ?, ?, ?)",
		projectID, title, description, priority, dueDate,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading task id: %w", err)
	}
	return id, nil
}

// DeleteTask deletes tasks matching the identifier (numeric id, or title
// substring otherwise). All tasks whose title contains a pattern are removed.
// Reports whether at least one row was deleted.
func (s *Store) DeleteTask(identifier string) (bool, error) {
	ident := ParseIdentifier(identifier)

	var query string
	var arg any
	switch ident.Kind {
	case MatchID:
		query = "DELETE FROM tasks WHERE id = ?"
		arg = ident.ID
	case MatchPattern:
		query = "DELETE FROM tasks WHERE title LIKE ?"
		arg = "%" + ident.Pattern + "%"
	}

	res, err := s.db.Exec(query, arg)
	if err != nil {
		return false, fmt.Errorf("deleting task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("counting deleted rows: %w", err)
	}
	return n > 0, nil
}

// UpdateTaskStatus sets the status of tasks matching the identifier, with the
// same id-or-pattern matching as DeleteTask. Reports whether at least one row
// was updated.
func (s *Store) UpdateTaskStatus(identifier, status string) (bool, error) {
	ident := ParseIdentifier(identifier)

	var query string
	var args []any
	switch ident.Kind {
	case MatchID:
		query = "UPDATE tasks SET status = ? WHERE id = ?"
		args = []any{status, ident.ID}
	case MatchPattern:
		query = "UPDATE tasks SET status = ? WHERE title LIKE ?"
		args = []any{status, "%" + ident.Pattern + "%"}
	}

	res, err := s.db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("updating task status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("counting updated rows: %w", err)
	}
	return n > 0, nil
}
