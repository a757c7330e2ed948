package store

import (
	"database/sql"
	"fmt"
)

// Snapshot is the store state sent to the language model as context:
// active projects with their non-completed tasks.
type Snapshot struct {
	Projects []ProjectSnapshot `json:"projects"`
}

// ProjectSnapshot is a project with its open tasks.
type ProjectSnapshot struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedDate string         `json:"created_date"`
	Status      string         `json:"status"`
	Tasks       []TaskSnapshot `json:"tasks"`
}

// TaskSnapshot is a single open task.
type TaskSnapshot struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	CreatedDate string  `json:"created_date"`
	DueDate     *string `json:"due_date"`
}

// Snapshot returns all active projects with their non-completed tasks,
// ordered by id for deterministic prompt context.
func (s *Store) Snapshot() (*Snapshot, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, created_date, status
		FROM projects
		WHERE status = 'active'
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	snap := &Snapshot{Projects: []ProjectSnapshot{}}
	for rows.Next() {
		var f projectScanFields
		if err := rows.Scan(&f.id, &f.name, &f.description, &f.createdDate, &f.status); err != nil {
			return nil, err
		}
		snap.Projects = append(snap.Projects, f.toSnapshot())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range snap.Projects {
		tasks, err := s.openTasks(snap.Projects[i].ID)
		if err != nil {
			return nil, err
		}
		snap.Projects[i].Tasks = tasks
	}

	return snap, nil
}

// openTasks returns the non-completed tasks for a project, ordered by id.
func (s *Store) openTasks(projectID int64) ([]TaskSnapshot, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, priority, status, created_date, due_date
		FROM tasks
		WHERE project_id = ? AND status != 'completed'
		ORDER BY id
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := []TaskSnapshot{}
	for rows.Next() {
		var f taskScanFields
		if err := rows.Scan(&f.id, &f.title, &f.description, &f.priority, &f.status, &f.createdDate, &f.dueDate); err != nil {
			return nil, err
		}
		tasks = append(tasks, f.toSnapshot())
	}
	return tasks, rows.Err()
}

// projectScanFields holds the scan targets for a project row.
type projectScanFields struct {
	id          int64
	name        string
	description sql.NullString
	createdDate sql.NullString
	status      sql.NullString
}

// toSnapshot converts scanned fields to a ProjectSnapshot.
func (f *projectScanFields) toSnapshot() ProjectSnapshot {
	return ProjectSnapshot{
		ID:          f.id,
		Name:        f.name,
		Description: f.description.String,
		CreatedDate: f.createdDate.String,
		Status:      f.status.String,
	}
}

// taskScanFields holds the scan targets for a task row.
type taskScanFields struct {
	id          int64
	title       string
	description sql.NullString
	priority    sql.NullString
	status      sql.NullString
	createdDate sql.NullString
	dueDate     sql.NullString
}

// toSnapshot converts scanned fields to a TaskSnapshot.
func (f *taskScanFields) toSnapshot() TaskSnapshot {
	t := TaskSnapshot{
		ID:          f.id,
		Title:       f.title,
		Description: f.description.String,
		Priority:    f.priority.String,
		Status:      f.status.String,
		CreatedDate: f.createdDate.String,
	}
	if f.dueDate.Valid {
		due := f.dueDate.String
		t.DueDate = &due
	}
	return t
}
