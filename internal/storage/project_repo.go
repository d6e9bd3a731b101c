package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_project_store.go -package=mocks photolib/internal/storage ProjectStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// ErrDuplicateName is returned when a project name is already taken.
var ErrDuplicateName = errors.New("project name already exists")

// ProjectStore defines the interface for project storage operations.
type ProjectStore interface {
	// List returns all projects, newest first.
	List(ctx context.Context) ([]*ProjectRecord, error)
	// GetByID gets a project by ID. Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*ProjectRecord, error)
	// Create stores a new project. Returns ErrDuplicateName when the name is
	// taken.
	Create(ctx context.Context, name string) (*ProjectRecord, error)
	// Rename changes a project's name. Returns ErrNotFound or
	// ErrDuplicateName.
	Rename(ctx context.Context, id, name string) error
	// Delete removes a project and all of its photos.
	Delete(ctx context.Context, id string) error
}

// ProjectRepo provides methods for project operations.
// It implements the ProjectStore interface.
type ProjectRepo struct {
	db *sql.DB
}

// NewProjectRepo creates a new ProjectRepo.
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// List returns all projects, newest first.
func (r *ProjectRepo) List(ctx context.Context) ([]*ProjectRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM projects ORDER BY created_at DESC, name")
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var projects []*ProjectRecord
	for rows.Next() {
		var p ProjectRecord
		var createdAtStr string
		if err := rows.Scan(&p.ID, &p.Name, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		ts, err := parseTimestamp(createdAtStr)
		if err != nil {
			return nil, err
		}
		p.CreatedAt = ts
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// GetByID gets a project by ID. Returns nil and ErrNotFound if not found.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*ProjectRecord, error) {
	var p ProjectRecord
	var createdAtStr string
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM projects WHERE id = ?", id,
	).Scan(&p.ID, &p.Name, &createdAtStr)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query project: %w", err)
	}

	ts, err := parseTimestamp(createdAtStr)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = ts
	return &p, nil
}

// Create stores a new project. Returns ErrDuplicateName when the name is
// taken.
func (r *ProjectRepo) Create(ctx context.Context, name string) (*ProjectRecord, error) {
	id := uuid.New().String()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (id, name) VALUES (?, ?)", id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Rename changes a project's name. Returns ErrNotFound or ErrDuplicateName.
func (r *ProjectRepo) Rename(ctx context.Context, id, name string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE projects SET name = ? WHERE id = ?", name, id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to rename project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rename count: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a project and all of its photos.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM photos WHERE project_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete project photos: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete count: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit project delete: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
