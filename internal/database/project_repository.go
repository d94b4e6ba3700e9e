package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/bulletin/internal/models"
)

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	db *sql.DB
}

// projectSortColumns whitelists the ORDER BY columns a caller may ask for
var projectSortColumns = map[ProjectSortField]string{
	SortByName:      "name COLLATE NOCASE",
	SortByCreatedAt: "created_at",
}

// Create inserts a project. The caller supplies the ID.
func (r *ProjectRepo) Create(ctx context.Context, p *models.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, description) VALUES (?, ?, ?)`,
		p.ID, p.Name, p.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project '%s': %w", p.Name, err)
	}
	return nil
}

// GetByID retrieves a project by its ID
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	project := &models.Project{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, created_at, updated_at FROM projects WHERE id = ?`,
		id,
	).Scan(&project.ID, &project.Name, &project.Description, &project.CreatedAt, &project.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", id, err)
	}
	return project, nil
}

// List returns one page of projects in the requested order
func (r *ProjectRepo) List(ctx context.Context, opts ListProjectsOptions) ([]*models.Project, error) {
	column, ok := projectSortColumns[opts.SortBy]
	if !ok {
		column = projectSortColumns[SortByName]
	}
	direction := "ASC"
	if opts.Descending {
		direction = "DESC"
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	query := fmt.Sprintf(
		`SELECT id, name, description, created_at, updated_at FROM projects ORDER BY %s %s, id LIMIT ? OFFSET ?`,
		column, direction,
	)
	rows, err := r.db.QueryContext(ctx, query, limit, opts.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer closeRows(rows)

	projects := make([]*models.Project, 0, 16)
	for rows.Next() {
		project := &models.Project{}
		if err := rows.Scan(&project.ID, &project.Name, &project.Description, &project.CreatedAt, &project.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}
