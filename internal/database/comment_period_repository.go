package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/bulletin/internal/models"
)

// CommentPeriodRepo handles comment period rows
type CommentPeriodRepo struct {
	db *sql.DB
}

// Create inserts a comment period. The caller supplies the ID.
func (r *CommentPeriodRepo) Create(ctx context.Context, p *models.CommentPeriod) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comment_periods (id, project_id, name, start_date, end_date) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.ProjectID, p.Name, timeToNull(p.StartDate), timeToNull(p.EndDate),
	)
	if err != nil {
		return fmt.Errorf("failed to insert comment period '%s' for project %s: %w", p.Name, p.ProjectID, err)
	}
	return nil
}

// GetByID retrieves a comment period by its ID
func (r *CommentPeriodRepo) GetByID(ctx context.Context, id string) (*models.CommentPeriod, error) {
	var (
		p          models.CommentPeriod
		start, end sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, name, start_date, end_date FROM comment_periods WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.ProjectID, &p.Name, &start, &end)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("comment period %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment period %s: %w", id, err)
	}
	p.StartDate = NullTimeToTime(start)
	p.EndDate = NullTimeToTime(end)
	return &p, nil
}

// GetByProject returns the comment periods of one project, earliest first
func (r *CommentPeriodRepo) GetByProject(ctx context.Context, projectID string) ([]*models.CommentPeriod, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, project_id, name, start_date, end_date
		FROM comment_periods
		WHERE project_id = ?
		ORDER BY start_date IS NULL, start_date, name`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query comment periods for project %s: %w", projectID, err)
	}
	defer closeRows(rows)

	periods := make([]*models.CommentPeriod, 0, 4)
	for rows.Next() {
		var (
			p          models.CommentPeriod
			start, end sql.NullTime
		)
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Name, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan comment period row: %w", err)
		}
		p.StartDate = NullTimeToTime(start)
		p.EndDate = NullTimeToTime(end)
		periods = append(periods, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment period rows: %w", err)
	}
	return periods, nil
}
