package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/bulletin/internal/models"
)

// ActivityRepo handles recent-activity rows
type ActivityRepo struct {
	db *sql.DB
}

const activityColumns = `id, headline, content, date_added, project_id, active, pinned, type, pcp,
	content_url, document_url, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*models.Activity, error) {
	var (
		a            models.Activity
		project, pcp sql.NullString
		created, upd sql.NullTime
	)
	err := row.Scan(&a.ID, &a.Headline, &a.Content, &a.DateAdded, &project, &a.Active, &a.Pinned,
		&a.Type, &pcp, &a.ContentURL, &a.DocumentURL, &created, &upd)
	if err != nil {
		return nil, err
	}
	a.ProjectID = NullStringToString(project)
	a.PCP = NullStringToString(pcp)
	a.CreatedAt = NullTimeToTime(created)
	a.UpdatedAt = NullTimeToTime(upd)
	return &a, nil
}

// Create inserts an activity. The caller supplies the ID.
func (r *ActivityRepo) Create(ctx context.Context, a *models.Activity) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activities (id, headline, content, date_added, project_id, active, pinned, type, pcp,
			content_url, document_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Headline, a.Content, a.DateAdded, stringToNull(a.ProjectID), a.Active, a.Pinned,
		a.Type, stringToNull(a.PCP), a.ContentURL, a.DocumentURL,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity '%s': %w", a.Headline, err)
	}
	return nil
}

// Update overwrites every editable column of an existing activity
func (r *ActivityRepo) Update(ctx context.Context, a *models.Activity) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE activities
			SET headline = ?, content = ?, date_added = ?, project_id = ?, active = ?, pinned = ?,
				type = ?, pcp = ?, content_url = ?, document_url = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?`,
			a.Headline, a.Content, a.DateAdded, stringToNull(a.ProjectID), a.Active, a.Pinned,
			a.Type, stringToNull(a.PCP), a.ContentURL, a.DocumentURL, a.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update activity %s: %w", a.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows for activity %s: %w", a.ID, err)
		}
		if n == 0 {
			return fmt.Errorf("activity %s: %w", a.ID, models.ErrNotFound)
		}
		return nil
	})
}

// GetByID retrieves an activity by its ID
func (r *ActivityRepo) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = ?`, id)
	a, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("activity %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity %s: %w", id, err)
	}
	return a, nil
}

// List returns activities with pinned rows first, then newest first
func (r *ActivityRepo) List(ctx context.Context, opts ListActivitiesOptions) ([]*models.Activity, error) {
	var (
		where []string
		args  []any
	)
	if opts.ProjectID != "" {
		where = append(where, "project_id = ?")
		args = append(args, opts.ProjectID)
	}
	if opts.ActiveOnly {
		where = append(where, "active = 1")
	}

	query := `SELECT ` + activityColumns + ` FROM activities`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY pinned DESC, date_added DESC, id"

	limit := opts.Limit
	if limit <= 0 {
		limit = -1
	}
	query += " LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer closeRows(rows)

	activities := make([]*models.Activity, 0, 16)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}
	return activities, nil
}
