package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_name ON projects(name)`,

	`CREATE TABLE IF NOT EXISTS comment_periods (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		name TEXT NOT NULL,
		start_date DATETIME,
		end_date DATETIME,
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comment_periods_project ON comment_periods(project_id)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		headline TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		date_added DATETIME NOT NULL,
		project_id TEXT,
		active BOOLEAN NOT NULL DEFAULT 0,
		pinned BOOLEAN NOT NULL DEFAULT 0,
		type TEXT NOT NULL DEFAULT '',
		pcp TEXT,
		content_url TEXT NOT NULL DEFAULT '',
		document_url TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE SET NULL,
		FOREIGN KEY (pcp) REFERENCES comment_periods(id) ON DELETE SET NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_listing ON activities(pinned DESC, date_added DESC)`,
}

// Migrate creates the schema. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i, err)
		}
	}
	return nil
}
