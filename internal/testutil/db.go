package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/bulletin/internal/database"
	"github.com/thenoetrevino/bulletin/internal/models"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// :memory: is per connection, so pin the pool to one
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// CreateTestProject inserts a project and returns its ID
func CreateTestProject(t *testing.T, db *sql.DB, name string) string {
	t.Helper()
	p := &models.Project{ID: uuid.NewString(), Name: name}
	if err := database.NewRepository(db).Projects.Create(context.Background(), p); err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	return p.ID
}

// CreateTestCommentPeriod inserts a comment period for projectID and returns its ID
func CreateTestCommentPeriod(t *testing.T, db *sql.DB, projectID, name string) string {
	t.Helper()
	start := time.Now().Truncate(24 * time.Hour)
	p := &models.CommentPeriod{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Name:      name,
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0),
	}
	if err := database.NewRepository(db).CommentPeriods.Create(context.Background(), p); err != nil {
		t.Fatalf("Failed to create test comment period: %v", err)
	}
	return p.ID
}

// CreateTestActivity inserts a minimal News activity and returns it
func CreateTestActivity(t *testing.T, db *sql.DB, headline, projectID string) *models.Activity {
	t.Helper()
	a := &models.Activity{
		ID:        uuid.NewString(),
		Headline:  headline,
		DateAdded: time.Now(),
		ProjectID: projectID,
		Type:      "News",
	}
	if err := database.NewRepository(db).Activities.Create(context.Background(), a); err != nil {
		t.Fatalf("Failed to create test activity: %v", err)
	}
	return a
}

// Fixture holds the IDs created by SeedFixture
type Fixture struct {
	ProjectID  string
	PeriodID   string
	ActivityID string
}

// SeedFixture inserts one project with a comment period and one activity
func SeedFixture(t *testing.T, db *sql.DB) *Fixture {
	t.Helper()
	projectID := CreateTestProject(t, db, "Harbour Bridge")
	periodID := CreateTestCommentPeriod(t, db, projectID, "Draft design")
	a := CreateTestActivity(t, db, "Seeded headline", projectID)
	return &Fixture{ProjectID: projectID, PeriodID: periodID, ActivityID: a.ID}
}
