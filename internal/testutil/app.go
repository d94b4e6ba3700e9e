package testutil

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/bulletin/internal/app"
	"github.com/thenoetrevino/bulletin/internal/database"
)

// SetupAppTest creates an in-memory database and an App wired to it.
// Service logs are discarded.
func SetupAppTest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return db, app.New(database.NewRepository(db), app.WithLogger(logger))
}
