package commentperiod_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/bulletin/internal/database"
	"github.com/thenoetrevino/bulletin/internal/services/commentperiod"
	"github.com/thenoetrevino/bulletin/internal/testutil"
)

func TestGetAllByProjectID(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	p1 := testutil.CreateTestProject(t, db, "Mine")
	p2 := testutil.CreateTestProject(t, db, "Dam")
	svc := commentperiod.NewService(database.NewRepository(db).CommentPeriods)
	ctx := context.Background()

	_, err := svc.Create(ctx, commentperiod.CreatePeriodRequest{ProjectID: p1, Name: "Round 1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, commentperiod.CreatePeriodRequest{ProjectID: p2, Name: "Other"})
	require.NoError(t, err)

	periods, err := svc.GetAllByProjectID(ctx, p1)
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, "Round 1", periods[0].Name)
	assert.Equal(t, p1, periods[0].ProjectID)

	_, err = svc.GetAllByProjectID(ctx, "")
	assert.ErrorIs(t, err, commentperiod.ErrInvalidProjectID)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	p1 := testutil.CreateTestProject(t, db, "Mine")
	svc := commentperiod.NewService(database.NewRepository(db).CommentPeriods)
	ctx := context.Background()

	_, err := svc.Create(ctx, commentperiod.CreatePeriodRequest{Name: "x"})
	assert.ErrorIs(t, err, commentperiod.ErrInvalidProjectID)

	_, err = svc.Create(ctx, commentperiod.CreatePeriodRequest{ProjectID: p1, Name: " "})
	assert.ErrorIs(t, err, commentperiod.ErrEmptyName)

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Create(ctx, commentperiod.CreatePeriodRequest{ProjectID: p1, Name: "Backwards", StartDate: start, EndDate: start.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, commentperiod.ErrInvalidDates)
}

func TestGetByID_NotFound(t *testing.T) {
	t.Parallel()
	svc := commentperiod.NewService(database.NewRepository(testutil.SetupTestDB(t)).CommentPeriods)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, commentperiod.ErrPeriodNotFound)
}
