package activity_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/bulletin/internal/database"
	"github.com/thenoetrevino/bulletin/internal/models"
	"github.com/thenoetrevino/bulletin/internal/services/activity"
	"github.com/thenoetrevino/bulletin/internal/testutil"
)

type fixture struct {
	svc      activity.Service
	project  string
	other    string
	period   string
	otherPCP string
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)

	f := fixture{
		project: testutil.CreateTestProject(t, db, "Mine"),
		other:   testutil.CreateTestProject(t, db, "Dam"),
	}
	f.period = testutil.CreateTestCommentPeriod(t, db, f.project, "Round 1")
	f.otherPCP = testutil.CreateTestCommentPeriod(t, db, f.other, "Elsewhere")
	f.svc = activity.NewService(repo.Activities, repo.Projects, repo.CommentPeriods, nil)
	return f
}

func validActivity(projectID string) *models.Activity {
	return &models.Activity{
		Headline:  "Site visit",
		Content:   "We visited the site.",
		DateAdded: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		ProjectID: projectID,
		Type:      "News",
	}
}

func TestAdd_AssignsID(t *testing.T) {
	t.Parallel()
	f := setup(t)

	got, err := f.svc.Add(context.Background(), validActivity(f.project))
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Site visit", got.Headline)
	assert.False(t, got.Pinned)
}

func TestAdd_RejectsExistingID(t *testing.T) {
	t.Parallel()
	f := setup(t)

	a := validActivity(f.project)
	a.ID = "already"
	_, err := f.svc.Add(context.Background(), a)
	assert.ErrorIs(t, err, activity.ErrAlreadyPersisted)
}

func TestAdd_PublicCommentPeriod(t *testing.T) {
	t.Parallel()
	f := setup(t)

	a := validActivity(f.project)
	a.Type = models.TypePublicCommentPeriod
	a.PCP = f.period

	got, err := f.svc.Add(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, f.period, got.PCP)
}

func TestAdd_Validation(t *testing.T) {
	t.Parallel()
	f := setup(t)

	tests := []struct {
		name   string
		mutate func(a *models.Activity)
		field  string
	}{
		{"empty headline", func(a *models.Activity) { a.Headline = "  " }, "headline"},
		{"long headline", func(a *models.Activity) { a.Headline = strings.Repeat("h", activity.MaxHeadlineLength+1) }, "headline"},
		{"missing date", func(a *models.Activity) { a.DateAdded = time.Time{} }, "dateAdded"},
		{"relative content url", func(a *models.Activity) { a.ContentURL = "/news/1" }, "contentUrl"},
		{"ftp document url", func(a *models.Activity) { a.DocumentURL = "ftp://host/doc.pdf" }, "documentUrl"},
		{"unknown project", func(a *models.Activity) { a.ProjectID = "nope" }, "project"},
		{"pcp without pcp type", func(a *models.Activity) { a.PCP = f.period }, "pcp"},
		{"unknown pcp", func(a *models.Activity) {
			a.Type = models.TypePublicCommentPeriod
			a.PCP = "nope"
		}, "pcp"},
		{"pcp from another project", func(a *models.Activity) {
			a.Type = models.TypePublicCommentPeriod
			a.PCP = f.otherPCP
		}, "pcp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validActivity(f.project)
			tt.mutate(a)

			_, err := f.svc.Add(context.Background(), a)
			require.Error(t, err)
			assert.ErrorIs(t, err, activity.ErrValidation)

			var verr *activity.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestAdd_AcceptsHTTPURLs(t *testing.T) {
	t.Parallel()
	f := setup(t)

	a := validActivity("")
	a.ContentURL = "https://example.org/news/1"
	a.DocumentURL = "http://example.org/doc.pdf"

	_, err := f.svc.Add(context.Background(), a)
	assert.NoError(t, err)
}

func TestUpdate(t *testing.T) {
	t.Parallel()
	f := setup(t)
	ctx := context.Background()

	created, err := f.svc.Add(ctx, validActivity(f.project))
	require.NoError(t, err)

	created.Headline = "Updated headline"
	created.Pinned = true
	require.NoError(t, f.svc.Update(ctx, created))

	got, err := f.svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated headline", got.Headline)
	assert.True(t, got.Pinned)
}

func TestUpdate_Errors(t *testing.T) {
	t.Parallel()
	f := setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.svc.Update(ctx, validActivity(f.project)), activity.ErrInvalidActivityID)

	missing := validActivity(f.project)
	missing.ID = "ghost"
	assert.ErrorIs(t, f.svc.Update(ctx, missing), activity.ErrActivityNotFound)
}

func TestGetByID_Errors(t *testing.T) {
	t.Parallel()
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.GetByID(ctx, "")
	assert.ErrorIs(t, err, activity.ErrInvalidActivityID)

	_, err = f.svc.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, activity.ErrActivityNotFound)
}

func TestList(t *testing.T) {
	t.Parallel()
	f := setup(t)
	ctx := context.Background()

	a := validActivity(f.project)
	a.Active = true
	_, err := f.svc.Add(ctx, a)
	require.NoError(t, err)
	_, err = f.svc.Add(ctx, validActivity(f.other))
	require.NoError(t, err)

	all, err := f.svc.List(ctx, activity.ListOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := f.svc.List(ctx, activity.ListOptions{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, f.project, active[0].ProjectID)
}
