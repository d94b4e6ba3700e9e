package activityform

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/bulletin/internal/config"
	"github.com/thenoetrevino/bulletin/internal/models"
	"github.com/thenoetrevino/bulletin/internal/services/activity"
	"github.com/thenoetrevino/bulletin/internal/tui/navigation"
)

type fakeProjects struct {
	projects []*models.Project
	err      error
	calls    int
	pageSize int
	sort     string
	ctxErrs  []error
}

func (f *fakeProjects) GetAll(ctx context.Context, page, pageSize int, sort string) ([]*models.Project, error) {
	f.calls++
	f.pageSize = pageSize
	f.sort = sort
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	if f.err != nil {
		return nil, f.err
	}
	return f.projects, nil
}

type fakePeriods struct {
	byProject map[string][]*models.CommentPeriod
	err       error
	calls     []string
	ctxErrs   []error
	ctxs      []context.Context
}

func (f *fakePeriods) GetAllByProjectID(ctx context.Context, projectID string) ([]*models.CommentPeriod, error) {
	f.calls = append(f.calls, projectID)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	f.ctxs = append(f.ctxs, ctx)
	if f.err != nil {
		return nil, f.err
	}
	return f.byProject[projectID], nil
}

type fakeSaver struct {
	added     []*models.Activity
	updated   []*models.Activity
	addErr    error
	updateErr error
}

func (f *fakeSaver) Add(_ context.Context, a *models.Activity) (*models.Activity, error) {
	f.added = append(f.added, a)
	if f.addErr != nil {
		return nil, f.addErr
	}
	saved := *a
	saved.ID = "new-id"
	return &saved, nil
}

func (f *fakeSaver) Update(_ context.Context, a *models.Activity) error {
	f.updated = append(f.updated, a)
	return f.updateErr
}

type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) GoTo(path string) tea.Cmd {
	n.paths = append(n.paths, path)
	return navigation.GoTo(path)
}

type fixture struct {
	projects *fakeProjects
	periods  *fakePeriods
	saver    *fakeSaver
	nav      *recordingNavigator
	now      time.Time
}

func newFixture() *fixture {
	return &fixture{
		projects: &fakeProjects{projects: []*models.Project{
			{ID: "P1", Name: "Bridge"},
			{ID: "P2", Name: "Harbour"},
		}},
		periods: &fakePeriods{byProject: map[string][]*models.CommentPeriod{
			"P1": {{ID: "C1", ProjectID: "P1", Name: "Round 1"}, {ID: "C2", ProjectID: "P1", Name: "Round 2"}},
			"P2": {{ID: "C3", ProjectID: "P2", Name: "Scoping"}},
		}},
		saver: &fakeSaver{},
		nav:   &recordingNavigator{},
		now:   time.Date(2026, time.October, 15, 9, 30, 0, 0, time.Local),
	}
}

func (f *fixture) screen(route RouteData) *Screen {
	return New(context.Background(), route, Deps{
		Projects:   f.projects,
		Periods:    f.periods,
		Activities: f.saver,
		Navigator:  f.nav,
		Now:        func() time.Time { return f.now },
	}, config.Default())
}

// run executes cmd and every command batched inside it, returning the
// resulting messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, run(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// deliver feeds msgs to the screen. Commands returned for form setup are not
// executed.
func deliver(s *Screen, msgs []tea.Msg) {
	for _, msg := range msgs {
		s.Update(msg)
	}
}

func activate(s *Screen) {
	deliver(s, run(s.Init()))
}

func pcpRecord() *models.Activity {
	return &models.Activity{
		ID:        "A1",
		Headline:  "Comment period open",
		Content:   "Tell us what you think",
		DateAdded: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local),
		ProjectID: "P1",
		Active:    true,
		Pinned:    true,
		Type:      models.TypePublicCommentPeriod,
		PCP:       "C2",
	}
}

func TestCreateMode_Defaults(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{})

	assert.False(t, s.IsEditing())
	assert.True(t, s.Loading())
	assert.Equal(t, models.ActiveNo, s.Form().Active.Value())
	assert.Equal(t, "2026-10-15", s.Form().DateAdded.Value())
	assert.True(t, s.Form().PCP.Disabled())
	assert.False(t, s.TypeIsPCP())
	assert.False(t, s.ProjectIsSelected())
}

func TestActivate_LoadsProjectsWithConfiguredPage(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{})

	activate(s)

	assert.Equal(t, 1, f.projects.calls)
	assert.Equal(t, models.DefaultProjectPageSize, f.projects.pageSize)
	assert.Equal(t, "+name", f.projects.sort)
	assert.False(t, s.Loading())
	assert.Len(t, s.Projects(), 2)
	assert.Empty(t, f.periods.calls)
}

func TestEditMode_PCPRecordEnablesPCPAndKeepsStoredValue(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{Activity: pcpRecord()})

	assert.True(t, s.IsEditing())
	assert.True(t, s.TypeIsPCP())
	assert.False(t, s.Form().PCP.Disabled())

	activate(s)

	assert.Equal(t, []string{"P1"}, f.periods.calls)
	assert.Len(t, s.Periods(), 2)
	assert.Equal(t, "C2", s.Form().PCP.Value())
	assert.False(t, s.Form().PCP.Disabled())
}

func TestEditMode_StoredPCPMissingFromPeriodsIsCleared(t *testing.T) {
	f := newFixture()
	rec := pcpRecord()
	rec.PCP = "GONE"
	s := f.screen(RouteData{Activity: rec})

	activate(s)

	assert.Equal(t, "", s.Form().PCP.Value())
}

func TestEditMode_NonPCPRecordDisablesPCP(t *testing.T) {
	f := newFixture()
	rec := pcpRecord()
	rec.Type = "News"
	rec.PCP = "C1"
	s := f.screen(RouteData{Activity: rec})

	assert.False(t, s.TypeIsPCP())
	assert.True(t, s.Form().PCP.Disabled())
	assert.Equal(t, "", s.Form().PCP.Value())

	activate(s)

	assert.Empty(t, f.periods.calls)
	assert.Equal(t, "", s.Form().PCP.Value())
}

func TestUpdateType_AwayFromPCPClearsAndDisables(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{Activity: pcpRecord()})
	activate(s)
	require.Equal(t, "C2", s.Form().PCP.Value())

	cmd := s.SetType("News")

	assert.Nil(t, cmd)
	assert.False(t, s.TypeIsPCP())
	assert.True(t, s.Form().PCP.Disabled())
	assert.Equal(t, "", s.Form().PCP.Value())
}

func TestUpdateType_ToPCPWithoutProjectDoesNotLoad(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{})
	activate(s)

	cmd := s.SetType(models.TypePublicCommentPeriod)

	assert.Nil(t, cmd)
	assert.False(t, s.Form().PCP.Disabled())
	assert.Empty(t, f.periods.calls)
}

func TestUpdateProject_WhilePCPReloadsOnceAndResets(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{Activity: pcpRecord()})
	activate(s)
	f.periods.calls = nil

	msgs := run(s.SetProject("P2"))

	assert.Equal(t, []string{"P2"}, f.periods.calls)
	deliver(s, msgs)
	assert.Equal(t, "", s.Form().PCP.Value())
	require.Len(t, s.Periods(), 1)
	assert.Equal(t, "C3", s.Periods()[0].ID)
}

func TestUpdateProject_ClearedWhilePCPEmptiesPeriods(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{Activity: pcpRecord()})
	activate(s)
	require.Len(t, s.Periods(), 2)
	require.Equal(t, "C2", s.Form().PCP.Value())
	f.periods.calls = nil

	assert.Nil(t, s.SetProject(""))

	assert.Empty(t, s.Periods())
	assert.Equal(t, "", s.Form().PCP.Value())
	assert.False(t, s.Form().PCP.Disabled())
	assert.Empty(t, f.periods.calls)
}

func TestUpdateProject_ClearedDropsPendingPeriodLoad(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{})
	activate(s)
	s.SetType(models.TypePublicCommentPeriod)

	pending := s.SetProject("P1")
	s.SetProject("")
	deliver(s, run(pending))

	require.Len(t, f.periods.ctxErrs, 1)
	assert.ErrorIs(t, f.periods.ctxErrs[0], context.Canceled)
	assert.Empty(t, s.Periods())
	assert.Equal(t, "", s.Form().PCP.Value())
}

func TestUpdateProject_NotPCPDoesNotLoad(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{})
	activate(s)

	assert.Nil(t, s.SetProject("P1"))
	assert.True(t, s.ProjectIsSelected())
	assert.Empty(t, f.periods.calls)

	assert.Nil(t, s.SetProject(""))
	assert.False(t, s.ProjectIsSelected())
}

func TestPeriodLoads_OnlyLatestResponseApplies(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{})
	activate(s)
	s.SetType(models.TypePublicCommentPeriod)

	first := s.SetProject("P1")
	second := s.SetProject("P2")

	secondMsgs := run(second)
	firstMsgs := run(first)

	// the superseded request saw its context cancelled
	require.Len(t, f.periods.ctxErrs, 2)
	assert.NoError(t, f.periods.ctxErrs[0])
	assert.ErrorIs(t, f.periods.ctxErrs[1], context.Canceled)

	deliver(s, secondMsgs)
	deliver(s, firstMsgs)

	require.Len(t, s.Periods(), 1)
	assert.Equal(t, "C3", s.Periods()[0].ID)
}

func TestPeriodLoad_ReleasesContextOnceApplied(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{})
	activate(s)
	s.SetType(models.TypePublicCommentPeriod)

	msgs := run(s.SetProject("P1"))
	require.Len(t, f.periods.ctxs, 1)
	assert.NoError(t, f.periods.ctxs[0].Err())

	deliver(s, msgs)

	assert.Len(t, s.Periods(), 2)
	assert.ErrorIs(t, f.periods.ctxs[0].Err(), context.Canceled)
}

func TestSubmit_EditModeKeepsIdentityAndPinned(t *testing.T) {
	f := newFixture()
	rec := pcpRecord()
	rec.Active = false
	s := f.screen(RouteData{Activity: rec})
	activate(s)

	s.Form().Active.SetValue(models.ActiveYes)
	s.Form().Headline.SetValue("  Updated headline  ")
	s.Form().DateAdded.SetValue("2025-07-04")

	msgs := run(s.Submit())

	assert.Empty(t, f.saver.added)
	require.Len(t, f.saver.updated, 1)
	got := f.saver.updated[0]
	assert.Equal(t, "A1", got.ID)
	assert.True(t, got.Pinned)
	assert.True(t, got.Active)
	assert.Equal(t, "Updated headline", got.Headline)
	assert.Equal(t, "C2", got.PCP)
	assert.Equal(t, time.Date(2025, time.July, 4, 0, 0, 0, 0, time.Local), got.DateAdded)

	deliver(s, msgs)
	assert.Equal(t, []string{navigation.ListRoute}, f.nav.paths)
}

func TestSubmit_EditModeActiveNoMapsToFalse(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{Activity: pcpRecord()})
	activate(s)

	s.Form().Active.SetValue(models.ActiveNo)
	run(s.Submit())

	require.Len(t, f.saver.updated, 1)
	assert.False(t, f.saver.updated[0].Active)
}

func TestSubmit_CreateModeCallsAdd(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{})
	activate(s)
	s.Form().Headline.SetValue("New bridge opens")
	s.Form().DateAdded.SetValue("1999-01-01")

	msgs := run(s.Submit())

	assert.Empty(t, f.saver.updated)
	require.Len(t, f.saver.added, 1)
	got := f.saver.added[0]
	assert.Equal(t, "", got.ID)
	assert.False(t, got.Pinned)
	assert.False(t, got.Active)
	assert.Equal(t, f.now, got.DateAdded)

	deliver(s, msgs)
	assert.Equal(t, []string{navigation.ListRoute}, f.nav.paths)
}

func TestSubmit_InvalidEditDateIsReported(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{Activity: pcpRecord()})
	activate(s)
	s.Form().DateAdded.SetValue("not a date")

	assert.Nil(t, run(s.Submit()))
	assert.Empty(t, f.saver.updated)
	require.True(t, s.Notifications().HasAny())
	assert.Contains(t, s.Notifications().All()[0].Message, "dateAdded")
}

func TestSubmit_SaveFailureStaysOnScreen(t *testing.T) {
	f := newFixture()
	f.saver.addErr = &activity.ValidationError{Field: "headline", Reason: "is required"}
	s := f.screen(RouteData{})
	activate(s)

	deliver(s, run(s.Submit()))

	assert.Empty(t, f.nav.paths)
	assert.False(t, s.Saving())
	require.True(t, s.Notifications().HasAny())
	assert.Equal(t, "Invalid headline: is required", s.Notifications().All()[0].Message)

	// the form can be submitted again
	f.saver.addErr = nil
	s.Form().Headline.SetValue("Fixed")
	deliver(s, run(s.Submit()))
	assert.Len(t, f.saver.added, 2)
	assert.Equal(t, []string{navigation.ListRoute}, f.nav.paths)
}

func TestSubmit_IgnoredWhileSaving(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{})
	activate(s)

	first := s.Submit()
	require.NotNil(t, first)
	assert.Nil(t, s.Submit())
}

func TestEndToEnd_CreatePCPActivity(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{})
	activate(s)

	assert.Nil(t, s.SetType(models.TypePublicCommentPeriod))
	assert.False(t, s.Form().PCP.Disabled())

	deliver(s, run(s.SetProject("P1")))
	assert.Equal(t, []string{"P1"}, f.periods.calls)
	assert.True(t, s.TypeIsPCP())
	assert.False(t, s.Form().PCP.Disabled())

	s.Form().Headline.SetValue("Have your say")
	deliver(s, run(s.Submit()))

	require.Len(t, f.saver.added, 1)
	got := f.saver.added[0]
	assert.Equal(t, models.TypePublicCommentPeriod, got.Type)
	assert.Equal(t, "P1", got.ProjectID)
	assert.False(t, got.Active)
	assert.False(t, got.Pinned)
	assert.Equal(t, []string{navigation.ListRoute}, f.nav.paths)
}

func TestCancel_NavigatesToListing(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{Activity: pcpRecord()})
	activate(s)
	s.Form().Headline.SetValue("discarded")

	msgs := run(s.Update(tea.KeyPressMsg{Code: tea.KeyEscape}))

	assert.Equal(t, []string{navigation.ListRoute}, f.nav.paths)
	assert.Equal(t, []tea.Msg{navigation.NavigateMsg{Path: navigation.ListRoute}}, msgs)
	assert.Empty(t, f.saver.updated)
}

func TestClose_DropsInFlightProjectLoad(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{})
	cmd := s.Init()

	s.Close()
	msgs := run(cmd)
	deliver(s, msgs)

	require.Len(t, f.projects.ctxErrs, 1)
	assert.ErrorIs(t, f.projects.ctxErrs[0], context.Canceled)
	assert.True(t, s.Loading())
	assert.Nil(t, s.Projects())
	assert.False(t, s.Notifications().HasAny())
}

func TestClose_DropsInFlightPeriodLoad(t *testing.T) {
	f := newFixture()
	s := f.screen(RouteData{})
	activate(s)
	s.SetType(models.TypePublicCommentPeriod)
	cmd := s.SetProject("P1")
	s.Form().PCP.SetValue("C1")

	s.Close()
	deliver(s, run(cmd))

	assert.ErrorIs(t, f.periods.ctxErrs[0], context.Canceled)
	assert.Nil(t, s.Periods())
	assert.Equal(t, "C1", s.Form().PCP.Value())
	assert.Nil(t, s.Update(tea.KeyPressMsg{Code: tea.KeyEscape}))
	assert.Empty(t, f.nav.paths)
}

func TestLateResultsOfClosedScreenDoNotReachNextScreen(t *testing.T) {
	f := newFixture()
	first := f.screen(RouteData{Activity: pcpRecord()})
	late := run(first.Init())
	first.Close()

	other := pcpRecord()
	other.ID = "A2"
	other.ProjectID = "P2"
	other.PCP = "C3"
	second := f.screen(RouteData{Activity: other})
	activate(second)

	deliver(second, late)

	require.Len(t, second.Periods(), 1)
	assert.Equal(t, "P2", second.Periods()[0].ProjectID)
	assert.Equal(t, "C3", second.Form().PCP.Value())
	assert.Equal(t, "P2", second.Form().Project.Value())
}

func TestLateSaveOfClosedScreenDoesNotNavigateNextScreen(t *testing.T) {
	f := newFixture()
	first := f.screen(RouteData{})
	activate(first)
	first.Form().Headline.SetValue("Open house")
	save := run(first.Submit())
	require.Len(t, save, 1)
	first.Close()

	second := f.screen(RouteData{})
	second.Update(save[0])
	assert.True(t, second.Loading())
	activate(second)
	second.Update(save[0])

	assert.Empty(t, f.nav.paths)
	assert.False(t, second.Saving())
}

func TestProjectLoadFailure_IsRecoverable(t *testing.T) {
	f := newFixture()
	f.projects.err = errors.New("connection refused")
	s := f.screen(RouteData{})

	activate(s)

	assert.False(t, s.Loading())
	require.True(t, s.Notifications().HasAny())
	assert.Contains(t, s.Notifications().All()[0].Message, "could not load projects")
	assert.Contains(t, s.View(), "Projects are unavailable")

	f.projects.err = nil
	deliver(s, run(s.Retry()))

	assert.Equal(t, 2, f.projects.calls)
	assert.Len(t, s.Projects(), 2)
	assert.False(t, s.Notifications().HasAny())
}

func TestPeriodLoadFailure_CanBeRetried(t *testing.T) {
	f := newFixture()
	f.periods.err = errors.New("timeout")
	s := f.screen(RouteData{})
	activate(s)
	s.SetType(models.TypePublicCommentPeriod)

	deliver(s, run(s.SetProject("P1")))
	require.True(t, s.Notifications().HasAny())

	f.periods.err = nil
	deliver(s, run(s.Retry()))

	assert.Equal(t, []string{"P1", "P1"}, f.periods.calls)
	assert.Len(t, s.Periods(), 2)
}

func TestView_ShowsModeAndLoading(t *testing.T) {
	f := newFixture()

	create := f.screen(RouteData{})
	assert.Contains(t, create.View(), "Add activity")
	assert.Contains(t, create.View(), "Loading projects...")

	edit := f.screen(RouteData{Activity: pcpRecord()})
	activate(edit)
	assert.Contains(t, edit.View(), "Edit activity")
	assert.NotContains(t, edit.View(), "Loading projects...")
}

func TestDescribeSaveError(t *testing.T) {
	assert.Equal(t, "This activity no longer exists",
		describeSaveError(activity.ErrActivityNotFound))
	assert.Equal(t, "Saving timed out, try again",
		describeSaveError(context.DeadlineExceeded))
	assert.Equal(t, "Could not save activity: boom",
		describeSaveError(errors.New("boom")))
}

func TestLoadError_Unwraps(t *testing.T) {
	base := errors.New("disk I/O error")
	err := &LoadError{What: "projects", Err: base}

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "could not load projects: disk I/O error", err.Error())
}
