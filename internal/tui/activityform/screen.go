// Package activityform implements the screen that adds or edits a recent
// activity record.
package activityform

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/bulletin/internal/config"
	"github.com/thenoetrevino/bulletin/internal/converters"
	"github.com/thenoetrevino/bulletin/internal/models"
	"github.com/thenoetrevino/bulletin/internal/services/activity"
	"github.com/thenoetrevino/bulletin/internal/tui/huhforms"
	"github.com/thenoetrevino/bulletin/internal/tui/navigation"
	"github.com/thenoetrevino/bulletin/internal/tui/state"
	"github.com/thenoetrevino/bulletin/internal/tui/theme"
)

// screenIDs numbers screens for the lifetime of the process.
var screenIDs atomic.Uint64

// Screen is the add/edit activity screen. It is driven by the shell through
// Init, Update and View, and must be released with Close.
type Screen struct {
	id     uint64
	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	deps   Deps
	logger *slog.Logger
	now    func() time.Time

	types     []string
	pageSize  int
	colors    config.ColorScheme
	keys      keyMap

	isEditing bool
	original  *models.Activity

	form    *state.ActivityForm
	huhForm *huh.Form
	confirm bool

	// values last seen by syncDerived
	lastType    string
	lastProject string

	projects []*models.Project
	loading  bool
	loadErr  error

	periods        []*models.CommentPeriod
	periodsVersion uint64
	periodsApplied bool
	periodsLoading bool
	periodsErr     error
	periodSeq      uint64
	cancelPeriods  context.CancelFunc

	saving bool

	notifications *state.NotificationState
	width         int
	height        int
}

// New builds the screen for route. The screen's work is bound to a child of
// parent that Close cancels.
func New(parent context.Context, route RouteData, deps Deps, cfg *config.Config) *Screen {
	if cfg == nil {
		cfg = config.Default()
	}
	ctx, cancel := context.WithCancel(parent)

	s := &Screen{
		id:            screenIDs.Add(1),
		ctx:           ctx,
		cancel:        cancel,
		deps:          deps,
		logger:        deps.Logger,
		now:           deps.Now,
		types:         cfg.Activity.Types,
		pageSize:      cfg.Activity.ProjectPageSize,
		colors:        cfg.ColorScheme,
		keys:          newKeyMap(cfg.KeyMappings),
		confirm:       true,
		loading:       true,
		notifications: state.NewNotificationState(),
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.pageSize <= 0 {
		s.pageSize = models.DefaultProjectPageSize
	}

	if route.IsEmpty() {
		s.form = state.EmptyForm(s.now())
	} else {
		s.isEditing = true
		s.original = route.Activity
		s.form = state.FormFromActivity(route.Activity)
	}

	// pcp follows the type before anything is rendered
	if s.TypeIsPCP() {
		s.form.PCP.Enable()
	} else {
		s.form.PCP.Reset("", true)
	}
	s.lastType = s.form.Type.Value()
	s.lastProject = s.form.Project.Value()

	return s
}

// Init fetches the reference data. In edit mode with a comment period type
// the stored project's periods are fetched too, keeping the stored pcp.
func (s *Screen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.loadProjects()}
	if s.isEditing && s.TypeIsPCP() && s.ProjectIsSelected() {
		cmds = append(cmds, s.loadPeriodsForProject(s.form.Project.Value(), s.original.PCP))
	}
	return tea.Batch(cmds...)
}

// Close cancels all outstanding work. Results arriving afterwards are ignored.
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.cancelPeriods != nil {
		s.cancelPeriods()
	}
	s.cancel()
}

func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	if s.closed {
		return nil
	}

	switch msg := msg.(type) {
	case projectsLoadedMsg:
		if msg.screen != s.id {
			return nil
		}
		return s.handleProjectsLoaded(msg)
	case periodsLoadedMsg:
		if msg.screen != s.id {
			return nil
		}
		s.handlePeriodsLoaded(msg)
		return nil
	case savedMsg:
		if msg.screen != s.id {
			return nil
		}
		return s.handleSaved(msg)
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		if s.huhForm != nil {
			s.huhForm = s.huhForm.WithWidth(s.formWidth())
		}
	case tea.KeyPressMsg:
		if cmd, handled := s.handleKey(msg); handled {
			return cmd
		}
	}

	return s.updateForm(msg)
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, s.keys.Cancel):
		return s.Cancel(), true
	case key.Matches(msg, s.keys.Save):
		return s.Submit(), true
	case key.Matches(msg, s.keys.Retry):
		return s.Retry(), true
	case key.Matches(msg, s.keys.Dismiss):
		s.notifications.Dismiss()
		return nil, true
	}
	return nil, false
}

// updateForm forwards msg to the huh form and reacts to value changes and
// completion.
func (s *Screen) updateForm(msg tea.Msg) tea.Cmd {
	if s.huhForm == nil || s.saving {
		return nil
	}

	model, cmd := s.huhForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		s.huhForm = f
	}
	cmds := []tea.Cmd{cmd, s.syncDerived()}

	switch s.huhForm.State {
	case huh.StateCompleted:
		if s.confirm {
			cmds = append(cmds, s.Submit())
		} else {
			cmds = append(cmds, s.Cancel())
		}
	case huh.StateAborted:
		cmds = append(cmds, s.Cancel())
	}
	return tea.Batch(cmds...)
}

// syncDerived runs the type and project handlers for values that changed
// since the last call.
func (s *Screen) syncDerived() tea.Cmd {
	var cmds []tea.Cmd
	if t := s.form.Type.Value(); t != s.lastType {
		s.lastType = t
		cmds = append(cmds, s.UpdateType())
	}
	if p := s.form.Project.Value(); p != s.lastProject {
		s.lastProject = p
		cmds = append(cmds, s.UpdateProject())
	}
	return tea.Batch(cmds...)
}

// SetType sets the type control as if the user had picked value.
func (s *Screen) SetType(value string) tea.Cmd {
	s.form.Type.SetValue(value)
	return s.syncDerived()
}

// SetProject sets the project control as if the user had picked id.
func (s *Screen) SetProject(id string) tea.Cmd {
	s.form.Project.SetValue(id)
	return s.syncDerived()
}

// UpdateType enables pcp for the comment period type and loads the periods
// of the selected project. Any other type clears and disables pcp.
func (s *Screen) UpdateType() tea.Cmd {
	if !s.TypeIsPCP() {
		s.form.PCP.Reset("", true)
		return nil
	}
	s.form.PCP.Enable()
	if s.ProjectIsSelected() {
		return s.loadPeriodsForProject(s.form.Project.Value(), "")
	}
	return nil
}

// UpdateProject reloads the periods for a newly selected project while the
// type is a comment period. Clearing the project clears the periods too.
func (s *Screen) UpdateProject() tea.Cmd {
	if !s.TypeIsPCP() {
		return nil
	}
	if !s.ProjectIsSelected() {
		s.clearPeriods()
		return nil
	}
	return s.loadPeriodsForProject(s.form.Project.Value(), "")
}

// clearPeriods empties the period list and pcp, and abandons any period
// request still in flight.
func (s *Screen) clearPeriods() {
	if s.cancelPeriods != nil {
		s.cancelPeriods()
		s.cancelPeriods = nil
	}
	s.periodSeq++
	s.periodsLoading = false
	s.periodsErr = nil
	s.periods = nil
	s.periodsVersion++
	s.form.PCP.SetValue("")
}

// Retry repeats whichever reference load failed last.
func (s *Screen) Retry() tea.Cmd {
	switch {
	case s.loadErr != nil && !s.loading:
		s.loadErr = nil
		s.notifications.ClearLevel(state.LevelError)
		return s.loadProjects()
	case s.periodsErr != nil && s.TypeIsPCP() && s.ProjectIsSelected():
		s.notifications.ClearLevel(state.LevelError)
		return s.loadPeriodsForProject(s.form.Project.Value(), "")
	}
	return nil
}

// Submit builds the record from the form and saves it. On success the
// screen navigates to the listing; failures are shown and the form stays
// editable.
func (s *Screen) Submit() tea.Cmd {
	if s.saving || s.huhForm == nil {
		return nil
	}

	record, err := s.buildRecord()
	if err != nil {
		s.notifications.Add(state.LevelError, describeSaveError(err))
		return s.reopenForm()
	}

	s.saving = true
	return s.saveActivity(record)
}

// Cancel discards the edits and returns to the listing.
func (s *Screen) Cancel() tea.Cmd {
	return s.deps.Navigator.GoTo(navigation.ListRoute)
}

func (s *Screen) buildRecord() (*models.Activity, error) {
	f := s.form
	record := &models.Activity{
		Headline:    strings.TrimSpace(f.Headline.Effective()),
		Content:     f.Content.Effective(),
		ProjectID:   f.Project.Effective(),
		Active:      models.ActiveFromString(f.Active.Effective()),
		Type:        f.Type.Effective(),
		PCP:         f.PCP.Effective(),
		ContentURL:  strings.TrimSpace(f.ContentURL.Effective()),
		DocumentURL: strings.TrimSpace(f.DocumentURL.Effective()),
	}

	if !s.isEditing {
		record.DateAdded = s.now()
		record.Pinned = false
		return record, nil
	}

	dateAdded, err := converters.ParsePickerText(f.DateAdded.Value())
	if err != nil {
		return nil, &activity.ValidationError{Field: "dateAdded", Reason: "enter a date as YYYY-MM-DD"}
	}
	record.ID = s.original.ID
	record.DateAdded = dateAdded
	record.Pinned = s.original.Pinned
	record.CreatedAt = s.original.CreatedAt
	return record, nil
}

func (s *Screen) handleProjectsLoaded(msg projectsLoadedMsg) tea.Cmd {
	s.loading = false
	if msg.err != nil {
		if cancelled(msg.err) {
			return nil
		}
		s.loadErr = &LoadError{What: "projects", Err: msg.err}
		s.logger.Error("Error loading projects", "error", msg.err)
		s.notifications.Add(state.LevelError, s.loadErr.Error())
		return nil
	}

	s.loadErr = nil
	s.projects = msg.projects
	if s.TypeIsPCP() && s.isEditing && !s.periodsApplied {
		s.form.PCP.SetValue(s.original.PCP)
	}

	s.huhForm = s.buildForm()
	return s.huhForm.Init()
}

func (s *Screen) handlePeriodsLoaded(msg periodsLoadedMsg) {
	if msg.seq != s.periodSeq {
		s.logger.Debug("Dropping stale comment periods", "project_id", msg.projectID)
		return
	}
	if s.cancelPeriods != nil {
		s.cancelPeriods()
		s.cancelPeriods = nil
	}
	s.periodsLoading = false
	if msg.err != nil {
		if cancelled(msg.err) {
			return
		}
		s.periodsErr = &LoadError{What: "comment periods", Err: msg.err}
		s.logger.Error("Error loading comment periods", "project_id", msg.projectID, "error", msg.err)
		s.notifications.Add(state.LevelError, s.periodsErr.Error())
		return
	}

	s.periods = msg.periods
	s.periodsVersion++
	s.periodsApplied = true

	keep := ""
	if msg.keep != "" && containsPeriod(msg.periods, msg.keep) {
		keep = msg.keep
	}
	s.form.PCP.SetValue(keep)
}

func (s *Screen) handleSaved(msg savedMsg) tea.Cmd {
	s.saving = false
	if msg.err != nil {
		s.logger.Error("Error saving activity", "editing", s.isEditing, "error", msg.err)
		s.notifications.Add(state.LevelError, describeSaveError(msg.err))
		return s.reopenForm()
	}

	if msg.activity != nil {
		s.logger.Info("Activity saved", "id", msg.activity.ID, "editing", s.isEditing)
	}
	return s.deps.Navigator.GoTo(navigation.ListRoute)
}

// reopenForm rebuilds a huh form that already completed so the user can keep
// editing the same values.
func (s *Screen) reopenForm() tea.Cmd {
	if s.huhForm == nil || s.huhForm.State == huh.StateNormal {
		return nil
	}
	s.huhForm = s.buildForm()
	return s.huhForm.Init()
}

func (s *Screen) buildForm() *huh.Form {
	s.confirm = true

	accent := theme.Create
	if s.isEditing {
		accent = theme.Edit
	}

	form := huhforms.CreateActivityForm(huhforms.ActivityFormFields{
		Headline:    s.form.Headline.Ptr(),
		Content:     s.form.Content.Ptr(),
		DateAdded:   s.form.DateAdded.Ptr(),
		Project:     s.form.Project.Ptr(),
		Active:      s.form.Active.Ptr(),
		Type:        s.form.Type.Ptr(),
		PCP:         s.form.PCP.Ptr(),
		ContentURL:  s.form.ContentURL.Ptr(),
		DocumentURL: s.form.DocumentURL.Ptr(),
		Confirm:     &s.confirm,
	}, huhforms.ActivityFormOptions{
		Editing:        s.isEditing,
		Types:          s.types,
		Projects:       s.projects,
		Periods:        func() []*models.CommentPeriod { return s.periods },
		PeriodsVersion: &s.periodsVersion,
		PCPHidden:      s.form.PCP.Disabled,
	}).WithTheme(huhforms.CreateTheme(s.colors, accent))

	if s.width > 0 {
		form = form.WithWidth(s.formWidth())
	}
	return form
}

func containsPeriod(periods []*models.CommentPeriod, id string) bool {
	for _, p := range periods {
		if p.ID == id {
			return true
		}
	}
	return false
}

// IsEditing reports whether the screen edits an existing record.
func (s *Screen) IsEditing() bool {
	return s.isEditing
}

// TypeIsPCP is derived from the type control on every call.
func (s *Screen) TypeIsPCP() bool {
	return s.form.TypeIsPCP()
}

// ProjectIsSelected is derived from the project control on every call.
func (s *Screen) ProjectIsSelected() bool {
	return s.form.ProjectIsSelected()
}

// Loading reports whether the project list is still being fetched.
func (s *Screen) Loading() bool {
	return s.loading
}

func (s *Screen) Saving() bool {
	return s.saving
}

func (s *Screen) Form() *state.ActivityForm {
	return s.form
}

func (s *Screen) Projects() []*models.Project {
	return s.projects
}

func (s *Screen) Periods() []*models.CommentPeriod {
	return s.periods
}

func (s *Screen) Notifications() *state.NotificationState {
	return s.notifications
}
