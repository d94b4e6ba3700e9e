package core

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/bulletin/internal/app"
	"github.com/thenoetrevino/bulletin/internal/config"
	"github.com/thenoetrevino/bulletin/internal/models"
	"github.com/thenoetrevino/bulletin/internal/services/activity"
	"github.com/thenoetrevino/bulletin/internal/tui/activityform"
	"github.com/thenoetrevino/bulletin/internal/tui/activitylist"
	"github.com/thenoetrevino/bulletin/internal/tui/navigation"
	"github.com/thenoetrevino/bulletin/internal/tui/state"
)

const timeoutDB = 30 * time.Second

// screen is what the shell needs from every page it hosts.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	Close()
}

// editResolvedMsg carries the record behind an edit route. gen is the
// navigation it answers; a later navigation makes it stale.
type editResolvedMsg struct {
	gen      uint64
	id       string
	activity *models.Activity
	err      error
}

// App is the root Bubble Tea model. It owns the current screen, routes
// NavigateMsg between screens and closes the screen it leaves.
type App struct {
	ctx       context.Context
	services  *app.App
	cfg       *config.Config
	nav       navigation.Navigator
	logger    *slog.Logger
	startPath string

	current screen
	path    string
	navGen  uint64
	width   int
	height  int
}

// New creates the shell. startPath is the first route opened by Init.
func New(ctx context.Context, services *app.App, cfg *config.Config, startPath string) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if startPath == "" {
		startPath = navigation.ListRoute
	}
	return &App{
		ctx:       ctx,
		services:  services,
		cfg:       cfg,
		nav:       navigation.Router{},
		logger:    services.Logger(),
		startPath: startPath,
	}
}

// Init opens the start route.
// Implements tea.Model interface.
func (a *App) Init() tea.Cmd {
	return a.navigate(a.startPath)
}

// Update handles routing messages and hands everything else to the current
// screen.
// Implements tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			a.closeCurrent()
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case navigation.NavigateMsg:
		return a, a.navigate(msg.Path)
	case editResolvedMsg:
		if msg.gen != a.navGen {
			a.logger.Debug("Dropping stale edit route", "id", msg.id)
			return a, nil
		}
		return a, a.openEdit(msg)
	}

	if a.current == nil {
		return a, nil
	}
	return a, a.current.Update(msg)
}

// View renders the current screen on the alternate screen buffer.
// Implements tea.Model interface.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if a.current == nil {
		view.Content = "Loading..."
		return view
	}
	view.Content = a.current.View()
	return view
}

// Path returns the route of the current screen.
func (a *App) Path() string {
	return a.path
}

// Current returns the hosted screen. This is primarily useful for testing.
func (a *App) Current() any {
	return a.current
}

func (a *App) navigate(path string) tea.Cmd {
	a.navGen++
	route, err := navigation.Parse(path)
	if err != nil {
		a.logger.Warn("Unknown route", "path", path)
		cmd := a.openList()
		a.notifyList(state.LevelError, "Unknown route "+path)
		return cmd
	}

	switch route.Kind {
	case navigation.RouteAdd:
		a.path = navigation.AddRoute
		return a.open(activityform.New(a.ctx, activityform.RouteData{}, a.formDeps(), a.cfg))
	case navigation.RouteEdit:
		return a.resolveEdit(route.ID)
	default:
		return a.openList()
	}
}

// resolveEdit loads the record for an edit route. The current screen stays
// up until the record arrives.
func (a *App) resolveEdit(id string) tea.Cmd {
	ctx := a.ctx
	gen := a.navGen
	svc := a.services.ActivityService
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeoutDB)
		defer cancel()
		record, err := svc.GetByID(ctx, id)
		return editResolvedMsg{gen: gen, id: id, activity: record, err: err}
	}
}

func (a *App) openEdit(msg editResolvedMsg) tea.Cmd {
	if msg.err != nil {
		text := "Could not open activity: " + msg.err.Error()
		if errors.Is(msg.err, activity.ErrActivityNotFound) || errors.Is(msg.err, activity.ErrInvalidActivityID) {
			text = "Activity " + msg.id + " was not found"
		}
		a.logger.Error("Error opening activity", "id", msg.id, "error", msg.err)
		cmd := a.openList()
		a.notifyList(state.LevelError, text)
		return cmd
	}

	a.path = navigation.EditRoute(msg.id)
	return a.open(activityform.New(a.ctx, activityform.RouteData{Activity: msg.activity}, a.formDeps(), a.cfg))
}

func (a *App) openList() tea.Cmd {
	a.path = navigation.ListRoute
	return a.open(activitylist.New(a.ctx, a.services.ActivityService, a.nav, a.cfg, a.logger))
}

func (a *App) notifyList(level state.NotificationLevel, text string) {
	if list, ok := a.current.(*activitylist.Screen); ok {
		list.Notify(level, text)
	}
}

// open replaces the current screen, closing the old one first.
func (a *App) open(s screen) tea.Cmd {
	a.closeCurrent()
	a.current = s
	if a.width > 0 {
		s.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	return s.Init()
}

func (a *App) closeCurrent() {
	if a.current != nil {
		a.current.Close()
		a.current = nil
	}
}

func (a *App) formDeps() activityform.Deps {
	return activityform.Deps{
		Projects:   a.services.ProjectService,
		Periods:    a.services.PeriodService,
		Activities: a.services.ActivityService,
		Navigator:  a.nav,
		Logger:     a.logger,
	}
}
