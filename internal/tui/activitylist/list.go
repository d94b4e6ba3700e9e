// Package activitylist is the listing screen the activity form returns to.
package activitylist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/thenoetrevino/bulletin/internal/config"
	"github.com/thenoetrevino/bulletin/internal/converters"
	"github.com/thenoetrevino/bulletin/internal/models"
	"github.com/thenoetrevino/bulletin/internal/services/activity"
	"github.com/thenoetrevino/bulletin/internal/tui/components"
	"github.com/thenoetrevino/bulletin/internal/tui/navigation"
	"github.com/thenoetrevino/bulletin/internal/tui/notifications"
	"github.com/thenoetrevino/bulletin/internal/tui/state"
)

const timeoutDB = 30 * time.Second

// Lister supplies the activities shown on the screen.
type Lister interface {
	List(ctx context.Context, opts activity.ListOptions) ([]*models.Activity, error)
}

// loadedMsg names the screen that asked for it so a newer listing ignores
// results meant for one already closed.
type loadedMsg struct {
	from       *Screen
	activities []*models.Activity
	err        error
}

type keyMap struct {
	Add     key.Binding
	Edit    key.Binding
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Add:     key.NewBinding(key.WithKeys(km.AddActivity), key.WithHelp(km.AddActivity, "add")),
		Edit:    key.NewBinding(key.WithKeys(km.EditActivity, "enter"), key.WithHelp(km.EditActivity, "edit")),
		Up:      key.NewBinding(key.WithKeys(km.PrevItem, "up"), key.WithHelp(km.PrevItem, "up")),
		Down:    key.NewBinding(key.WithKeys(km.NextItem, "down"), key.WithHelp(km.NextItem, "down")),
		Refresh: key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		Dismiss: key.NewBinding(key.WithKeys(km.Dismiss), key.WithHelp(km.Dismiss, "dismiss")),
		Quit:    key.NewBinding(key.WithKeys(km.Quit), key.WithHelp(km.Quit, "quit")),
	}
}

// Screen lists activities, pinned first, and opens the form for them.
type Screen struct {
	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	lister Lister
	nav    navigation.Navigator
	logger *slog.Logger
	keys   keyMap

	activities    []*models.Activity
	selection     *state.ListSelection
	loading       bool
	notifications *state.NotificationState
	width         int
	height        int
}

func New(parent context.Context, lister Lister, nav navigation.Navigator, cfg *config.Config, logger *slog.Logger) *Screen {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Screen{
		ctx:           ctx,
		cancel:        cancel,
		lister:        lister,
		nav:           nav,
		logger:        logger,
		keys:          newKeyMap(cfg.KeyMappings),
		selection:     state.NewListSelection(),
		notifications: state.NewNotificationState(),
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.load()
}

func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
}

// Notify shows a message on the listing, e.g. when an edit route failed.
func (s *Screen) Notify(level state.NotificationLevel, message string) {
	s.notifications.Add(level, message)
}

func (s *Screen) load() tea.Cmd {
	s.loading = true
	ctx := s.ctx
	lister := s.lister
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeoutDB)
		defer cancel()
		activities, err := lister.List(ctx, activity.ListOptions{})
		return loadedMsg{from: s, activities: activities, err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	if s.closed {
		return nil
	}

	switch msg := msg.(type) {
	case loadedMsg:
		if msg.from != s {
			return nil
		}
		s.loading = false
		if msg.err != nil {
			s.logger.Error("Error loading activities", "error", msg.err)
			s.notifications.Add(state.LevelError, "Could not load activities: "+msg.err.Error())
			return nil
		}
		s.activities = msg.activities
		s.selection.Clamp(len(s.activities))
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return nil
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return tea.Quit
	case key.Matches(msg, s.keys.Add):
		return s.nav.GoTo(navigation.AddRoute)
	case key.Matches(msg, s.keys.Edit):
		if a := s.Selected(); a != nil {
			return s.nav.GoTo(navigation.EditRoute(a.ID))
		}
	case key.Matches(msg, s.keys.Up):
		s.selection.MoveUp()
	case key.Matches(msg, s.keys.Down):
		s.selection.MoveDown(len(s.activities), s.visibleRows())
	case key.Matches(msg, s.keys.Refresh):
		return s.load()
	case key.Matches(msg, s.keys.Dismiss):
		s.notifications.Dismiss()
	}
	return nil
}

// Selected returns the highlighted activity, or nil for an empty list.
func (s *Screen) Selected() *models.Activity {
	i := s.selection.SelectedRow()
	if i < 0 || i >= len(s.activities) {
		return nil
	}
	return s.activities[i]
}

func (s *Screen) Activities() []*models.Activity {
	return s.activities
}

func (s *Screen) Notifications() *state.NotificationState {
	return s.notifications
}

func (s *Screen) visibleRows() int {
	// title, status bar and a little breathing room
	rows := s.height - 6
	if s.notifications.HasAny() {
		rows -= 4 * len(s.notifications.All())
	}
	return max(rows, 3)
}

func (s *Screen) View() string {
	sections := []string{components.TitleStyle.Render("Recent activity")}

	if banners := notifications.RenderStack(s.notifications); banners != "" {
		sections = append(sections, banners)
	}

	switch {
	case s.loading && len(s.activities) == 0:
		sections = append(sections, components.SubtleStyle.Render("Loading activities..."))
	case len(s.activities) == 0:
		sections = append(sections, components.SubtleStyle.Render("No activities yet. Press "+s.keys.Add.Help().Key+" to add one."))
	default:
		sections = append(sections, s.renderRows())
	}

	sections = append(sections, components.RenderStatusBar(components.StatusBarProps{
		Status: []string{fmt.Sprintf("%d activities", len(s.activities))},
		Keys:   []key.Binding{s.keys.Add, s.keys.Edit, s.keys.Refresh, s.keys.Quit},
		Width:  s.width,
	}))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *Screen) renderRows() string {
	start := s.selection.ScrollOffset()
	end := min(len(s.activities), start+s.visibleRows())

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, s.renderRow(s.activities[i], i == s.selection.SelectedRow()))
	}
	return strings.Join(rows, "\n")
}

func (s *Screen) renderRow(a *models.Activity, selected bool) string {
	cursor := "  "
	style := components.RowStyle
	if selected {
		cursor = "> "
		style = components.SelectedRowStyle
	}

	pin := " "
	if a.Pinned {
		pin = components.PinnedStyle.Render("*")
	}
	active := "inactive"
	if a.Active {
		active = "active"
	}

	line := fmt.Sprintf("%s %-22s %-8s ",
		converters.FormatPickerText(a.DateAdded), truncate(a.Type, 22), active)
	if s.width > 0 {
		line += truncate(a.Headline, max(10, s.width-xansi.StringWidth(line)-4))
	} else {
		line += a.Headline
	}
	return cursor + pin + " " + style.Render(line)
}

// truncate cuts s to n terminal cells, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if xansi.StringWidth(s) <= n {
		return s
	}
	return xansi.Cut(s, 0, n-1) + "…"
}
