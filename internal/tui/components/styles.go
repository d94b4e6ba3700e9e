// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/bulletin/internal/config/colors"
	"github.com/thenoetrevino/bulletin/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle renders screen headers
	TitleStyle lipgloss.Style

	// CreateFormBoxStyle frames the add activity form (green border)
	CreateFormBoxStyle lipgloss.Style

	// EditFormBoxStyle frames the edit activity form (blue border)
	EditFormBoxStyle lipgloss.Style

	// PreviewBoxStyle frames the rendered content preview
	PreviewBoxStyle lipgloss.Style

	SelectedRowStyle lipgloss.Style
	RowStyle         lipgloss.Style
	SubtleStyle      lipgloss.Style

	// PinnedStyle marks pinned activities in the listing
	PinnedStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	TitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true).
		Padding(0, 1)

	CreateFormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1, 2)

	EditFormBoxStyle = CreateFormBoxStyle.
		BorderForeground(lipgloss.Color(theme.Edit))

	PreviewBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	SelectedRowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	PinnedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Accent))
}
