package notifications

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/bulletin/internal/tui/state"
)

// Render draws a bordered banner: a bold header naming the severity and the
// message beneath it.
func Render(severity Severity, message string) string {
	st := severity.style()
	fg := lipgloss.Color(st.fg)
	bg := lipgloss.Color(st.bg)

	header := st.icon + " " + severity.String()
	width := max(lipgloss.Width(header), lipgloss.Width(message))

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(fg).Bold(true).Width(width).Render(header),
		lipgloss.NewStyle().Foreground(fg).Width(width).Render(message),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(bg).
		Background(bg).
		Padding(0, 1).
		Render(body)
}

// SeverityOf maps a notification level to its banner severity.
func SeverityOf(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(n state.Notification) string {
	return Render(SeverityOf(n.Level), n.Message)
}

// RenderStack renders every notification in ns, newest last.
func RenderStack(ns *state.NotificationState) string {
	if ns == nil || !ns.HasAny() {
		return ""
	}
	banners := make([]string, 0, len(ns.All()))
	for _, n := range ns.All() {
		banners = append(banners, RenderFromState(n))
	}
	return strings.Join(banners, "\n")
}
