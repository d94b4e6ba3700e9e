package notifications

import "github.com/thenoetrevino/bulletin/internal/tui/theme"

// Severity picks the banner colours and header of a notification.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return "Info"
	}
}

type style struct {
	icon string
	fg   string
	bg   string
}

// style reads the theme on every call so a reloaded colour scheme applies
// to banners already on screen.
func (s Severity) style() style {
	switch s {
	case Warning:
		return style{icon: "!", fg: theme.WarningFg, bg: theme.WarningBg}
	case Error:
		return style{icon: "✕", fg: theme.ErrorFg, bg: theme.ErrorBg}
	default:
		return style{icon: "•", fg: theme.InfoFg, bg: theme.InfoBg}
	}
}
