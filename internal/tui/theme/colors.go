package theme

import "github.com/thenoetrevino/bulletin/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent    string
	Title     string
	Subtle    string
	Normal    string
	Create    string
	Edit      string
	Delete    string
	InfoFg    string
	InfoBg    string
	WarningFg string
	WarningBg string
	ErrorFg   string
	ErrorBg   string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
