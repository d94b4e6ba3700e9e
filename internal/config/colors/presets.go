package colors

// Preset names accepted by the theme.preset config key.
const (
	PresetDefault    = "default"
	PresetHarbour    = "harbour"
	PresetMonochrome = "monochrome"
)

// Default is the slate and teal palette bulletin ships with.
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: PresetDefault,
		Accent: "#2AA198",
		Create: "#87AF5F",
		Edit:   "#5FAFD7",
		Delete: "#D75F5F",
		Title:  "#5FD7AF",
		Subtle: "#626262",
		Normal: "#DADADA",

		InfoFg:    "#87D7FF",
		InfoBg:    "#1C3A4A",
		WarningFg: "#FFD787",
		WarningBg: "#5F4A1C",
		ErrorFg:   "#FF8787",
		ErrorBg:   "#4A1C1C",
	}
}

// Harbour is a warmer variant for light-on-dark terminals with low contrast.
func Harbour() *ColorScheme {
	return &ColorScheme{
		Preset: PresetHarbour,
		Accent: "#D7875F",
		Create: "#AFD787",
		Edit:   "#87AFD7",
		Delete: "#D78787",
		Title:  "#FFAF5F",
		Subtle: "#767676",
		Normal: "#E4E4E4",

		InfoFg:    "#D7FFFF",
		InfoBg:    "#264653",
		WarningFg: "#FFFFD7",
		WarningBg: "#7A5C1E",
		ErrorFg:   "#FFD7D7",
		ErrorBg:   "#6B2A2A",
	}
}

func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: PresetMonochrome,
		Accent: "#FFFFFF",
		Create: "#E4E4E4",
		Edit:   "#BCBCBC",
		Delete: "#FFFFFF",
		Title:  "#FFFFFF",
		Subtle: "#6C6C6C",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#FFFFFF",
		WarningBg: "#444444",
		ErrorFg:   "#000000",
		ErrorBg:   "#BCBCBC",
	}
}

var presets = map[string]func() *ColorScheme{
	PresetDefault:    Default,
	PresetHarbour:    Harbour,
	PresetMonochrome: Monochrome,
}
