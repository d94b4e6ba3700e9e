package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name: "default", "harbour" or "monochrome"
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // add form border
	Edit   string `yaml:"edit"`   // edit form border
	Delete string `yaml:"delete"` // validation messages

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns the named preset, falling back to Default for unknown
// names.
func GetPreset(name string) *ColorScheme {
	if preset, ok := presets[name]; ok {
		return preset()
	}
	return Default()
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Create, preset.Create)
	fill(&c.Edit, preset.Edit)
	fill(&c.Delete, preset.Delete)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.WarningBg, preset.WarningBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom overrides non-empty values from other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Create, other.Create)
	merge(&c.Edit, other.Edit)
	merge(&c.Delete, other.Delete)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.WarningFg, other.WarningFg)
	merge(&c.WarningBg, other.WarningBg)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)
}
