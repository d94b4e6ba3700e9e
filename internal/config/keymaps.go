package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Listing
	AddActivity  string `yaml:"add_activity"`
	EditActivity string `yaml:"edit_activity"`
	PrevItem     string `yaml:"prev_item"`
	NextItem     string `yaml:"next_item"`
	Refresh      string `yaml:"refresh"`

	// Forms
	SaveForm   string `yaml:"save_form"`
	CancelForm string `yaml:"cancel_form"`
	Retry      string `yaml:"retry"`
	Dismiss    string `yaml:"dismiss"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddActivity:  "a",
		EditActivity: "e",
		PrevItem:     "k",
		NextItem:     "j",
		Refresh:      "r",

		SaveForm:   "ctrl+s",
		CancelForm: "esc",
		Retry:      "ctrl+r",
		Dismiss:    "ctrl+x",

		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.AddActivity, defaults.AddActivity)
	fill(&k.EditActivity, defaults.EditActivity)
	fill(&k.PrevItem, defaults.PrevItem)
	fill(&k.NextItem, defaults.NextItem)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.CancelForm, defaults.CancelForm)
	fill(&k.Retry, defaults.Retry)
	fill(&k.Dismiss, defaults.Dismiss)
	fill(&k.Quit, defaults.Quit)
}
