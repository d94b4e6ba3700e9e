package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// CreateKeyMap returns huh's default keymap with shift+enter added for
// newlines in the content field. Quitting is left to the screen, which owns
// the cancel binding.
func CreateKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)
	keymap.Quit = key.NewBinding(key.WithDisabled())

	return keymap
}
