package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
)

// StatusBarProps is the bottom line of a screen: status text on the left,
// key hints on the right.
type StatusBarProps struct {
	Status []string
	Keys   []key.Binding
	Width  int
}

// KeyHints renders bindings as "key desc" pairs, skipping disabled ones.
func KeyHints(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func RenderStatusBar(props StatusBarProps) string {
	left := SubtleStyle.Render(strings.Join(props.Status, "  "))
	right := SubtleStyle.Render(KeyHints(props.Keys))

	gap := max(1, props.Width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}
