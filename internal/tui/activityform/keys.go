package activityform

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/bulletin/internal/config"
)

type keyMap struct {
	Save    key.Binding
	Cancel  key.Binding
	Retry   key.Binding
	Dismiss key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Save:    key.NewBinding(key.WithKeys(km.SaveForm), key.WithHelp(km.SaveForm, "save")),
		Cancel:  key.NewBinding(key.WithKeys(km.CancelForm), key.WithHelp(km.CancelForm, "cancel")),
		Retry:   key.NewBinding(key.WithKeys(km.Retry), key.WithHelp(km.Retry, "retry")),
		Dismiss: key.NewBinding(key.WithKeys(km.Dismiss), key.WithHelp(km.Dismiss, "dismiss")),
	}
}

// shortHelp lists the bindings that currently do something.
func (k keyMap) shortHelp(retryable, dismissable bool) []key.Binding {
	bindings := []key.Binding{k.Save, k.Cancel}
	if retryable {
		bindings = append(bindings, k.Retry)
	}
	if dismissable {
		bindings = append(bindings, k.Dismiss)
	}
	return bindings
}
