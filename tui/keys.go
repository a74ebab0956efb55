package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// keyMap holds the bindings the model reacts to. Everything else goes to
// the text input.
type keyMap struct {
	Quit        key.Binding
	Submit      key.Binding
	HistoryPrev key.Binding
	HistoryNext key.Binding
	Scroll      key.Binding
}

var keys = keyMap{
	Quit:        key.NewBinding(key.WithKeys("ctrl+c")),
	Submit:      key.NewBinding(key.WithKeys("enter")),
	HistoryPrev: key.NewBinding(key.WithKeys("up")),
	HistoryNext: key.NewBinding(key.WithKeys("down")),
	Scroll:      key.NewBinding(key.WithKeys("pgup", "pgdown", "ctrl+u", "ctrl+d")),
}

// viewportKeyMap leaves Up and Down to the command history.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
