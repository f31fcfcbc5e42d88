package components

import "charm.land/bubbles/v2/key"

// Shared key bindings for list-like components.
var (
	KeyUp = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	)
	KeyDown = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	)
	KeyLeft = key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous choice"),
	)
	KeyRight = key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next choice"),
	)
	KeySelect = key.NewBinding(
		key.WithKeys("enter", "space", " "),
		key.WithHelp("enter/space", "select"),
	)
)
