package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/moodcheck/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label       string
	Focused     bool
	Destructive bool
	OnPress     func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, destructive bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:       label,
		Destructive: destructive,
		OnPress:     onPress,
	}
}

// Update presses the button on enter or space while focused.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Focused {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(kmsg, KeySelect) && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if !b.Focused {
		return theme.ButtonInactive.Render(b.Label)
	}
	label := "▸ " + b.Label
	if b.Destructive {
		return theme.ButtonDestructive.Render(label)
	}
	return theme.ButtonActive.Render(label)
}
