package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moodcheck/internal/ui/theme"
)

// RadioOption is one selectable value in a RadioGroup.
type RadioOption struct {
	Value string
	Label string
}

// RadioChangedMsg is emitted when the user picks a value in a group.
type RadioChangedMsg struct {
	ID    string
	Value string
}

// RadioGroup is a single-choice selector laid out on one row under its title.
// Digit keys pick an option by its value directly.
type RadioGroup struct {
	ID       string
	Title    string
	Options  []RadioOption
	Cursor   int
	Selected int // -1 when nothing is chosen
	Focused  bool
	Marked   bool // drawn as needing attention
	Width    int  // wrap width; 0 disables wrapping
}

// NewRadioGroup creates a group with nothing selected.
func NewRadioGroup(id, title string, options []RadioOption) RadioGroup {
	return RadioGroup{
		ID:       id,
		Title:    title,
		Options:  options,
		Selected: -1,
	}
}

// Init returns nil.
func (r RadioGroup) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and selects options while the group is focused.
func (r RadioGroup) Update(msg tea.Msg) (RadioGroup, tea.Cmd) {
	if !r.Focused {
		return r, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch {
	case key.Matches(kmsg, KeyLeft):
		if r.Cursor > 0 {
			r.Cursor--
		}
	case key.Matches(kmsg, KeyRight):
		if r.Cursor < len(r.Options)-1 {
			r.Cursor++
		}
	case key.Matches(kmsg, KeySelect):
		return r.choose(r.Cursor)
	default:
		for i, opt := range r.Options {
			if kmsg.String() == opt.Value {
				r.Cursor = i
				return r.choose(i)
			}
		}
	}

	return r, nil
}

func (r RadioGroup) choose(i int) (RadioGroup, tea.Cmd) {
	if i < 0 || i >= len(r.Options) {
		return r, nil
	}
	r.Selected = i
	r.Marked = false
	id, value := r.ID, r.Options[i].Value
	return r, func() tea.Msg {
		return RadioChangedMsg{ID: id, Value: value}
	}
}

// Value returns the selected option value, or "".
func (r RadioGroup) Value() string {
	if r.Selected < 0 || r.Selected >= len(r.Options) {
		return ""
	}
	return r.Options[r.Selected].Value
}

// Clear drops the selection and resets the cursor.
func (r *RadioGroup) Clear() {
	r.Selected = -1
	r.Cursor = 0
	r.Marked = false
}

// View renders the title and the options. Options flow onto further rows
// when they do not fit in Width.
func (r RadioGroup) View() string {
	titleStyle := theme.Unfocused
	switch {
	case r.Marked:
		titleStyle = theme.Highlight
	case r.Focused:
		titleStyle = theme.Focused
	}
	if r.Width > 2 {
		titleStyle = titleStyle.Width(r.Width - 2)
	}

	marker := "  "
	if r.Focused {
		marker = theme.Focused.Render("▸ ")
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, marker, titleStyle.Render(r.Title)))

	const indent = "    "
	row := indent
	rowWidth := len(indent)
	for i, opt := range r.Options {
		mark := "○"
		if i == r.Selected {
			mark = "●"
		}
		item := fmt.Sprintf("%s %s", mark, opt.Label)

		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case r.Focused && i == r.Cursor:
			style = theme.Focused.Underline(true)
		case i == r.Selected:
			style = theme.Chosen
		}

		w := lipgloss.Width(item)
		if rowWidth > len(indent) {
			if r.Width > 0 && rowWidth+3+w > r.Width {
				b.WriteString("\n")
				b.WriteString(row)
				row, rowWidth = indent, len(indent)
			} else {
				row += "   "
				rowWidth += 3
			}
		}
		row += style.Render(item)
		rowWidth += w
	}
	b.WriteString("\n")
	b.WriteString(row)

	return b.String()
}
