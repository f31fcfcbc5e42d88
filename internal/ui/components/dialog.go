package components

import (
	"strings"

	"github.com/abhisek/moodcheck/internal/ui/theme"
)

// Dialog is a bordered modal box with a title, body paragraphs and a hint.
type Dialog struct {
	Title string
	Body  []string
	Hint  string
	Width int
}

// View renders the dialog box. Body paragraphs are wrapped to the box width.
func (d Dialog) View() string {
	w := d.Width
	if w < 20 {
		w = 20
	}
	inner := w - 8 // border + padding

	var b strings.Builder
	b.WriteString(theme.Focused.Width(inner).Render(d.Title))

	for _, p := range d.Body {
		if p == "" {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Width(inner).Render(p))
	}

	if d.Hint != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(inner).Render(d.Hint))
	}

	return theme.Dialog.Width(w).Render(b.String())
}
