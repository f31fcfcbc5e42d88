// Package scale shows the score bands used to classify a result.
package scale

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/moodcheck/internal/assessment"
	"github.com/abhisek/moodcheck/internal/questionnaire"
	"github.com/abhisek/moodcheck/internal/router"
	"github.com/abhisek/moodcheck/internal/screen"
	"github.com/abhisek/moodcheck/internal/ui/layout"
	"github.com/abhisek/moodcheck/internal/ui/theme"
)

var keyStart = key.NewBinding(
	key.WithKeys("t", "enter"),
	key.WithHelp("t/enter", "take the self-check"),
)

// ScaleScreen lists every severity band with its localized label.
type ScaleScreen struct {
	q     *questionnaire.Questionnaire
	start func() screen.Screen
}

var _ screen.Screen = (*ScaleScreen)(nil)

// New creates a ScaleScreen. start builds the questionnaire screen that
// replaces this one when the user chooses to take the self-check; it may
// be nil.
func New(q *questionnaire.Questionnaire, start func() screen.Screen) *ScaleScreen {
	return &ScaleScreen{q: q, start: start}
}

func (s *ScaleScreen) Init() tea.Cmd {
	return nil
}

func (s *ScaleScreen) Title() string {
	return s.q.UI.ScaleMenu
}

func (s *ScaleScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	if s.start != nil {
		hints = append([]layout.KeyHint{{Key: "t", Description: s.q.UI.Start}}, hints...)
	}
	return hints
}

func (s *ScaleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.start == nil {
		return s, nil
	}
	if key.Matches(kmsg, keyStart) {
		next := s.start()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}
	return s, nil
}

// Rows returns one "min-max label" line per band.
func (s *ScaleScreen) Rows() []string {
	bands := assessment.Bands()
	rows := make([]string, 0, len(bands))
	for _, b := range bands {
		rows = append(rows, fmt.Sprintf("%2d-%-2d  %s", b.Min, b.Max, s.q.SeverityLabel(b.Severity)))
	}
	return rows
}

func (s *ScaleScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(s.q.Title))
	b.WriteString("\n\n")

	rowStyle := lipgloss.NewStyle().Foreground(theme.Text)
	for i, row := range s.Rows() {
		style := rowStyle
		if i == len(s.Rows())-1 {
			style = theme.Highlight
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("0-%d", assessment.MaxScore)))

	card := theme.Card.Render(b.String())
	return layout.Center(card, width, height)
}
