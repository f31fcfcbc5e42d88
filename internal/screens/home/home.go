// Package home is the start menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/moodcheck/internal/questionnaire"
	"github.com/abhisek/moodcheck/internal/router"
	"github.com/abhisek/moodcheck/internal/screen"
	"github.com/abhisek/moodcheck/internal/ui/components"
	"github.com/abhisek/moodcheck/internal/ui/layout"
)

// Factories build the screens reachable from the menu.
type Factories struct {
	Form  func() screen.Screen
	Scale func() screen.Screen
}

// HomeScreen shows the questionnaire title, its instructions and a menu.
type HomeScreen struct {
	q          *questionnaire.Questionnaire
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. Menu entries whose factory is nil are disabled.
func New(q *questionnaire.Questionnaire, f Factories) *HomeScreen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			next := factory()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: next}
			}
		}
	}

	menuLabels := []string{q.UI.Start, q.UI.ScaleMenu, q.UI.Quit}
	items := []components.MenuItem{
		{Label: menuLabels[0], Disabled: f.Form == nil},
		{Label: menuLabels[1], Disabled: f.Scale == nil},
		{Label: menuLabels[2], Action: func() tea.Cmd { return tea.Quit }},
	}
	if f.Form != nil {
		items[0].Action = push(f.Form)
	}
	if f.Scale != nil {
		items[1].Action = push(f.Scale)
	}

	return &HomeScreen{
		q:          q,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: h.q.UI.Quit},
	}
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)
	cw := contentWidth(width)

	disabled := make(map[int]bool)
	for i, item := range h.menu.Items {
		disabled[i] = item.Disabled
	}

	sections := []string{renderTitle(h.q.Title, cw)}
	if !compact {
		sections = append(sections, renderInstructions(h.q.Instructions, cw))
	}
	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, disabled))
	}

	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return ""
}
