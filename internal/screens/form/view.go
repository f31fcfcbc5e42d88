package form

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/moodcheck/internal/assessment"
	"github.com/abhisek/moodcheck/internal/ui/components"
	"github.com/abhisek/moodcheck/internal/ui/layout"
	"github.com/abhisek/moodcheck/internal/ui/theme"
)

const maxFormWidth = 100

func (f *FormScreen) View(width, height int) string {
	if f.dialog != dialogNone {
		return layout.Center(f.renderDialog(width), width, height)
	}

	w := width - 4
	if w > maxFormWidth {
		w = maxFormWidth
	}
	if w < 20 {
		w = 20
	}

	top := theme.Hint.Width(w).Render(f.q.Instructions) + "\n" +
		components.NewProgressBar("", f.engine.Answered(), assessment.QuestionCount, w).View()
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, f.evaluate.View(), "  ", f.reset.View())

	budget := height - lipgloss.Height(top) - lipgloss.Height(buttons) - 2
	blocks := make([]string, len(f.groups))
	for i := range f.groups {
		g := f.groups[i]
		g.Width = w
		blocks[i] = g.View()
	}
	questions := strings.Join(visibleBlocks(blocks, f.focus, budget), "\n\n")

	content := top + "\n\n" + questions + "\n\n" + buttons
	return lipgloss.NewStyle().Padding(0, 2).Render(content)
}

// visibleBlocks picks a contiguous run of blocks that fits in budget lines
// (with one blank line between blocks) and contains the focused block when
// it is a question.
func visibleBlocks(blocks []string, focus, budget int) []string {
	if len(blocks) == 0 {
		return nil
	}
	if focus >= len(blocks) {
		focus = len(blocks) - 1
	}

	start, end := focus, focus+1
	used := lipgloss.Height(blocks[focus])
	for {
		grew := false
		if end < len(blocks) {
			if h := lipgloss.Height(blocks[end]) + 1; used+h <= budget {
				used += h
				end++
				grew = true
			}
		}
		if start > 0 {
			if h := lipgloss.Height(blocks[start-1]) + 1; used+h <= budget {
				used += h
				start--
				grew = true
			}
		}
		if !grew {
			break
		}
	}
	return blocks[start:end]
}

func (f *FormScreen) renderDialog(width int) string {
	w := width - 8
	if w > 72 {
		w = 72
	}

	d := components.Dialog{
		Hint:  "Esc " + f.q.UI.Close,
		Width: w,
	}

	switch f.dialog {
	case dialogResult:
		d.Title = f.q.ResultLine(f.result.Score)
		d.Body = []string{f.result.Advice, f.scaleText()}
	case dialogIncomplete:
		d.Title = f.q.UI.Incomplete
		ids := make([]string, 0, len(f.missing.Missing))
		for _, id := range f.missing.Missing {
			ids = append(ids, string(id))
		}
		d.Body = []string{f.q.UI.Missing + " " + strings.Join(ids, ", ")}
	}

	return d.View()
}

func (f *FormScreen) scaleText() string {
	lines := append([]string{f.q.Scale.Heading}, f.q.Scale.Lines...)
	return strings.Join(lines, "\n")
}
