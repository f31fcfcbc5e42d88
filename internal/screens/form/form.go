// Package form is the interactive questionnaire: nine single-choice
// questions, an Evaluate button and a Reset button.
package form

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/moodcheck/internal/assessment"
	"github.com/abhisek/moodcheck/internal/logging"
	"github.com/abhisek/moodcheck/internal/questionnaire"
	"github.com/abhisek/moodcheck/internal/report"
	"github.com/abhisek/moodcheck/internal/screen"
	"github.com/abhisek/moodcheck/internal/ui/components"
	"github.com/abhisek/moodcheck/internal/ui/layout"
)

type evaluateMsg struct{}

type resetMsg struct{}

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogResult
	dialogIncomplete
)

var (
	keyNext = key.NewBinding(
		key.WithKeys("down", "j", "tab"),
		key.WithHelp("↓/tab", "next"),
	)
	keyPrev = key.NewBinding(
		key.WithKeys("up", "k", "shift+tab"),
		key.WithHelp("↑/shift+tab", "previous"),
	)
	keyEvaluate = key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "evaluate"),
	)
	keyReset = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	)
	keyClose = key.NewBinding(
		key.WithKeys("esc", "enter", "space", " ", "q"),
		key.WithHelp("esc", "close"),
	)
)

// FormScreen drives an assessment.Engine from the keyboard.
type FormScreen struct {
	q       *questionnaire.Questionnaire
	engine  *assessment.Engine
	log     *logging.Logger
	session string

	groups   []components.RadioGroup
	evaluate components.Button
	reset    components.Button

	// focus indexes groups first, then the evaluate and reset buttons.
	focus int

	dialog  dialogKind
	result  *report.Result
	missing *report.Incomplete
}

var _ screen.Screen = (*FormScreen)(nil)

// New creates a FormScreen with an empty engine. A nil logger discards.
func New(q *questionnaire.Questionnaire, log *logging.Logger) *FormScreen {
	if log == nil {
		log = logging.Discard()
	}

	options := make([]components.RadioOption, 0, len(q.Choices))
	for _, c := range q.Choices {
		options = append(options, components.RadioOption{Value: c.Value, Label: c.Label})
	}

	groups := make([]components.RadioGroup, 0, assessment.QuestionCount)
	for i, id := range assessment.QuestionIDs() {
		title := string(id)
		if question, ok := q.Question(id); ok {
			title = fmt.Sprintf("%d. %s", i+1, question.Text)
		}
		groups = append(groups, components.NewRadioGroup(string(id), title, options))
	}

	f := &FormScreen{
		q:       q,
		engine:  assessment.New(),
		log:     log,
		session: uuid.NewString(),
		groups:  groups,
		evaluate: components.NewButton(q.UI.Evaluate, false, func() tea.Cmd {
			return func() tea.Msg { return evaluateMsg{} }
		}),
		reset: components.NewButton(q.UI.Reset, true, func() tea.Cmd {
			return func() tea.Msg { return resetMsg{} }
		}),
	}
	f.applyFocus()
	f.log.Debug("session started", "session_id", f.session, "locale", q.Locale)
	return f
}

func (f *FormScreen) Init() tea.Cmd {
	return nil
}

func (f *FormScreen) Title() string {
	return f.q.Title
}

// Engine exposes the underlying engine.
func (f *FormScreen) Engine() *assessment.Engine {
	return f.engine
}

// Session returns the current session id. It changes on every reset.
func (f *FormScreen) Session() string {
	return f.session
}

// Status reports answered questions as "n/9".
func (f *FormScreen) Status() string {
	return fmt.Sprintf("%d/%d", f.engine.Answered(), assessment.QuestionCount)
}

// CapturesEsc is true while a dialog is open.
func (f *FormScreen) CapturesEsc() bool {
	return f.dialog != dialogNone
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	if f.dialog != dialogNone {
		return []layout.KeyHint{
			{Key: "Esc", Description: f.q.UI.Close},
			{Key: "Ctrl+C", Description: f.q.UI.Quit},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Question"},
		{Key: "←→", Description: "Choice"},
		{Key: "0-3", Description: "Answer"},
		{Key: "e", Description: f.q.UI.Evaluate},
		{Key: "r", Description: f.q.UI.Reset},
		{Key: "Esc", Description: "Back"},
	}
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.RadioChangedMsg:
		f.record(assessment.QuestionID(msg.ID), msg.Value)
		return f, nil

	case evaluateMsg:
		f.runEvaluate()
		return f, nil

	case resetMsg:
		f.runReset()
		return f, nil

	case tea.KeyMsg:
		return f, f.handleKey(msg)
	}

	return f, nil
}

func (f *FormScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if f.dialog != dialogNone {
		if key.Matches(msg, keyClose) {
			f.closeDialog()
		}
		return nil
	}

	switch {
	case key.Matches(msg, keyNext):
		f.moveFocus(1)
		return nil
	case key.Matches(msg, keyPrev):
		f.moveFocus(-1)
		return nil
	case key.Matches(msg, keyEvaluate):
		f.runEvaluate()
		return nil
	case key.Matches(msg, keyReset):
		f.runReset()
		return nil
	}

	var cmd tea.Cmd
	switch n := len(f.groups); {
	case f.focus < n:
		f.groups[f.focus], cmd = f.groups[f.focus].Update(msg)
	case f.focus == n:
		f.evaluate, cmd = f.evaluate.Update(msg)
	default:
		f.reset, cmd = f.reset.Update(msg)
	}
	return cmd
}

func (f *FormScreen) record(id assessment.QuestionID, value string) {
	if err := f.engine.Record(id, value); err != nil {
		f.log.Warn("record rejected", "session_id", f.session, "question", string(id), "error", err)
		return
	}
	f.log.Debug("answer recorded",
		"session_id", f.session,
		"event", "record",
		"question", string(id),
		"value", value,
		"answered", f.engine.Answered(),
	)
}

func (f *FormScreen) runEvaluate() {
	score, ok := f.engine.Evaluate()
	if !ok {
		f.missing = report.BuildIncomplete(f.engine, f.q)
		for _, id := range f.missing.Missing {
			f.groups[groupIndex(id)].Marked = true
		}
		f.dialog = dialogIncomplete
		f.log.Info("evaluation incomplete",
			"session_id", f.session,
			"event", "evaluate",
			"answered", f.engine.Answered(),
			"missing", len(f.missing.Missing),
		)
		return
	}

	f.result, _ = report.Build(f.engine, f.q)
	f.dialog = dialogResult
	f.log.Info("evaluated",
		"session_id", f.session,
		"event", "evaluate",
		"answered", f.engine.Answered(),
		"score", score,
		"category", string(f.result.Severity),
	)
}

func (f *FormScreen) runReset() {
	f.engine.Reset()
	for i := range f.groups {
		f.groups[i].Clear()
	}
	f.closeDialog()
	f.focus = 0
	f.applyFocus()

	prev := f.session
	f.session = uuid.NewString()
	f.log.Info("reset", "session_id", f.session, "event", "reset", "previous_session_id", prev)
}

func (f *FormScreen) closeDialog() {
	f.dialog = dialogNone
	f.result = nil
	f.missing = nil
}

func (f *FormScreen) moveFocus(delta int) {
	n := len(f.groups) + 2
	f.focus = (f.focus + delta + n) % n
	f.applyFocus()
}

func (f *FormScreen) applyFocus() {
	for i := range f.groups {
		f.groups[i].Focused = i == f.focus
	}
	f.evaluate.Focused = f.focus == len(f.groups)
	f.reset.Focused = f.focus == len(f.groups)+1
}

func groupIndex(id assessment.QuestionID) int {
	for i, q := range assessment.QuestionIDs() {
		if q == id {
			return i
		}
	}
	return 0
}
