package form

import (
	"bytes"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/moodcheck/internal/assessment"
	"github.com/abhisek/moodcheck/internal/logging"
	"github.com/abhisek/moodcheck/internal/questionnaire"
)

func newTestForm(t *testing.T) (*FormScreen, *bytes.Buffer) {
	t.Helper()
	q, err := questionnaire.Load("en")
	require.NoError(t, err)

	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: logging.LevelDebug, Writer: &buf})
	require.NoError(t, err)

	return New(q, log), &buf
}

// send delivers msg and feeds any resulting message back once, the way the
// Bubble Tea runtime would.
func send(f *FormScreen, msg tea.Msg) {
	_, cmd := f.Update(msg)
	if cmd == nil {
		return
	}
	if next := cmd(); next != nil {
		f.Update(next)
	}
}

func digit(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// answer fills the first n questions with value, moving down after each.
func answer(f *FormScreen, n int, value rune) {
	for range n {
		send(f, digit(value))
		send(f, tea.KeyPressMsg{Code: tea.KeyDown})
	}
}

func TestNewFormIsEmpty(t *testing.T) {
	f, _ := newTestForm(t)
	assert.Equal(t, "0/9", f.Status())
	assert.Equal(t, assessment.StateIncomplete, f.Engine().State())
	assert.True(t, f.groups[0].Focused)
	assert.False(t, f.CapturesEsc())
	assert.Equal(t, "PHQ-9 mental health self-check", f.Title())
}

func TestDigitKeysRecordAnswers(t *testing.T) {
	f, _ := newTestForm(t)
	answer(f, 3, '2')

	assert.Equal(t, "3/9", f.Status())
	assert.Equal(t, "2", f.Engine().Answer(assessment.Q1))
	assert.Equal(t, "2", f.Engine().Answer(assessment.Q3))
	assert.Equal(t, "", f.Engine().Answer(assessment.Q4))
	assert.True(t, f.groups[3].Focused)
}

func TestChangingAnswerKeepsCount(t *testing.T) {
	f, _ := newTestForm(t)
	send(f, digit('1'))
	send(f, digit('3'))

	assert.Equal(t, "1/9", f.Status())
	assert.Equal(t, "3", f.Engine().Answer(assessment.Q1))
}

func TestEvaluateIncompleteShowsPrompt(t *testing.T) {
	f, logs := newTestForm(t)
	answer(f, 1, '1')

	send(f, digit('e'))

	require.True(t, f.CapturesEsc())
	_, ok := f.Engine().Result()
	assert.False(t, ok)
	assert.False(t, f.groups[0].Marked)
	assert.True(t, f.groups[1].Marked)
	assert.True(t, f.groups[8].Marked)

	view := f.View(80, 24)
	assert.Contains(t, view, "Please answer all questions")
	assert.Contains(t, view, "q2, q3")
	assert.Contains(t, logs.String(), "evaluation incomplete")
}

func TestEscClosesDialog(t *testing.T) {
	f, _ := newTestForm(t)
	send(f, digit('e'))
	require.True(t, f.CapturesEsc())

	send(f, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, f.CapturesEsc())
	assert.NotContains(t, f.View(80, 24), "Please answer all questions")
}

func TestDialogSwallowsAnswerKeys(t *testing.T) {
	f, _ := newTestForm(t)
	send(f, digit('e'))
	send(f, digit('2'))

	assert.Equal(t, "0/9", f.Status())
}

func TestEvaluateCompleteShowsResult(t *testing.T) {
	f, logs := newTestForm(t)
	answer(f, 9, '2')
	require.Equal(t, "9/9", f.Status())

	send(f, digit('e'))

	score, ok := f.Engine().Result()
	require.True(t, ok)
	assert.Equal(t, 18, score)
	assert.Equal(t, assessment.StateEvaluated, f.Engine().State())

	view := f.View(80, 30)
	assert.Contains(t, view, "Your score is 18: moderately severe depression")
	assert.Contains(t, view, "Reference scale:")
	assert.Contains(t, view, "Don't worry.")

	out := logs.String()
	assert.Contains(t, out, "event=evaluate")
	assert.Contains(t, out, "score=18")
	assert.Contains(t, out, "category=moderately_severe")
}

func TestHealthyResultHasNoAdvice(t *testing.T) {
	f, _ := newTestForm(t)
	answer(f, 9, '0')
	send(f, digit('e'))

	view := f.View(80, 30)
	assert.Contains(t, view, "Your score is 0: mentally healthy")
	assert.NotContains(t, view, "Don't worry.")
}

func TestEvaluateButton(t *testing.T) {
	f, _ := newTestForm(t)
	answer(f, 9, '1')
	// Focus is now on the evaluate button.
	require.True(t, f.evaluate.Focused)

	send(f, tea.KeyPressMsg{Code: tea.KeyEnter})
	score, ok := f.Engine().Result()
	require.True(t, ok)
	assert.Equal(t, 9, score)
}

func TestResetClearsEverything(t *testing.T) {
	f, logs := newTestForm(t)
	answer(f, 9, '3')
	send(f, digit('e'))
	send(f, tea.KeyPressMsg{Code: tea.KeyEscape})
	before := f.Session()

	send(f, digit('r'))

	assert.Equal(t, "0/9", f.Status())
	assert.Equal(t, assessment.StateIncomplete, f.Engine().State())
	assert.NotEqual(t, before, f.Session())
	assert.True(t, f.groups[0].Focused)
	for _, g := range f.groups {
		assert.Equal(t, "", g.Value())
	}
	assert.Contains(t, logs.String(), "event=reset")
}

func TestResetButtonViaWrappedFocus(t *testing.T) {
	f, _ := newTestForm(t)
	send(f, digit('2'))

	send(f, tea.KeyPressMsg{Code: tea.KeyUp})
	require.True(t, f.reset.Focused)

	send(f, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "0/9", f.Status())
}

func TestAnswerAfterEvaluateClearsResult(t *testing.T) {
	f, _ := newTestForm(t)
	answer(f, 9, '1')
	send(f, digit('e'))
	send(f, tea.KeyPressMsg{Code: tea.KeyEscape})

	send(f, tea.KeyPressMsg{Code: tea.KeyUp})
	require.True(t, f.groups[8].Focused)
	send(f, digit('3'))

	assert.Equal(t, assessment.StateComplete, f.Engine().State())
}

func TestViewKeepsFocusedQuestionVisible(t *testing.T) {
	f, _ := newTestForm(t)
	for range 8 {
		send(f, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	view := f.View(80, 18)
	assert.Contains(t, view, "9. Thoughts")
	assert.NotContains(t, view, "1. Little interest")
}

func TestVisibleBlocks(t *testing.T) {
	blocks := []string{"a\na", "b\nb", "c\nc", "d\nd"}

	assert.Equal(t, blocks, visibleBlocks(blocks, 0, 100))
	assert.Equal(t, []string{"c\nc"}, visibleBlocks(blocks, 2, 2))
	assert.Equal(t, []string{"c\nc", "d\nd"}, visibleBlocks(blocks, 2, 5))
	assert.Equal(t, []string{"c\nc", "d\nd"}, visibleBlocks(blocks, 9, 5))
}

func TestKeyHintsFollowDialog(t *testing.T) {
	f, _ := newTestForm(t)
	hints := f.KeyHints()
	var keys []string
	for _, h := range hints {
		keys = append(keys, h.Key)
	}
	assert.Contains(t, strings.Join(keys, " "), "0-3")

	send(f, digit('e'))
	assert.Len(t, f.KeyHints(), 2)
}
