package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/moodcheck/internal/assessment"
	"github.com/abhisek/moodcheck/internal/questionnaire"
)

func loadEN(t *testing.T) *questionnaire.Questionnaire {
	t.Helper()
	q, err := questionnaire.Load("en")
	require.NoError(t, err)
	return q
}

func evaluated(t *testing.T, value string) *assessment.Engine {
	t.Helper()
	e := assessment.New()
	for _, id := range assessment.QuestionIDs() {
		require.NoError(t, e.Record(id, value))
	}
	_, ok := e.Evaluate()
	require.True(t, ok)
	return e
}

func TestBuild(t *testing.T) {
	q := loadEN(t)

	r, ok := Build(evaluated(t, "2"), q)
	require.True(t, ok)
	assert.Equal(t, 18, r.Score)
	assert.Equal(t, assessment.SeverityModeratelySevere, r.Severity)
	assert.Equal(t, "moderately severe depression", r.Label)
	assert.True(t, r.NeedsSupport)
	assert.NotEmpty(t, r.Advice)
}

func TestBuildHealthyHasNoAdvice(t *testing.T) {
	r, ok := Build(evaluated(t, "0"), loadEN(t))
	require.True(t, ok)
	assert.False(t, r.NeedsSupport)
	assert.Empty(t, r.Advice)
}

func TestBuildWithoutResult(t *testing.T) {
	_, ok := Build(assessment.New(), loadEN(t))
	assert.False(t, ok)
}

func TestText(t *testing.T) {
	q := loadEN(t)
	r, _ := Build(evaluated(t, "1"), q)

	out := Text(r, q)
	assert.Contains(t, out, "Your score is 9: mild depression")
	assert.Contains(t, out, "Reference scale:")
	assert.Contains(t, out, "20 and above severe depression")
	assert.Contains(t, out, "not your fault")
}

func TestMarkdownListsAnswers(t *testing.T) {
	q := loadEN(t)
	r, _ := Build(evaluated(t, "3"), q)

	out := Markdown(r, q)
	assert.True(t, strings.HasPrefix(out, "# PHQ-9"))
	assert.Contains(t, out, "**Your score is 27: severe depression**")
	assert.Equal(t, assessment.QuestionCount, strings.Count(out, "Nearly every day (3)"))
	assert.Contains(t, out, "## Reference scale\n")
}

func TestRenderJSON(t *testing.T) {
	q := loadEN(t)
	r, _ := Build(evaluated(t, "2"), q)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, r, q))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.EqualValues(t, 18, got["score"])
	assert.Equal(t, "moderately_severe", got["severity"])
	answers := got["answers"].(map[string]any)
	assert.Equal(t, "2", answers["q9"])
}

func TestRenderUnknownFormat(t *testing.T) {
	q := loadEN(t)
	r, _ := Build(evaluated(t, "2"), q)
	err := Render(&bytes.Buffer{}, Format("html"), r, q)
	require.Error(t, err)
}

func TestRenderIncomplete(t *testing.T) {
	q := loadEN(t)
	e := assessment.New()
	require.NoError(t, e.Record(assessment.Q1, "1"))
	inc := BuildIncomplete(e, q)

	var buf bytes.Buffer
	require.NoError(t, RenderIncomplete(&buf, FormatText, inc, q))
	assert.Equal(t, "Please answer all questions\nUnanswered: q2, q3, q4, q5, q6, q7, q8, q9\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderIncomplete(&buf, FormatJSON, inc, q))
	var got Incomplete
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got.Missing, 8)
}

func TestFormatValid(t *testing.T) {
	assert.True(t, FormatText.Valid())
	assert.True(t, FormatMarkdown.Valid())
	assert.True(t, FormatJSON.Valid())
	assert.False(t, Format("xml").Valid())
}
