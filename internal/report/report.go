// Package report renders assessment results for the non-interactive
// commands as plain text, Markdown or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/moodcheck/internal/assessment"
	"github.com/abhisek/moodcheck/internal/questionnaire"
)

// Format is an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
)

func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatMarkdown, FormatJSON:
		return true
	}
	return false
}

// Result is an evaluated assessment ready for display.
type Result struct {
	Locale       string               `json:"locale"`
	Score        int                  `json:"score"`
	MaxScore     int                  `json:"max_score"`
	Severity     assessment.Severity  `json:"severity"`
	Label        string               `json:"label"`
	NeedsSupport bool                 `json:"needs_support"`
	Advice       string               `json:"advice,omitempty"`
	Answers      assessment.AnswerSet `json:"answers"`
}

// Incomplete describes an evaluation attempt that produced no result.
type Incomplete struct {
	Locale  string                  `json:"locale"`
	Message string                  `json:"message"`
	Missing []assessment.QuestionID `json:"missing"`
}

// Build turns an evaluated engine into a Result. It returns false when the
// engine holds no result.
func Build(e *assessment.Engine, q *questionnaire.Questionnaire) (*Result, bool) {
	score, ok := e.Result()
	if !ok {
		return nil, false
	}
	sev := assessment.Classify(score)
	r := &Result{
		Locale:       q.Locale,
		Score:        score,
		MaxScore:     assessment.MaxScore,
		Severity:     sev,
		Label:        q.SeverityLabel(sev),
		NeedsSupport: assessment.NeedsSupport(score),
		Answers:      e.Answers(),
	}
	if r.NeedsSupport {
		r.Advice = strings.TrimSpace(q.Encouragement)
	}
	return r, true
}

// BuildIncomplete describes the unanswered questions of e.
func BuildIncomplete(e *assessment.Engine, q *questionnaire.Questionnaire) *Incomplete {
	return &Incomplete{
		Locale:  q.Locale,
		Message: q.UI.Incomplete,
		Missing: e.Missing(),
	}
}

// Render writes r to w in the given format.
func Render(w io.Writer, f Format, r *Result, q *questionnaire.Questionnaire) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, Text(r, q))
		return err
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r, q))
		return err
	case FormatJSON:
		return writeJSON(w, r)
	default:
		return fmt.Errorf("render: unknown format %q", f)
	}
}

// RenderIncomplete writes the "answer everything first" prompt.
func RenderIncomplete(w io.Writer, f Format, inc *Incomplete, q *questionnaire.Questionnaire) error {
	switch f {
	case FormatText, FormatMarkdown:
		var b strings.Builder
		if f == FormatMarkdown {
			b.WriteString("**")
			b.WriteString(inc.Message)
			b.WriteString("**\n\n")
		} else {
			b.WriteString(inc.Message)
			b.WriteString("\n")
		}
		if len(inc.Missing) > 0 {
			fmt.Fprintf(&b, "%s %s\n", q.UI.Missing, joinIDs(inc.Missing))
		}
		_, err := io.WriteString(w, b.String())
		return err
	case FormatJSON:
		return writeJSON(w, inc)
	default:
		return fmt.Errorf("render: unknown format %q", f)
	}
}

// Text renders r as plain terminal text.
func Text(r *Result, q *questionnaire.Questionnaire) string {
	var b strings.Builder

	b.WriteString(q.Title)
	b.WriteString("\n\n")
	b.WriteString(q.ResultLine(r.Score))
	b.WriteString("\n")

	if r.Advice != "" {
		b.WriteString("\n")
		b.WriteString(r.Advice)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(q.Scale.Heading)
	b.WriteString("\n")
	for _, line := range q.Scale.Lines {
		fmt.Fprintf(&b, "  - %s\n", line)
	}

	return b.String()
}

// Markdown renders r as a Markdown report including the answer table.
func Markdown(r *Result, q *questionnaire.Questionnaire) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", q.Title)
	fmt.Fprintf(&b, "**%s**\n\n", q.ResultLine(r.Score))

	if r.Advice != "" {
		fmt.Fprintf(&b, "> %s\n\n", r.Advice)
	}

	b.WriteString("| # | Question | Answer |\n")
	b.WriteString("|---|---|---|\n")
	for i, qq := range q.Questions {
		v := r.Answers.Get(qq.ID)
		fmt.Fprintf(&b, "| %d | %s | %s (%s) |\n", i+1, escapeCell(qq.Text), escapeCell(q.ChoiceLabel(v)), v)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", strings.TrimRight(q.Scale.Heading, ":："))
	for _, line := range q.Scale.Lines {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	return b.String()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	return nil
}

func joinIDs(ids []assessment.QuestionID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
