// Package questionnaire loads the localized PHQ-9 question bank: question
// texts, choice labels, severity labels and interface strings.
package questionnaire

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/moodcheck/internal/assessment"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// supportedMajor is the questionnaire file format this build understands.
const supportedMajor = "v1"

// Questionnaire is one localized rendition of the nine questions.
type Questionnaire struct {
	Version       string            `yaml:"version"`
	Locale        string            `yaml:"locale"`
	Title         string            `yaml:"title"`
	Instructions  string            `yaml:"instructions"`
	Questions     []Question        `yaml:"questions"`
	Choices       []Choice          `yaml:"choices"`
	Severities    map[string]string `yaml:"severities"`
	Encouragement string            `yaml:"encouragement"`
	Scale         Scale             `yaml:"scale"`
	UI            UI                `yaml:"ui"`
}

// Question is a single prompt.
type Question struct {
	ID   assessment.QuestionID `yaml:"id"`
	Text string                `yaml:"text"`
}

// Choice pairs an answer value with its label.
type Choice struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Scale is the reference table shown alongside a result.
type Scale struct {
	Heading string   `yaml:"heading"`
	Lines   []string `yaml:"lines"`
}

// UI holds interface strings. ResultLine is a format string taking the
// score (%d) and the severity label (%s).
type UI struct {
	Start      string `yaml:"start"`
	ScaleMenu  string `yaml:"scale_menu"`
	Quit       string `yaml:"quit"`
	Evaluate   string `yaml:"evaluate"`
	Reset      string `yaml:"reset"`
	Incomplete string `yaml:"incomplete"`
	Missing    string `yaml:"missing"`
	ResultLine string `yaml:"result_line"`
	Close      string `yaml:"close"`
}

// Load reads and validates the built-in questionnaire for locale.
func Load(locale string) (*Questionnaire, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	data, err := localeFS.ReadFile("locales/" + locale + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("questionnaire: unknown locale %q: %w", locale, err)
	}
	q, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("questionnaire: load %q: %w", locale, err)
	}
	if q.Locale != locale {
		return nil, fmt.Errorf("questionnaire: load %q: file declares locale %q", locale, q.Locale)
	}
	return q, nil
}

// Parse decodes and validates a questionnaire document.
func Parse(data []byte) (*Questionnaire, error) {
	var q Questionnaire
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return &q, nil
}

// Locales returns the names of all built-in locales, sorted.
func Locales() ([]string, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if n, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Validate checks the document has nine questions q1..q9 in order, the four
// choices "0".."3" in order, a label for every severity and usable UI strings.
func (q *Questionnaire) Validate() error {
	var errs []error

	if !semver.IsValid(q.Version) {
		errs = append(errs, fmt.Errorf("version %q is not a semantic version", q.Version))
	} else if semver.Major(q.Version) != supportedMajor {
		errs = append(errs, fmt.Errorf("version %s is not supported (want %s.x)", q.Version, supportedMajor))
	}
	if q.Locale == "" {
		errs = append(errs, errors.New("locale is empty"))
	}
	if strings.TrimSpace(q.Title) == "" {
		errs = append(errs, errors.New("title is empty"))
	}

	ids := assessment.QuestionIDs()
	if len(q.Questions) != len(ids) {
		errs = append(errs, fmt.Errorf("want %d questions, got %d", len(ids), len(q.Questions)))
	} else {
		for i, qq := range q.Questions {
			if qq.ID != ids[i] {
				errs = append(errs, fmt.Errorf("question %d has id %q, want %q", i+1, qq.ID, ids[i]))
			}
			if strings.TrimSpace(qq.Text) == "" {
				errs = append(errs, fmt.Errorf("question %s has no text", qq.ID))
			}
		}
	}

	values := assessment.Choices()
	if len(q.Choices) != len(values) {
		errs = append(errs, fmt.Errorf("want %d choices, got %d", len(values), len(q.Choices)))
	} else {
		for i, c := range q.Choices {
			if c.Value != values[i] {
				errs = append(errs, fmt.Errorf("choice %d has value %q, want %q", i+1, c.Value, values[i]))
			}
			if c.Label == "" {
				errs = append(errs, fmt.Errorf("choice %q has no label", c.Value))
			}
		}
	}

	for _, b := range assessment.Bands() {
		if q.Severities[string(b.Severity)] == "" {
			errs = append(errs, fmt.Errorf("missing label for severity %q", b.Severity))
		}
	}
	for k := range q.Severities {
		if !assessment.Severity(k).Valid() {
			errs = append(errs, fmt.Errorf("unknown severity %q", k))
		}
	}

	if strings.Count(q.UI.ResultLine, "%d") != 1 || strings.Count(q.UI.ResultLine, "%s") != 1 {
		errs = append(errs, fmt.Errorf("ui.result_line %q needs one %%d and one %%s", q.UI.ResultLine))
	}
	if q.UI.Evaluate == "" || q.UI.Reset == "" || q.UI.Incomplete == "" {
		errs = append(errs, errors.New("ui.evaluate, ui.reset and ui.incomplete are required"))
	}

	return errors.Join(errs...)
}

// Question returns the question with the given id.
func (q *Questionnaire) Question(id assessment.QuestionID) (Question, bool) {
	for _, qq := range q.Questions {
		if qq.ID == id {
			return qq, true
		}
	}
	return Question{}, false
}

// ChoiceLabel returns the label for a choice value, or the value itself.
func (q *Questionnaire) ChoiceLabel(value string) string {
	for _, c := range q.Choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}

// SeverityLabel returns the localized label for s.
func (q *Questionnaire) SeverityLabel(s assessment.Severity) string {
	if l, ok := q.Severities[string(s)]; ok {
		return l
	}
	return s.Label()
}

// ResultLine formats the headline for an evaluated score.
func (q *Questionnaire) ResultLine(score int) string {
	return fmt.Sprintf(q.UI.ResultLine, score, q.SeverityLabel(assessment.Classify(score)))
}
