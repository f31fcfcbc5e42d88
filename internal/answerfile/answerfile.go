// Package answerfile reads answers for non-interactive scoring from JSON or
// YAML documents and from "q3=2" style pairs.
package answerfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/moodcheck/internal/assessment"
)

// Format selects the document decoder.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks a format from a file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Answers maps question ids to choice values. Absent and "" entries are
// both unanswered.
type Answers map[assessment.QuestionID]string

// Decode reads one document from r and validates it against the answers
// schema.
func Decode(r io.Reader, format Format) (Answers, error) {
	var doc any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode answers: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return Answers{}, nil
			}
			return nil, fmt.Errorf("decode answers: %w", err)
		}
	default:
		return nil, fmt.Errorf("decode answers: unknown format %q", format)
	}

	if doc == nil {
		return Answers{}, nil
	}
	doc = normalize(doc)

	if err := validate(doc); err != nil {
		return nil, err
	}

	obj := doc.(map[string]any)
	out := make(Answers, len(obj))
	for k, v := range obj {
		out[assessment.QuestionID(k)] = v.(string)
	}
	return out, nil
}

// ReadFile decodes the file at path. "-" reads JSON from stdin.
func ReadFile(path string) (Answers, error) {
	if path == "-" {
		return Decode(os.Stdin, FormatJSON)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open answers: %w", err)
	}
	defer f.Close()

	a, err := Decode(f, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// ParsePairs parses "q1=2" entries. Later entries for the same question win.
func ParsePairs(pairs []string) (Answers, error) {
	doc := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("answer %q: want question=value", p)
		}
		doc[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	out := make(Answers, len(doc))
	for k, v := range doc {
		out[assessment.QuestionID(k)] = v.(string)
	}
	return out, nil
}

// Merge returns a copy of a overlaid with non-empty entries from b.
func (a Answers) Merge(b Answers) Answers {
	out := make(Answers, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Apply records every non-empty answer on e in question order.
func (a Answers) Apply(e *assessment.Engine) error {
	for _, q := range assessment.QuestionIDs() {
		v := a[q]
		if v == "" {
			continue
		}
		if err := e.Record(q, v); err != nil {
			return err
		}
	}
	return nil
}

// normalize turns whole-number answers (q1: 2) into their string form so
// YAML and JSON authors don't need to quote values.
func normalize(doc any) any {
	obj, ok := doc.(map[string]any)
	if !ok {
		return doc
	}
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return strconv.FormatInt(int64(n), 10)
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
	}
	return v
}
