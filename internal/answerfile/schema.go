package answerfile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://moodcheck/answers.json"

// schemaJSON describes a partial or complete answer set.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "patternProperties": {
    "^q[1-9]$": {"type": "string", "enum": ["", "0", "1", "2", "3"]}
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// ValidationError reports an answers document that does not match the schema.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid answers: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func answersSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(schemaJSON), &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validate checks a decoded document (maps, slices, strings, numbers)
// against the answers schema.
func validate(doc any) error {
	s, err := answersSchema()
	if err != nil {
		return fmt.Errorf("compile answers schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
