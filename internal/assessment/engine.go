package assessment

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownQuestion = errors.New("unknown question")
	ErrInvalidChoice   = errors.New("invalid choice")
)

// State is the position of an engine in its lifecycle.
type State int

const (
	// StateIncomplete means at least one slot is empty.
	StateIncomplete State = iota
	// StateComplete means all nine slots are filled but no result is set.
	StateComplete
	// StateEvaluated means a result has been computed.
	StateEvaluated
)

func (s State) String() string {
	switch s {
	case StateIncomplete:
		return "incomplete"
	case StateComplete:
		return "complete"
	case StateEvaluated:
		return "evaluated"
	default:
		return "unknown"
	}
}

// Engine holds one in-progress assessment. It is not safe for concurrent
// use; a single form session drives it.
type Engine struct {
	answers   AnswerSet
	score     int
	evaluated bool
}

// New returns an engine with every slot empty and no result.
func New() *Engine {
	return &Engine{}
}

// Record stores value for question q, replacing any previous value. Any
// existing result is cleared. Unknown questions and values outside "0".."3"
// are rejected and leave the engine unchanged.
func (e *Engine) Record(q QuestionID, value string) error {
	if !q.Valid() {
		return fmt.Errorf("record %q: %w", q, ErrUnknownQuestion)
	}
	if !ValidChoice(value) {
		return fmt.Errorf("record %s=%q: %w", q, value, ErrInvalidChoice)
	}
	e.answers = e.answers.With(q, value)
	e.score = 0
	e.evaluated = false
	return nil
}

// Evaluate scores the answer set. When any slot is empty it does nothing
// and returns false; the caller decides how to prompt for the rest.
func (e *Engine) Evaluate() (int, bool) {
	sum, ok := e.answers.Sum()
	if !ok {
		return 0, false
	}
	e.score = sum
	e.evaluated = true
	return sum, true
}

// Result returns the last evaluated score, if any.
func (e *Engine) Result() (int, bool) {
	return e.score, e.evaluated
}

// Severity returns the category of the evaluated score, if any.
func (e *Engine) Severity() (Severity, bool) {
	if !e.evaluated {
		return "", false
	}
	return Classify(e.score), true
}

// Reset empties every slot and clears the result. Calling it repeatedly
// has the same effect as calling it once.
func (e *Engine) Reset() {
	*e = Engine{}
}

// State reports where the engine is in its lifecycle.
func (e *Engine) State() State {
	switch {
	case e.evaluated:
		return StateEvaluated
	case e.answers.Complete():
		return StateComplete
	default:
		return StateIncomplete
	}
}

// Answer returns the stored value for q ("" if unanswered or unknown).
func (e *Engine) Answer(q QuestionID) string {
	return e.answers.Get(q)
}

// Answers returns a copy of the answer set.
func (e *Engine) Answers() AnswerSet {
	return e.answers
}

// Answered returns how many slots hold a value.
func (e *Engine) Answered() int {
	return e.answers.Filled()
}

// Missing returns the unanswered question ids in order.
func (e *Engine) Missing() []QuestionID {
	return e.answers.Incomplete()
}
