// Package assessment implements the PHQ-9 self-assessment engine: nine
// answer slots, completeness validation, scoring and severity bands.
package assessment

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// QuestionID identifies one of the nine questions.
type QuestionID string

const (
	Q1 QuestionID = "q1"
	Q2 QuestionID = "q2"
	Q3 QuestionID = "q3"
	Q4 QuestionID = "q4"
	Q5 QuestionID = "q5"
	Q6 QuestionID = "q6"
	Q7 QuestionID = "q7"
	Q8 QuestionID = "q8"
	Q9 QuestionID = "q9"
)

// QuestionCount is the number of slots in an answer set.
const QuestionCount = 9

var questionIDs = [QuestionCount]QuestionID{Q1, Q2, Q3, Q4, Q5, Q6, Q7, Q8, Q9}

// QuestionIDs returns the nine question ids in display order.
func QuestionIDs() []QuestionID {
	ids := make([]QuestionID, QuestionCount)
	copy(ids, questionIDs[:])
	return ids
}

// Valid reports whether q is one of q1..q9.
func (q QuestionID) Valid() bool {
	return q.index() >= 0
}

func (q QuestionID) index() int {
	for i, id := range questionIDs {
		if id == q {
			return i
		}
	}
	return -1
}

// Choice values, ordered by frequency over the last two weeks.
const (
	ChoiceNotAtAll       = "0"
	ChoiceSeveralDays    = "1"
	ChoiceMoreThanHalf   = "2"
	ChoiceNearlyEveryDay = "3"
)

// Choices returns the four choice values in ascending order.
func Choices() []string {
	return []string{ChoiceNotAtAll, ChoiceSeveralDays, ChoiceMoreThanHalf, ChoiceNearlyEveryDay}
}

// ValidChoice reports whether v is one of "0".."3".
func ValidChoice(v string) bool {
	switch v {
	case ChoiceNotAtAll, ChoiceSeveralDays, ChoiceMoreThanHalf, ChoiceNearlyEveryDay:
		return true
	}
	return false
}

// AnswerSet holds one selected choice per question. An empty string marks
// an unanswered slot.
type AnswerSet struct {
	Q1 string `json:"q1" yaml:"q1" validate:"required,oneof=0 1 2 3"`
	Q2 string `json:"q2" yaml:"q2" validate:"required,oneof=0 1 2 3"`
	Q3 string `json:"q3" yaml:"q3" validate:"required,oneof=0 1 2 3"`
	Q4 string `json:"q4" yaml:"q4" validate:"required,oneof=0 1 2 3"`
	Q5 string `json:"q5" yaml:"q5" validate:"required,oneof=0 1 2 3"`
	Q6 string `json:"q6" yaml:"q6" validate:"required,oneof=0 1 2 3"`
	Q7 string `json:"q7" yaml:"q7" validate:"required,oneof=0 1 2 3"`
	Q8 string `json:"q8" yaml:"q8" validate:"required,oneof=0 1 2 3"`
	Q9 string `json:"q9" yaml:"q9" validate:"required,oneof=0 1 2 3"`
}

var answerValidate *validator.Validate

func init() {
	answerValidate = validator.New(validator.WithRequiredStructEnabled())

	// Report question ids rather than Go field names.
	answerValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// Get returns the value stored for q, or "" for an unknown id.
func (a AnswerSet) Get(q QuestionID) string {
	if p := a.slot(q); p != nil {
		return *p
	}
	return ""
}

// With returns a copy of a with exactly one slot replaced. Unknown ids
// return a unchanged.
func (a AnswerSet) With(q QuestionID, value string) AnswerSet {
	if p := a.slot(q); p != nil {
		*p = value
	}
	return a
}

// Values returns the nine slot values in question order.
func (a AnswerSet) Values() []string {
	return []string{a.Q1, a.Q2, a.Q3, a.Q4, a.Q5, a.Q6, a.Q7, a.Q8, a.Q9}
}

// Map returns the answer set keyed by question id.
func (a AnswerSet) Map() map[QuestionID]string {
	m := make(map[QuestionID]string, QuestionCount)
	for i, v := range a.Values() {
		m[questionIDs[i]] = v
	}
	return m
}

// Filled returns the number of non-empty slots.
func (a AnswerSet) Filled() int {
	n := 0
	for _, v := range a.Values() {
		if v != "" {
			n++
		}
	}
	return n
}

// Incomplete returns the ids of slots that fail validation, in question
// order. An empty result means the set can be scored.
func (a AnswerSet) Incomplete() []QuestionID {
	err := answerValidate.Struct(a)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Only reachable if the struct tags themselves are broken.
		return QuestionIDs()
	}
	ids := make([]QuestionID, 0, len(verrs))
	for _, fe := range verrs {
		ids = append(ids, QuestionID(fe.Field()))
	}
	return ids
}

// Complete reports whether every slot holds a valid choice.
func (a AnswerSet) Complete() bool {
	return answerValidate.Struct(a) == nil
}

// Sum adds the nine slot values. The second return is false if any slot
// is empty or not a valid choice.
func (a AnswerSet) Sum() (int, bool) {
	if !a.Complete() {
		return 0, false
	}
	total := 0
	for _, v := range a.Values() {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		total += n
	}
	return total, true
}

func (a *AnswerSet) slot(q QuestionID) *string {
	switch q {
	case Q1:
		return &a.Q1
	case Q2:
		return &a.Q2
	case Q3:
		return &a.Q3
	case Q4:
		return &a.Q4
	case Q5:
		return &a.Q5
	case Q6:
		return &a.Q6
	case Q7:
		return &a.Q7
	case Q8:
		return &a.Q8
	case Q9:
		return &a.Q9
	}
	return nil
}
