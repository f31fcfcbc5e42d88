package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionIDValid(t *testing.T) {
	for _, q := range QuestionIDs() {
		assert.True(t, q.Valid(), q)
	}
	for _, q := range []QuestionID{"", "q0", "q10", "Q1", "v1"} {
		assert.False(t, q.Valid(), q)
	}
}

func TestQuestionIDsIsACopy(t *testing.T) {
	ids := QuestionIDs()
	ids[0] = "changed"
	assert.Equal(t, Q1, QuestionIDs()[0])
}

func TestAnswerSetWithLeavesOriginal(t *testing.T) {
	var a AnswerSet
	b := a.With(Q7, "3")

	assert.Equal(t, "", a.Q7)
	assert.Equal(t, "3", b.Q7)
	assert.Equal(t, b, b.With("nope", "1"))
}

func TestAnswerSetIncompleteOrder(t *testing.T) {
	a := AnswerSet{Q1: "1", Q3: "2", Q9: "0"}
	assert.Equal(t, []QuestionID{Q2, Q4, Q5, Q6, Q7, Q8}, a.Incomplete())
	assert.False(t, a.Complete())
}

func TestAnswerSetRejectsOutOfDomainValues(t *testing.T) {
	a := AnswerSet{Q1: "1", Q2: "1", Q3: "1", Q4: "1", Q5: "1", Q6: "1", Q7: "1", Q8: "1", Q9: "7"}
	assert.Equal(t, []QuestionID{Q9}, a.Incomplete())

	_, ok := a.Sum()
	assert.False(t, ok)
}

func TestAnswerSetMap(t *testing.T) {
	a := AnswerSet{Q2: "3"}
	m := a.Map()
	assert.Len(t, m, QuestionCount)
	assert.Equal(t, "3", m[Q2])
	assert.Equal(t, "", m[Q1])
}

func TestValidChoice(t *testing.T) {
	for _, c := range Choices() {
		assert.True(t, ValidChoice(c))
	}
	assert.False(t, ValidChoice("4"))
	assert.False(t, ValidChoice(""))
}
