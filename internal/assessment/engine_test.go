package assessment

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordAll(t *testing.T, e *Engine, value string) {
	t.Helper()
	for _, q := range QuestionIDs() {
		require.NoError(t, e.Record(q, value))
	}
}

func TestNewEngineIsIncomplete(t *testing.T) {
	e := New()

	assert.Equal(t, StateIncomplete, e.State())
	assert.Equal(t, 0, e.Answered())
	assert.Len(t, e.Missing(), QuestionCount)

	_, ok := e.Result()
	assert.False(t, ok)
}

func TestRecordReplacesSingleSlot(t *testing.T) {
	e := New()
	require.NoError(t, e.Record(Q3, "2"))
	require.NoError(t, e.Record(Q5, "1"))

	before := e.Answers()
	require.NoError(t, e.Record(Q3, "0"))
	after := e.Answers()

	assert.Equal(t, "0", after.Q3)
	assert.Equal(t, before.With(Q3, "0"), after)
	assert.Equal(t, "1", e.Answer(Q5))
	assert.Equal(t, 2, e.Answered())
}

func TestRecordRejectsUnknownQuestion(t *testing.T) {
	e := New()
	err := e.Record("q10", "1")
	require.ErrorIs(t, err, ErrUnknownQuestion)
	assert.Equal(t, AnswerSet{}, e.Answers())
}

func TestRecordRejectsInvalidChoice(t *testing.T) {
	tests := []string{"", "4", "-1", "01", "a", " 1"}
	for _, v := range tests {
		t.Run(strconv.Quote(v), func(t *testing.T) {
			e := New()
			require.NoError(t, e.Record(Q1, "2"))
			err := e.Record(Q1, v)
			require.ErrorIs(t, err, ErrInvalidChoice)
			assert.Equal(t, "2", e.Answer(Q1))
		})
	}
}

func TestRecordIsIdempotent(t *testing.T) {
	once := New()
	require.NoError(t, once.Record(Q4, "3"))

	twice := New()
	require.NoError(t, twice.Record(Q4, "3"))
	require.NoError(t, twice.Record(Q4, "3"))

	assert.Equal(t, once.Answers(), twice.Answers())
	assert.Equal(t, once.State(), twice.State())
}

func TestEvaluateSumsAllSlots(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		e := New()
		want := 0
		for _, q := range QuestionIDs() {
			n := rng.Intn(4)
			want += n
			require.NoError(t, e.Record(q, strconv.Itoa(n)))
		}

		score, ok := e.Evaluate()
		require.True(t, ok)
		assert.Equal(t, want, score)
		assert.GreaterOrEqual(t, score, MinScore)
		assert.LessOrEqual(t, score, MaxScore)
	}
}

func TestEvaluateIncompleteIsNoop(t *testing.T) {
	for _, skip := range QuestionIDs() {
		t.Run(string(skip), func(t *testing.T) {
			e := New()
			for _, q := range QuestionIDs() {
				if q != skip {
					require.NoError(t, e.Record(q, "3"))
				}
			}

			score, ok := e.Evaluate()
			assert.False(t, ok)
			assert.Zero(t, score)
			_, set := e.Result()
			assert.False(t, set)
			assert.Equal(t, StateIncomplete, e.State())
			assert.Equal(t, []QuestionID{skip}, e.Missing())
		})
	}
}

func TestStateTransitions(t *testing.T) {
	e := New()
	require.Equal(t, StateIncomplete, e.State())

	recordAll(t, e, "1")
	require.Equal(t, StateComplete, e.State())

	_, ok := e.Evaluate()
	require.True(t, ok)
	require.Equal(t, StateEvaluated, e.State())

	// Changing an answer drops the stale result.
	require.NoError(t, e.Record(Q2, "2"))
	assert.Equal(t, StateComplete, e.State())
	_, set := e.Result()
	assert.False(t, set)

	e.Reset()
	assert.Equal(t, StateIncomplete, e.State())
}

func TestResetClearsEverything(t *testing.T) {
	e := New()
	recordAll(t, e, "3")
	_, ok := e.Evaluate()
	require.True(t, ok)

	e.Reset()

	assert.Equal(t, AnswerSet{}, e.Answers())
	assert.Equal(t, StateIncomplete, e.State())
	_, set := e.Result()
	assert.False(t, set)
	_, hasSeverity := e.Severity()
	assert.False(t, hasSeverity)

	// Reset is idempotent.
	e.Reset()
	assert.Equal(t, New(), e)
}

func TestScenarioAllTwos(t *testing.T) {
	e := New()
	recordAll(t, e, "2")

	score, ok := e.Evaluate()
	require.True(t, ok)
	assert.Equal(t, 18, score)
	assert.Equal(t, "moderately severe depression", Classify(score).Label())

	sev, ok := e.Severity()
	require.True(t, ok)
	assert.Equal(t, SeverityModeratelySevere, sev)
}

func TestScenarioMissingLast(t *testing.T) {
	e := New()
	for _, q := range QuestionIDs()[:8] {
		require.NoError(t, e.Record(q, "1"))
	}

	_, ok := e.Evaluate()
	assert.False(t, ok)
	assert.Equal(t, []QuestionID{Q9}, e.Missing())
}

func TestScenarioAllZeros(t *testing.T) {
	e := New()
	recordAll(t, e, "0")

	score, ok := e.Evaluate()
	require.True(t, ok)
	assert.Equal(t, 0, score)
	assert.Equal(t, "mentally healthy", Classify(score).Label())
}
