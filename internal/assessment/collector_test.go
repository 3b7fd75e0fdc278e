package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func testQuestions() []Question {
	return []Question{
		{ID: 1, Prompt: "q1", Options: []string{"a", "b", "c", "d"}, Category: CategoryAnalytical},
		{ID: 2, Prompt: "q2", Options: []string{"a", "b", "c", "d"}, Category: CategoryCreative},
		{ID: 3, Prompt: "q3", Options: []string{"a", "b"}, Category: CategoryAnalytical},
	}
}

// ==========================
// Answer Recording Tests
// ==========================

func TestCollector_SelectAnswer(t *testing.T) {
	tests := []struct {
		name          string
		questionIndex int
		optionIndex   int
		wantErr       bool
	}{
		{name: "valid first question", questionIndex: 0, optionIndex: 2},
		{name: "valid last question", questionIndex: 2, optionIndex: 1},
		{name: "question index negative", questionIndex: -1, optionIndex: 0, wantErr: true},
		{name: "question index past end", questionIndex: 3, optionIndex: 0, wantErr: true},
		{name: "option index negative", questionIndex: 0, optionIndex: -1, wantErr: true},
		{name: "option index past end", questionIndex: 2, optionIndex: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(testQuestions())
			err := c.SelectAnswer(tt.questionIndex, tt.optionIndex)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, c.Answers())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.optionIndex, c.Answers()[tt.questionIndex])
		})
	}
}

func TestCollector_SelectAnswer_Overwrite(t *testing.T) {
	c := NewCollector(testQuestions())

	require.NoError(t, c.SelectAnswer(0, 1))
	require.NoError(t, c.SelectAnswer(0, 3))

	assert.Equal(t, 3, c.Answers()[0])
	assert.Len(t, c.Answers(), 1)
}

// ==========================
// Navigation Tests
// ==========================

func TestCollector_AdvanceAndRetreat(t *testing.T) {
	c := NewCollector(testQuestions())

	assert.Equal(t, 0, c.CurrentIndex())
	assert.True(t, c.Advance())
	assert.True(t, c.Advance())
	assert.Equal(t, 2, c.CurrentIndex())

	// At the last question Advance signals completion.
	assert.False(t, c.Advance())
	assert.Equal(t, 2, c.CurrentIndex())

	c.Retreat()
	assert.Equal(t, 1, c.CurrentIndex())

	c.Retreat()
	c.Retreat() // no-op at the first question
	assert.Equal(t, 0, c.CurrentIndex())
}

func TestCollector_RetreatKeepsRecordedAnswer(t *testing.T) {
	c := NewCollector(testQuestions())

	require.NoError(t, c.SelectAnswer(0, 2))
	c.Advance()
	c.Retreat()

	q, opt, answered := c.Current()
	assert.Equal(t, 1, q.ID)
	assert.True(t, answered)
	assert.Equal(t, 2, opt)
}

// ==========================
// Progress and Completion Tests
// ==========================

func TestCollector_Progress(t *testing.T) {
	c := NewCollector(testQuestions())
	assert.Equal(t, 0.0, c.Progress())

	require.NoError(t, c.SelectAnswer(0, 0))
	assert.InDelta(t, 100.0/3, c.Progress(), 0.001)

	require.NoError(t, c.SelectAnswer(1, 0))
	require.NoError(t, c.SelectAnswer(2, 0))
	assert.Equal(t, 100.0, c.Progress())
	assert.True(t, c.Complete())
}

func TestCollector_Reset(t *testing.T) {
	c := NewCollector(testQuestions())
	require.NoError(t, c.SelectAnswer(0, 1))
	c.Advance()

	c.Reset()

	assert.Equal(t, 0, c.CurrentIndex())
	assert.Empty(t, c.Answers())
	assert.False(t, c.Complete())
}

func TestCollector_AnswersSnapshotIsIndependent(t *testing.T) {
	c := NewCollector(testQuestions())
	require.NoError(t, c.SelectAnswer(0, 1))

	snapshot := c.Answers()
	snapshot[0] = 3

	assert.Equal(t, 1, c.Answers()[0])
}
