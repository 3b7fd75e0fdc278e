package assessment

import (
	"fmt"

	"shifra-server/internal/common/errors"
	"shifra-server/internal/models"
)

// Collector walks a fixed ordered question list and records one selected
// option per question. It is pure state: no I/O, not safe for concurrent
// use, one instance per assessment run.
type Collector struct {
	questions []Question
	answers   models.AnswerSet
	current   int
}

// NewCollector creates a collector positioned at the first question.
func NewCollector(questions []Question) *Collector {
	return &Collector{
		questions: questions,
		answers:   make(models.AnswerSet),
	}
}

// SelectAnswer records or overwrites the answer for the given question.
// Both indexes are validated before any state changes.
func (c *Collector) SelectAnswer(questionIndex, optionIndex int) error {
	if questionIndex < 0 || questionIndex >= len(c.questions) {
		return errors.NewInvalidInputError(fmt.Sprintf("question index %d out of range [0,%d)", questionIndex, len(c.questions)))
	}
	if optionIndex < 0 || optionIndex >= len(c.questions[questionIndex].Options) {
		return errors.NewInvalidInputError(fmt.Sprintf("option index %d out of range for question %d", optionIndex, questionIndex))
	}
	c.answers[questionIndex] = optionIndex
	return nil
}

// Advance moves to the next question. It reports false when already at the
// last question, which callers treat as the completion signal.
func (c *Collector) Advance() bool {
	if c.current >= len(c.questions)-1 {
		return false
	}
	c.current++
	return true
}

// Retreat moves to the previous question. No-op at the first question.
// Any previously recorded answer for the new position stays recorded and
// is visible through Current.
func (c *Collector) Retreat() {
	if c.current > 0 {
		c.current--
	}
}

// Current returns the question at the cursor along with the recorded
// option index, if any.
func (c *Collector) Current() (Question, int, bool) {
	q := c.questions[c.current]
	opt, answered := c.answers[c.current]
	return q, opt, answered
}

// CurrentIndex returns the cursor position.
func (c *Collector) CurrentIndex() int {
	return c.current
}

// Progress returns answered-count over total-count as a percentage.
func (c *Collector) Progress() float64 {
	if len(c.questions) == 0 {
		return 0
	}
	return float64(len(c.answers)) / float64(len(c.questions)) * 100
}

// Complete reports whether every question has a recorded answer.
func (c *Collector) Complete() bool {
	return len(c.answers) == len(c.questions)
}

// Answers returns a snapshot of the recorded answers.
func (c *Collector) Answers() models.AnswerSet {
	out := make(models.AnswerSet, len(c.answers))
	for k, v := range c.answers {
		out[k] = v
	}
	return out
}

// Reset discards all answers and moves the cursor back to the start.
func (c *Collector) Reset() {
	c.answers = make(models.AnswerSet)
	c.current = 0
}
