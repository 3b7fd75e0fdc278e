package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "How Do I Choose?", expected: "how do i choose"},
		{name: "strips punctuation", input: "what's next, exactly?!", expected: "what s next exactly"},
		{name: "collapses whitespace", input: "  too   many	spaces  ", expected: "too many spaces"},
		{name: "keeps digits", input: "top 10 careers in 2026", expected: "top 10 careers in 2026"},
		{name: "empty input", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "drops stop words",
			input:    "How do I choose the right career path?",
			expected: []string{"choose", "right", "career", "path"},
		},
		{
			name:     "all stop words",
			input:    "what is it about?",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Keywords(tt.input))
		})
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		expected  float64
	}{
		{
			name:      "identical questions",
			query:     "How do I choose the right career path?",
			candidate: "How do I choose the right career path?",
			expected:  1.0,
		},
		{
			name:      "rephrased question keeps high overlap",
			query:     "choosing the right career path",
			candidate: "How do I choose the right career path?",
			// "choosing" does not match "choose"; right/career/path do.
			expected: 0.75,
		},
		{
			name:      "unrelated questions",
			query:     "What exams are required to study abroad?",
			candidate: "How do I negotiate my first job offer?",
			expected:  0.0,
		},
		{
			name:      "empty query scores zero",
			query:     "",
			candidate: "anything at all",
			expected:  0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Overlap(tt.query, tt.candidate), 0.001)
		})
	}
}
