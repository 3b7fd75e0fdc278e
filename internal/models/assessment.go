package models

import "time"

// AssessmentType enumerates the supported assessment kinds.
type AssessmentType string

const (
	AssessmentPersonality AssessmentType = "personality"
	AssessmentAptitude    AssessmentType = "aptitude"
	AssessmentInterest    AssessmentType = "interest"
)

// Valid reports whether t is one of the known assessment types.
func (t AssessmentType) Valid() bool {
	switch t {
	case AssessmentPersonality, AssessmentAptitude, AssessmentInterest:
		return true
	}
	return false
}

// AnswerSet maps a question index to the selected option index.
type AnswerSet map[int]int

// CategoryScores maps a category tag to a normalized score in [0,100].
type CategoryScores map[string]float64

// FieldScores maps a career-field tag to an integer match score in [0,100].
type FieldScores map[string]int

// Assessment is one completed run. Rows are append-only; the answers and
// scores columns are jsonb snapshots taken at completion time.
type Assessment struct {
	ID          int64          `json:"id"`
	UserID      int64          `json:"userId"`
	Type        AssessmentType `json:"type"`
	Answers     AnswerSet      `json:"answers"`
	Scores      CategoryScores `json:"scores"`
	CompletedAt time.Time      `json:"completedAt"`
}
