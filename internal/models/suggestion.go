package models

import "time"

// RecommendedCareer is one entry of a career suggestion. It is produced
// either by the Gemini recommendation call or by the local fallback list.
type RecommendedCareer struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	MatchPercentage int      `json:"matchPercentage"`
	Skills          []string `json:"skills"`
	AvgSalary       string   `json:"avgSalary"`
}

// CareerSuggestion is a persisted recommendation set. Rows are append-only;
// the latest one for a user is the row with the greatest DateGenerated.
type CareerSuggestion struct {
	ID                 int64               `json:"id"`
	UserID             int64               `json:"userId"`
	RecommendedCareers []RecommendedCareer `json:"recommendedCareers"`
	DateGenerated      time.Time           `json:"dateGenerated"`
}
