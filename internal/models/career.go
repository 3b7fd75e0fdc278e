package models

type Career struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills,omitempty"`
	AvgSalary      string   `json:"avgSalary"`
	Industries     []string `json:"industries,omitempty"`
}

type Course struct {
	ID       int64  `json:"id"`
	CareerID int64  `json:"careerId"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Link     string `json:"link"`
}
