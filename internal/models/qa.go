package models

// QAEntry is one curated question/answer pair used by the offline lookup.
type QAEntry struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// QuickOption is a suggested prompt shown in the chat interface.
type QuickOption struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
	IsActive bool   `json:"isActive"`
}
