package models

import "time"

// User is an account the counseling data hangs off. There is no
// authentication; callers identify themselves with an explicit user id.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Age            *int      `json:"age,omitempty"`
	EducationLevel string    `json:"educationLevel,omitempty"`
	Interests      []string  `json:"interests,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
