package models

import "time"

// Message roles stored in chat_messages.role.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Chat struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

type ChatMessage struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chatId"`
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp"`
}
