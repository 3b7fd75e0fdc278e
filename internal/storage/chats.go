package storage

import (
	"context"
	"database/sql"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/models"
)

// ChatRepo persists conversations and their messages. It satisfies the
// chat service's Store interface.
type ChatRepo struct {
	db *sql.DB
}

func NewChatRepo(db *sql.DB) *ChatRepo {
	return &ChatRepo{db: db}
}

func (r *ChatRepo) CreateChat(ctx context.Context, userID int64, title string) (*models.Chat, error) {
	query := `
		INSERT INTO chats (user_id, title)
		VALUES ($1, $2)
		RETURNING id, created_at`

	chat := &models.Chat{UserID: userID, Title: title}
	err := r.db.QueryRowContext(ctx, query, userID, title).Scan(&chat.ID, &chat.CreatedAt)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("create chat", err)
	}
	return chat, nil
}

func (r *ChatRepo) GetChat(ctx context.Context, id int64) (*models.Chat, error) {
	query := `SELECT id, user_id, title, created_at FROM chats WHERE id = $1`

	var chat models.Chat
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&chat.ID, &chat.UserID, &chat.Title, &chat.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, stderrors.NewNotFoundError("chat")
	}
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("get chat", err)
	}
	return &chat, nil
}

func (r *ChatRepo) ListChats(ctx context.Context, userID int64) ([]models.Chat, error) {
	query := `
		SELECT id, user_id, title, created_at
		FROM chats WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("list chats", err)
	}
	defer rows.Close()

	chats := []models.Chat{}
	for rows.Next() {
		var chat models.Chat
		if err := rows.Scan(&chat.ID, &chat.UserID, &chat.Title, &chat.CreatedAt); err != nil {
			return nil, stderrors.NewPersistenceFailureError("scan chat", err)
		}
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewPersistenceFailureError("list chats", err)
	}
	return chats, nil
}

func (r *ChatRepo) ListMessages(ctx context.Context, chatID int64) ([]models.ChatMessage, error) {
	query := `
		SELECT id, chat_id, content, role, timestamp
		FROM chat_messages WHERE chat_id = $1
		ORDER BY timestamp ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("list messages", err)
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var msg models.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.ChatID, &msg.Content, &msg.Role, &msg.Timestamp); err != nil {
			return nil, stderrors.NewPersistenceFailureError("scan message", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewPersistenceFailureError("list messages", err)
	}
	return messages, nil
}

func (r *ChatRepo) CreateMessage(ctx context.Context, chatID int64, role, content string) (*models.ChatMessage, error) {
	query := `
		INSERT INTO chat_messages (chat_id, content, role)
		VALUES ($1, $2, $3)
		RETURNING id, timestamp`

	msg := &models.ChatMessage{ChatID: chatID, Content: content, Role: role}
	err := r.db.QueryRowContext(ctx, query, chatID, content, role).Scan(&msg.ID, &msg.Timestamp)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("create message", err)
	}
	return msg, nil
}
