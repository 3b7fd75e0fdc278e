// Package chat implements the counseling conversation flow on top of the
// chat store and the Gemini client.
package chat

import (
	"context"
	"time"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/common/logger"
	"shifra-server/internal/models"
)

// SystemPrompt frames every counseling conversation sent upstream.
const SystemPrompt = `You are SHIFRA, an AI-powered career counseling assistant. Your primary role is to help students and professionals
explore suitable career paths based on their interests, strengths, qualifications, and personality traits.
You provide guidance on streams, careers, colleges, courses, and skill development opportunities.
Your responses should be informative, helpful, and personalized. Always maintain a supportive and encouraging tone.
Focus on providing actionable advice and insights rather than vague suggestions.`

// FallbackReply is served when the upstream model cannot produce an answer.
// The user's message is already persisted by then; only the reply degrades.
const FallbackReply = "I'm sorry, I'm having trouble connecting to my knowledge base. Please try again in a moment."

// Store is the persistence slice the service needs.
type Store interface {
	GetChat(ctx context.Context, id int64) (*models.Chat, error)
	CreateChat(ctx context.Context, userID int64, title string) (*models.Chat, error)
	ListChats(ctx context.Context, userID int64) ([]models.Chat, error)
	ListMessages(ctx context.Context, chatID int64) ([]models.ChatMessage, error)
	CreateMessage(ctx context.Context, chatID int64, role, content string) (*models.ChatMessage, error)
}

// Responder is the slice of the Gemini client the service needs.
type Responder interface {
	Chat(ctx context.Context, systemPrompt string, history []models.ChatMessage) (string, error)
}

// Service orchestrates one conversation turn.
type Service struct {
	store     Store
	responder Responder
	timeout   time.Duration
	log       logger.Logger
}

// NewService creates a chat service. timeout bounds the upstream call.
func NewService(store Store, responder Responder, timeout time.Duration, log logger.Logger) *Service {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Service{store: store, responder: responder, timeout: timeout, log: log}
}

// StartChat creates a new conversation for the user.
func (s *Service) StartChat(ctx context.Context, userID int64, title string) (*models.Chat, error) {
	if title == "" {
		title = "New conversation"
	}
	return s.store.CreateChat(ctx, userID, title)
}

// ListChats returns the user's conversations, newest first.
func (s *Service) ListChats(ctx context.Context, userID int64) ([]models.Chat, error) {
	return s.store.ListChats(ctx, userID)
}

// History returns the transcript of a chat.
func (s *Service) History(ctx context.Context, chatID int64) ([]models.ChatMessage, error) {
	if _, err := s.store.GetChat(ctx, chatID); err != nil {
		return nil, err
	}
	return s.store.ListMessages(ctx, chatID)
}

// Send appends the user's message to the chat, asks the model for a reply
// over the full transcript, and persists the reply. An upstream failure is
// soft: the user message stays persisted and a canned apology is stored as
// the assistant turn. Persistence failures are hard errors.
func (s *Service) Send(ctx context.Context, chatID int64, content string) (*models.ChatMessage, error) {
	if content == "" {
		return nil, stderrors.NewInvalidInputError("message content is required")
	}
	if _, err := s.store.GetChat(ctx, chatID); err != nil {
		return nil, err
	}

	if _, err := s.store.CreateMessage(ctx, chatID, models.RoleUser, content); err != nil {
		return nil, err
	}

	history, err := s.store.ListMessages(ctx, chatID)
	if err != nil {
		return nil, err
	}

	reply := s.generateReply(ctx, chatID, history)

	return s.store.CreateMessage(ctx, chatID, models.RoleAssistant, reply)
}

func (s *Service) generateReply(ctx context.Context, chatID int64, history []models.ChatMessage) string {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.responder.Chat(callCtx, SystemPrompt, history)
	if err != nil {
		s.log.Warn("chat reply degraded to fallback", map[string]interface{}{
			"chat_id": chatID,
			"error":   err.Error(),
		})
		return FallbackReply
	}
	return reply
}
