package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/common/logger"
	"shifra-server/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

type stubStore struct {
	chats      map[int64]*models.Chat
	messages   map[int64][]models.ChatMessage
	nextMsgID  int64
	createErrs map[string]error
}

func newStubStore() *stubStore {
	return &stubStore{
		chats:      map[int64]*models.Chat{},
		messages:   map[int64][]models.ChatMessage{},
		createErrs: map[string]error{},
	}
}

func (s *stubStore) GetChat(ctx context.Context, id int64) (*models.Chat, error) {
	chat, ok := s.chats[id]
	if !ok {
		return nil, stderrors.NewNotFoundError("chat")
	}
	return chat, nil
}

func (s *stubStore) CreateChat(ctx context.Context, userID int64, title string) (*models.Chat, error) {
	id := int64(len(s.chats) + 1)
	chat := &models.Chat{ID: id, UserID: userID, Title: title, CreatedAt: time.Now()}
	s.chats[id] = chat
	return chat, nil
}

func (s *stubStore) ListChats(ctx context.Context, userID int64) ([]models.Chat, error) {
	out := []models.Chat{}
	for _, chat := range s.chats {
		if chat.UserID == userID {
			out = append(out, *chat)
		}
	}
	return out, nil
}

func (s *stubStore) ListMessages(ctx context.Context, chatID int64) ([]models.ChatMessage, error) {
	return s.messages[chatID], nil
}

func (s *stubStore) CreateMessage(ctx context.Context, chatID int64, role, content string) (*models.ChatMessage, error) {
	if err := s.createErrs[role]; err != nil {
		return nil, err
	}
	s.nextMsgID++
	msg := models.ChatMessage{ID: s.nextMsgID, ChatID: chatID, Role: role, Content: content, Timestamp: time.Now()}
	s.messages[chatID] = append(s.messages[chatID], msg)
	return &msg, nil
}

type stubResponder struct {
	reply      string
	err        error
	gotSystem  string
	gotHistory []models.ChatMessage
}

func (s *stubResponder) Chat(ctx context.Context, systemPrompt string, history []models.ChatMessage) (string, error) {
	s.gotSystem = systemPrompt
	s.gotHistory = history
	return s.reply, s.err
}

func newTestService(store Store, responder Responder) *Service {
	return NewService(store, responder, time.Second, logger.NewNoOpLogger())
}

// ==========================
// Conversation Turn Tests
// ==========================

func TestService_Send_PersistsBothTurns(t *testing.T) {
	store := newStubStore()
	chat, _ := store.CreateChat(context.Background(), 1, "career advice")
	responder := &stubResponder{reply: "Consider data science."}
	svc := newTestService(store, responder)

	reply, err := svc.Send(context.Background(), chat.ID, "What should I study?")

	require.NoError(t, err)
	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Equal(t, "Consider data science.", reply.Content)

	messages := store.messages[chat.ID]
	require.Len(t, messages, 2)
	assert.Equal(t, models.RoleUser, messages[0].Role)
	assert.Equal(t, "What should I study?", messages[0].Content)
	assert.Equal(t, models.RoleAssistant, messages[1].Role)
}

func TestService_Send_SendsSystemPromptAndTranscript(t *testing.T) {
	store := newStubStore()
	chat, _ := store.CreateChat(context.Background(), 1, "t")
	store.CreateMessage(context.Background(), chat.ID, models.RoleUser, "earlier question")
	store.CreateMessage(context.Background(), chat.ID, models.RoleAssistant, "earlier answer")
	responder := &stubResponder{reply: "ok"}
	svc := newTestService(store, responder)

	_, err := svc.Send(context.Background(), chat.ID, "new question")

	require.NoError(t, err)
	assert.Equal(t, SystemPrompt, responder.gotSystem)
	// The transcript includes the just-persisted user message.
	require.Len(t, responder.gotHistory, 3)
	assert.Equal(t, "new question", responder.gotHistory[2].Content)
}

func TestService_Send_UpstreamFailureDegradesToFallbackReply(t *testing.T) {
	store := newStubStore()
	chat, _ := store.CreateChat(context.Background(), 1, "t")
	responder := &stubResponder{err: stderrors.NewUpstreamUnavailableError(assert.AnError)}
	svc := newTestService(store, responder)

	reply, err := svc.Send(context.Background(), chat.ID, "hello?")

	require.NoError(t, err, "upstream failure must not surface to the caller")
	assert.Equal(t, FallbackReply, reply.Content)

	// The user's message survived the degraded turn.
	messages := store.messages[chat.ID]
	require.Len(t, messages, 2)
	assert.Equal(t, "hello?", messages[0].Content)
}

func TestService_Send_UnknownChat(t *testing.T) {
	svc := newTestService(newStubStore(), &stubResponder{reply: "ok"})

	_, err := svc.Send(context.Background(), 42, "hi")

	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeNotFound, stderrors.Normalize(err).Code)
}

func TestService_Send_EmptyContent(t *testing.T) {
	store := newStubStore()
	chat, _ := store.CreateChat(context.Background(), 1, "t")
	svc := newTestService(store, &stubResponder{reply: "ok"})

	_, err := svc.Send(context.Background(), chat.ID, "")

	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeInvalidInput, stderrors.Normalize(err).Code)
	assert.Empty(t, store.messages[chat.ID], "nothing persisted on rejected input")
}

func TestService_Send_PersistFailureIsHard(t *testing.T) {
	store := newStubStore()
	chat, _ := store.CreateChat(context.Background(), 1, "t")
	store.createErrs[models.RoleUser] = stderrors.NewPersistenceFailureError("create message", assert.AnError)
	svc := newTestService(store, &stubResponder{reply: "ok"})

	_, err := svc.Send(context.Background(), chat.ID, "hello")

	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodePersistenceFailure, stderrors.Normalize(err).Code)
}

func TestService_StartChat_DefaultTitle(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store, &stubResponder{})

	chat, err := svc.StartChat(context.Background(), 1, "")

	require.NoError(t, err)
	assert.Equal(t, "New conversation", chat.Title)
}
