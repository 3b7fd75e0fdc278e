package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shifra-server/internal/assessment"
	"shifra-server/internal/chat"
	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/common/logger"
	"shifra-server/internal/models"
	"shifra-server/internal/qa"
	"shifra-server/internal/recommend"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==========================
// Test Helper Functions
// ==========================

type memStore struct {
	users       map[int64]*models.User
	chats       map[int64]*models.Chat
	messages    map[int64][]models.ChatMessage
	assessments []models.Assessment
	suggestions []models.CareerSuggestion
	qaEntries   []models.QAEntry
	careers     []models.Career
	courses     map[int64][]models.Course
	options     []models.QuickOption
	nextID      int64
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[int64]*models.User{},
		chats:    map[int64]*models.Chat{},
		messages: map[int64][]models.ChatMessage{},
		courses:  map[int64][]models.Course{},
		nextID:   100,
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

// UserStore
func (m *memStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = m.id()
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return user, nil
}

func (m *memStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, stderrors.NewNotFoundError("user")
}

// chat.Store
func (m *memStore) GetChat(ctx context.Context, id int64) (*models.Chat, error) {
	if c, ok := m.chats[id]; ok {
		return c, nil
	}
	return nil, stderrors.NewNotFoundError("chat")
}

func (m *memStore) CreateChat(ctx context.Context, userID int64, title string) (*models.Chat, error) {
	c := &models.Chat{ID: m.id(), UserID: userID, Title: title, CreatedAt: time.Now()}
	m.chats[c.ID] = c
	return c, nil
}

func (m *memStore) ListChats(ctx context.Context, userID int64) ([]models.Chat, error) {
	out := []models.Chat{}
	for _, c := range m.chats {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memStore) ListMessages(ctx context.Context, chatID int64) ([]models.ChatMessage, error) {
	return m.messages[chatID], nil
}

func (m *memStore) CreateMessage(ctx context.Context, chatID int64, role, content string) (*models.ChatMessage, error) {
	msg := models.ChatMessage{ID: m.id(), ChatID: chatID, Role: role, Content: content, Timestamp: time.Now()}
	m.messages[chatID] = append(m.messages[chatID], msg)
	return &msg, nil
}

// AssessmentStore (server) + recommend.AssessmentStore
type memAssessments struct{ store *memStore }

func (a *memAssessments) Create(ctx context.Context, assessment *models.Assessment) (*models.Assessment, error) {
	assessment.ID = a.store.id()
	assessment.CompletedAt = time.Now()
	a.store.assessments = append(a.store.assessments, *assessment)
	return assessment, nil
}

func (a *memAssessments) ListByUser(ctx context.Context, userID int64) ([]models.Assessment, error) {
	return a.store.assessments, nil
}

func (a *memAssessments) LatestByUser(ctx context.Context, userID int64, typ models.AssessmentType) (*models.Assessment, error) {
	for i := len(a.store.assessments) - 1; i >= 0; i-- {
		if a.store.assessments[i].Type == typ && a.store.assessments[i].UserID == userID {
			return &a.store.assessments[i], nil
		}
	}
	return nil, stderrors.NewNotFoundError("assessment")
}

// recommend.SuggestionStore
type memSuggestions struct{ store *memStore }

func (s *memSuggestions) Create(ctx context.Context, suggestion *models.CareerSuggestion) (*models.CareerSuggestion, error) {
	suggestion.ID = s.store.id()
	suggestion.DateGenerated = time.Now()
	s.store.suggestions = append(s.store.suggestions, *suggestion)
	return suggestion, nil
}

func (s *memSuggestions) ListByUser(ctx context.Context, userID int64) ([]models.CareerSuggestion, error) {
	return s.store.suggestions, nil
}

func (s *memSuggestions) LatestByUser(ctx context.Context, userID int64) (*models.CareerSuggestion, error) {
	if len(s.store.suggestions) == 0 {
		return nil, stderrors.NewNotFoundError("career suggestion")
	}
	return &s.store.suggestions[len(s.store.suggestions)-1], nil
}

// qa.Store
type memQA struct{ store *memStore }

func (q *memQA) GetByQuestion(ctx context.Context, question string) (*models.QAEntry, error) {
	for i := range q.store.qaEntries {
		if q.store.qaEntries[i].Question == question {
			return &q.store.qaEntries[i], nil
		}
	}
	return nil, stderrors.NewNotFoundError("qa entry")
}

func (q *memQA) ListAll(ctx context.Context) ([]models.QAEntry, error) {
	return q.store.qaEntries, nil
}

func (q *memQA) Create(ctx context.Context, entry *models.QAEntry) (*models.QAEntry, error) {
	entry.ID = q.store.id()
	q.store.qaEntries = append(q.store.qaEntries, *entry)
	return entry, nil
}

// CareerStore
type memCareers struct{ store *memStore }

func (c *memCareers) List(ctx context.Context) ([]models.Career, error) {
	return c.store.careers, nil
}

func (c *memCareers) GetByID(ctx context.Context, id int64) (*models.Career, error) {
	for i := range c.store.careers {
		if c.store.careers[i].ID == id {
			return &c.store.careers[i], nil
		}
	}
	return nil, stderrors.NewNotFoundError("career")
}

func (c *memCareers) ListCourses(ctx context.Context, careerID int64) ([]models.Course, error) {
	return c.store.courses[careerID], nil
}

// QuickOptionStore
type memOptions struct{ store *memStore }

func (o *memOptions) ListActive(ctx context.Context) ([]models.QuickOption, error) {
	return o.store.options, nil
}

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.response, s.err
}

func (s *stubGenerator) Chat(ctx context.Context, systemPrompt string, history []models.ChatMessage) (string, error) {
	return s.response, s.err
}

type testEnv struct {
	store  *memStore
	router *gin.Engine
	demoID int64
}

func setupEnv(t *testing.T, gen *stubGenerator) *testEnv {
	store := newMemStore()
	log := logger.NewTestLogger(t)

	demo, _ := store.Create(context.Background(), &models.User{Name: "Demo User", Email: "demo@example.com"})

	fallbacks := []assessment.FallbackCareer{
		{Name: "Data Scientist", Field: "data_science", MatchPercentage: 85, AvgSalary: "$95k"},
		{Name: "Software Developer", Field: "software_engineering", MatchPercentage: 75, AvgSalary: "$110k"},
	}
	fetcher := recommend.NewFetcher(gen, fallbacks, time.Second, log, nil, nil, "")

	assessments := &memAssessments{store: store}
	recommender := recommend.NewService(
		store, assessments, &memSuggestions{store: store}, nil, fetcher,
		func(scores models.CategoryScores) models.FieldScores { return models.FieldScores{} },
		log,
	)
	chatSvc := chat.NewService(store, gen, time.Second, log)
	qaSvc := qa.NewService(&memQA{store: store}, nil, 0.5, log)

	srv := New(
		log, chatSvc, qaSvc, recommender,
		store, assessments, &memCareers{store: store}, &memOptions{store: store},
		assessment.DefaultQuestions(), demo.ID,
	)

	return &testEnv{store: store, router: srv.Router(), demoID: demo.ID}
}

func (e *testEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// ==========================
// Route Tests
// ==========================

func TestHealthz(t *testing.T) {
	env := setupEnv(t, &stubGenerator{response: "ok"})

	rec := env.do(http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateAssessment(t *testing.T) {
	env := setupEnv(t, &stubGenerator{response: "ok"})

	rec := env.do(http.MethodPost, "/api/assessments", map[string]interface{}{
		"type":    "aptitude",
		"answers": map[string]int{"0": 0, "1": 1, "2": 3},
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Assessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, models.AssessmentAptitude, created.Type)
	assert.NotEmpty(t, created.Scores)
	assert.Equal(t, env.demoID, created.UserID, "missing X-User-ID falls back to the demo user")
}

func TestCreateAssessment_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "unknown type",
			body: map[string]interface{}{"type": "astrology", "answers": map[string]int{"0": 0}},
		},
		{
			name: "missing answers",
			body: map[string]interface{}{"type": "aptitude"},
		},
		{
			name: "negative option index",
			body: map[string]interface{}{"type": "aptitude", "answers": map[string]int{"0": -1}},
		},
		{
			name: "non-numeric answer key",
			body: map[string]interface{}{"type": "aptitude", "answers": map[string]int{"abc": 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupEnv(t, &stubGenerator{response: "ok"})
			rec := env.do(http.MethodPost, "/api/assessments", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestChatFlow(t *testing.T) {
	env := setupEnv(t, &stubGenerator{response: "Consider data science."})

	rec := env.do(http.MethodPost, "/api/chat", map[string]string{"title": "advice"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Chat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = env.do(http.MethodPost, "/api/chat/"+itoa(created.ID)+"/message", map[string]string{"content": "what should I study?"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var reply models.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Equal(t, "Consider data science.", reply.Content)

	rec = env.do(http.MethodGet, "/api/chat/"+itoa(created.ID)+"/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var messages []models.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	assert.Len(t, messages, 2)
}

func TestChatMessage_UnknownChat(t *testing.T) {
	env := setupEnv(t, &stubGenerator{response: "ok"})

	rec := env.do(http.MethodPost, "/api/chat/9999/message", map[string]string{"content": "hi"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateCareerSuggestions(t *testing.T) {
	env := setupEnv(t, &stubGenerator{
		response: `{"careers":[{"name":"Data Scientist","matchPercentage":92,"avgSalary":"$120k"}]}`,
	})

	rec := env.do(http.MethodPost, "/api/career-suggestions", nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var suggestion models.CareerSuggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestion))
	require.Len(t, suggestion.RecommendedCareers, 1)
	assert.Equal(t, "Data Scientist", suggestion.RecommendedCareers[0].Name)

	rec = env.do(http.MethodGet, "/api/career-suggestions/latest", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGenerateCareerSuggestions_FallbackOnUpstreamFailure(t *testing.T) {
	env := setupEnv(t, &stubGenerator{err: stderrors.NewUpstreamUnavailableError(assert.AnError)})

	rec := env.do(http.MethodPost, "/api/career-suggestions", nil)

	require.Equal(t, http.StatusCreated, rec.Code, "fallback still yields a created suggestion")
	var suggestion models.CareerSuggestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestion))
	assert.Len(t, suggestion.RecommendedCareers, 2)
}

func TestLatestCareerSuggestion_Empty(t *testing.T) {
	env := setupEnv(t, &stubGenerator{response: "ok"})

	rec := env.do(http.MethodGet, "/api/career-suggestions/latest", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQALookup(t *testing.T) {
	env := setupEnv(t, &stubGenerator{response: "ok"})
	env.store.qaEntries = append(env.store.qaEntries, models.QAEntry{
		ID: 1, Question: "How do I choose the right career path?", Answer: "Assess your strengths.",
	})

	rec := env.do(http.MethodGet, "/api/qa?question=How+do+I+choose+the+right+career+path%3F", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var answer qa.Answer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answer))
	assert.Equal(t, "Assess your strengths.", answer.Answer)
}

func TestQALookup_NotFoundCarriesGuidance(t *testing.T) {
	env := setupEnv(t, &stubGenerator{response: "ok"})

	rec := env.do(http.MethodGet, "/api/qa?question=unanswerable", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body stderrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, qa.GuidanceMessage, body.Message)
}

func TestQALookup_MissingQuestion(t *testing.T) {
	env := setupEnv(t, &stubGenerator{response: "ok"})

	rec := env.do(http.MethodGet, "/api/qa", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserIDHeader(t *testing.T) {
	env := setupEnv(t, &stubGenerator{response: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	req.Header.Set("X-User-ID", "not-a-number")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetQuestions(t *testing.T) {
	env := setupEnv(t, &stubGenerator{response: "ok"})

	rec := env.do(http.MethodGet, "/api/assessments/questions", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var questions []assessment.Question
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &questions))
	assert.Len(t, questions, len(assessment.DefaultQuestions()))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
