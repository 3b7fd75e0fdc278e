// Package server exposes the HTTP API over the chat, assessment, QA and
// recommendation services.
package server

import (
	"context"

	"github.com/gin-gonic/gin"

	"shifra-server/internal/assessment"
	"shifra-server/internal/chat"
	"shifra-server/internal/common/logger"
	"shifra-server/internal/models"
	"shifra-server/internal/qa"
	"shifra-server/internal/recommend"
)

// CareerStore is the catalog slice the career endpoints need.
type CareerStore interface {
	List(ctx context.Context) ([]models.Career, error)
	GetByID(ctx context.Context, id int64) (*models.Career, error)
	ListCourses(ctx context.Context, careerID int64) ([]models.Course, error)
}

// QuickOptionStore lists the suggested chat prompts.
type QuickOptionStore interface {
	ListActive(ctx context.Context) ([]models.QuickOption, error)
}

// AssessmentStore persists and lists completed assessments.
type AssessmentStore interface {
	Create(ctx context.Context, a *models.Assessment) (*models.Assessment, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Assessment, error)
}

// UserStore manages accounts.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// Server bundles the services behind the HTTP surface.
type Server struct {
	log logger.Logger

	chats       *chat.Service
	qa          *qa.Service
	recommender *recommend.Service

	users        UserStore
	assessments  AssessmentStore
	careers      CareerStore
	quickOptions QuickOptionStore

	questions  []assessment.Question
	demoUserID int64
}

// New creates a Server. demoUserID of 0 disables the header fallback.
func New(
	log logger.Logger,
	chats *chat.Service,
	qaSvc *qa.Service,
	recommender *recommend.Service,
	users UserStore,
	assessments AssessmentStore,
	careers CareerStore,
	quickOptions QuickOptionStore,
	questions []assessment.Question,
	demoUserID int64,
) *Server {
	return &Server{
		log:          log,
		chats:        chats,
		qa:           qaSvc,
		recommender:  recommender,
		users:        users,
		assessments:  assessments,
		careers:      careers,
		quickOptions: quickOptions,
		questions:    questions,
		demoUserID:   demoUserID,
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(s.log), Metrics())

	r.GET("/healthz", s.health)

	api := r.Group("/api")
	{
		chatRouter := api.Group("/chat")
		{
			chatRouter.GET("", s.listChats)
			chatRouter.POST("", s.createChat)
			chatRouter.GET("/:id", s.getChat)
			chatRouter.GET("/:id/messages", s.getChatMessages)
			chatRouter.POST("/:id/message", s.postChatMessage)
		}

		assessmentRouter := api.Group("/assessments")
		{
			assessmentRouter.GET("", s.listAssessments)
			assessmentRouter.POST("", s.createAssessment)
			assessmentRouter.GET("/questions", s.getQuestions)
		}

		careerRouter := api.Group("/careers")
		{
			careerRouter.GET("", s.listCareers)
			careerRouter.GET("/:careerId/courses", s.listCareerCourses)
		}

		suggestionRouter := api.Group("/career-suggestions")
		{
			suggestionRouter.POST("", s.createCareerSuggestion)
			suggestionRouter.GET("", s.listCareerSuggestions)
			suggestionRouter.GET("/latest", s.getLatestCareerSuggestion)
		}

		qaRouter := api.Group("/qa")
		{
			qaRouter.GET("", s.findAnswer)
			qaRouter.GET("/all", s.listQA)
			qaRouter.POST("", s.createQA)
		}

		api.GET("/quick-options", s.listQuickOptions)

		userRouter := api.Group("/users")
		{
			userRouter.POST("", s.createUser)
			userRouter.GET("/:id", s.getUser)
		}
	}

	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
