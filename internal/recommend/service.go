package recommend

import (
	"context"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/common/logger"
	"shifra-server/internal/models"
)

// UserStore is the slice of user persistence the service needs.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AssessmentStore loads the scores that seed the profile.
type AssessmentStore interface {
	LatestByUser(ctx context.Context, userID int64, typ models.AssessmentType) (*models.Assessment, error)
}

// SuggestionStore persists recommendation sets.
type SuggestionStore interface {
	Create(ctx context.Context, suggestion *models.CareerSuggestion) (*models.CareerSuggestion, error)
	ListByUser(ctx context.Context, userID int64) ([]models.CareerSuggestion, error)
	LatestByUser(ctx context.Context, userID int64) (*models.CareerSuggestion, error)
}

// SuggestionCache is the read-path accelerator for the latest suggestion.
// All methods must tolerate backend failures silently.
type SuggestionCache interface {
	GetLatest(ctx context.Context, userID int64) *models.CareerSuggestion
	SetLatest(ctx context.Context, suggestion *models.CareerSuggestion)
	Invalidate(ctx context.Context, userID int64)
}

// FieldScorer turns category scores into field scores. Satisfied by a
// closure over the weight matrix.
type FieldScorer func(scores models.CategoryScores) models.FieldScores

// Service runs the end-to-end recommendation flow: profile assembly,
// fetch-or-fallback, persistence, cache maintenance.
type Service struct {
	users       UserStore
	assessments AssessmentStore
	suggestions SuggestionStore
	cache       SuggestionCache
	fetcher     *Fetcher
	fieldScores FieldScorer
	log         logger.Logger
}

func NewService(
	users UserStore,
	assessments AssessmentStore,
	suggestions SuggestionStore,
	cache SuggestionCache,
	fetcher *Fetcher,
	fieldScores FieldScorer,
	log logger.Logger,
) *Service {
	return &Service{
		users:       users,
		assessments: assessments,
		suggestions: suggestions,
		cache:       cache,
		fetcher:     fetcher,
		fieldScores: fieldScores,
		log:         log,
	}
}

// Generate builds the user's profile from their most recent assessment,
// runs the fetcher, and persists the resulting suggestion. A missing
// assessment is fine; the prompt just carries less signal. Only a
// persistence failure surfaces as an error.
func (s *Service) Generate(ctx context.Context, userID int64) (*models.CareerSuggestion, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := Profile{
		EducationLevel: user.EducationLevel,
		Interests:      user.Interests,
	}
	if scores, ok := s.latestScores(ctx, userID); ok {
		profile.CategoryScores = scores
		profile.FieldScores = s.fieldScores(scores)
	}

	result := s.fetcher.Fetch(ctx, userID, profile)

	suggestion := &models.CareerSuggestion{
		UserID:             userID,
		RecommendedCareers: result.Careers,
	}
	suggestion, err = s.suggestions.Create(ctx, suggestion)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
		s.cache.SetLatest(ctx, suggestion)
	}
	return suggestion, nil
}

// Save persists an externally assembled suggestion list for the user.
func (s *Service) Save(ctx context.Context, userID int64, careers []models.RecommendedCareer) (*models.CareerSuggestion, error) {
	if len(careers) == 0 {
		return nil, stderrors.NewInvalidInputError("recommendedCareers must not be empty")
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	suggestion, err := s.suggestions.Create(ctx, &models.CareerSuggestion{
		UserID:             userID,
		RecommendedCareers: careers,
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
		s.cache.SetLatest(ctx, suggestion)
	}
	return suggestion, nil
}

// Latest returns the user's newest suggestion, preferring the cache.
func (s *Service) Latest(ctx context.Context, userID int64) (*models.CareerSuggestion, error) {
	if s.cache != nil {
		if cached := s.cache.GetLatest(ctx, userID); cached != nil {
			return cached, nil
		}
	}

	suggestion, err := s.suggestions.LatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetLatest(ctx, suggestion)
	}
	return suggestion, nil
}

// History returns every suggestion for a user, newest first.
func (s *Service) History(ctx context.Context, userID int64) ([]models.CareerSuggestion, error) {
	return s.suggestions.ListByUser(ctx, userID)
}

// latestScores prefers the aptitude assessment and falls back to the
// personality one.
func (s *Service) latestScores(ctx context.Context, userID int64) (models.CategoryScores, bool) {
	for _, typ := range []models.AssessmentType{models.AssessmentAptitude, models.AssessmentPersonality} {
		a, err := s.assessments.LatestByUser(ctx, userID, typ)
		if err == nil && len(a.Scores) > 0 {
			return a.Scores, true
		}
		if err != nil && stderrors.Normalize(err).Code != stderrors.ErrCodeNotFound {
			s.log.Warn("could not load assessment scores", map[string]interface{}{
				"user_id": userID,
				"type":    string(typ),
				"error":   err.Error(),
			})
		}
	}
	return nil, false
}
