// Package qa answers curated career questions without touching the LLM:
// exact lookup first, then keyword similarity.
package qa

import (
	"context"
	"time"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/common/logger"
	"shifra-server/internal/models"
)

// GuidanceMessage is returned with the not-found response when neither an
// exact nor a similar question exists.
const GuidanceMessage = "I don't have a specific answer for that question. Please try rephrasing or ask something else about career paths, education options, or job requirements."

// SimilarNote annotates answers that came from a similar, not exact, match.
const SimilarNote = "Based on a similar question in our database"

// Store is the persistence slice the service needs. GetByQuestion is a
// case-insensitive exact match on the stored question text.
type Store interface {
	GetByQuestion(ctx context.Context, question string) (*models.QAEntry, error)
	ListAll(ctx context.Context) ([]models.QAEntry, error)
	Create(ctx context.Context, entry *models.QAEntry) (*models.QAEntry, error)
}

// Searcher is an optional full-text backend for the similarity step.
// When nil, the service falls back to local keyword overlap.
type Searcher interface {
	SearchSimilar(ctx context.Context, question string) ([]models.QAEntry, error)
}

// Answer is a successful lookup result.
type Answer struct {
	Answer string `json:"answer"`
	Note   string `json:"note,omitempty"`
}

// Service performs the exact-then-similar lookup flow.
type Service struct {
	store      Store
	searcher   Searcher
	minOverlap float64
	log        logger.Logger
}

// NewService creates a QA service. searcher may be nil.
func NewService(store Store, searcher Searcher, minOverlap float64, log logger.Logger) *Service {
	if minOverlap <= 0 {
		minOverlap = 0.5
	}
	return &Service{store: store, searcher: searcher, minOverlap: minOverlap, log: log}
}

// ListAll returns the whole curated corpus.
func (s *Service) ListAll(ctx context.Context) ([]models.QAEntry, error) {
	return s.store.ListAll(ctx)
}

// Create stores a new curated entry. Category defaults to "general".
func (s *Service) Create(ctx context.Context, question, answer, category string) (*models.QAEntry, error) {
	if question == "" || answer == "" {
		return nil, stderrors.NewInvalidInputError("question and answer are required")
	}
	if category == "" {
		category = "general"
	}
	return s.store.Create(ctx, &models.QAEntry{
		Question: question,
		Answer:   answer,
		Category: category,
	})
}

// FindAnswer resolves a user question. Exact matches win; otherwise the
// most similar stored question above the overlap threshold answers with a
// note; otherwise a not-found error carrying the guidance message.
func (s *Service) FindAnswer(ctx context.Context, question string) (*Answer, error) {
	if question == "" {
		return nil, stderrors.NewInvalidInputError("question is required")
	}

	entry, err := s.store.GetByQuestion(ctx, question)
	if err == nil && entry != nil {
		return &Answer{Answer: entry.Answer}, nil
	}
	if err != nil && stderrors.Normalize(err).Code != stderrors.ErrCodeNotFound {
		return nil, err
	}

	similar, err := s.findSimilar(ctx, question)
	if err != nil {
		return nil, err
	}
	if similar != nil {
		return &Answer{Answer: similar.Answer, Note: SimilarNote}, nil
	}

	return nil, &stderrors.StandardError{
		Code:      stderrors.ErrCodeNotFound,
		Message:   GuidanceMessage,
		Timestamp: time.Now().UTC(),
	}
}

func (s *Service) findSimilar(ctx context.Context, question string) (*models.QAEntry, error) {
	if s.searcher != nil {
		entries, err := s.searcher.SearchSimilar(ctx, question)
		if err != nil {
			// The search backend is an accelerator, not a dependency;
			// degrade to the local scan.
			s.log.Warn("similarity search failed, using local matching", map[string]interface{}{
				"error": err.Error(),
			})
		} else if len(entries) > 0 {
			return &entries[0], nil
		} else {
			return nil, nil
		}
	}

	entries, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var best *models.QAEntry
	bestScore := 0.0
	for i := range entries {
		score := Overlap(question, entries[i].Question)
		if score >= s.minOverlap && score > bestScore {
			best = &entries[i]
			bestScore = score
		}
	}
	return best, nil
}
