package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/models"
)

// SuggestionRepo persists recommendation sets. Rows are append-only;
// "latest" is the row with the greatest date_generated.
type SuggestionRepo struct {
	db *sql.DB
}

func NewSuggestionRepo(db *sql.DB) *SuggestionRepo {
	return &SuggestionRepo{db: db}
}

func (r *SuggestionRepo) Create(ctx context.Context, suggestion *models.CareerSuggestion) (*models.CareerSuggestion, error) {
	careers, err := json.Marshal(suggestion.RecommendedCareers)
	if err != nil {
		return nil, stderrors.NewInternalError(err)
	}

	query := `
		INSERT INTO career_suggestions (user_id, recommended_careers)
		VALUES ($1, $2)
		RETURNING id, date_generated`

	err = r.db.QueryRowContext(ctx, query, suggestion.UserID, careers).
		Scan(&suggestion.ID, &suggestion.DateGenerated)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("create suggestion", err)
	}
	return suggestion, nil
}

func (r *SuggestionRepo) ListByUser(ctx context.Context, userID int64) ([]models.CareerSuggestion, error) {
	query := `
		SELECT id, user_id, recommended_careers, date_generated
		FROM career_suggestions WHERE user_id = $1
		ORDER BY date_generated DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("list suggestions", err)
	}
	defer rows.Close()

	suggestions := []models.CareerSuggestion{}
	for rows.Next() {
		var s models.CareerSuggestion
		var careers []byte
		if err := rows.Scan(&s.ID, &s.UserID, &careers, &s.DateGenerated); err != nil {
			return nil, stderrors.NewPersistenceFailureError("scan suggestion", err)
		}
		if err := json.Unmarshal(careers, &s.RecommendedCareers); err != nil {
			return nil, stderrors.NewInternalError(err)
		}
		suggestions = append(suggestions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewPersistenceFailureError("list suggestions", err)
	}
	return suggestions, nil
}

// LatestByUser returns the newest suggestion row for a user.
func (r *SuggestionRepo) LatestByUser(ctx context.Context, userID int64) (*models.CareerSuggestion, error) {
	query := `
		SELECT id, user_id, recommended_careers, date_generated
		FROM career_suggestions WHERE user_id = $1
		ORDER BY date_generated DESC LIMIT 1`

	var s models.CareerSuggestion
	var careers []byte
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&s.ID, &s.UserID, &careers, &s.DateGenerated)
	if err == sql.ErrNoRows {
		return nil, stderrors.NewNotFoundError("career suggestion")
	}
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("get latest suggestion", err)
	}
	if err := json.Unmarshal(careers, &s.RecommendedCareers); err != nil {
		return nil, stderrors.NewInternalError(err)
	}
	return &s, nil
}
