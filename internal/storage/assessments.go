package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/models"
)

// AssessmentRepo persists completed assessment runs. Answers and scores
// are stored as jsonb snapshots.
type AssessmentRepo struct {
	db *sql.DB
}

func NewAssessmentRepo(db *sql.DB) *AssessmentRepo {
	return &AssessmentRepo{db: db}
}

func (r *AssessmentRepo) Create(ctx context.Context, assessment *models.Assessment) (*models.Assessment, error) {
	answers, err := json.Marshal(assessment.Answers)
	if err != nil {
		return nil, stderrors.NewInternalError(err)
	}
	scores, err := json.Marshal(assessment.Scores)
	if err != nil {
		return nil, stderrors.NewInternalError(err)
	}

	query := `
		INSERT INTO assessments (user_id, type, answers, scores)
		VALUES ($1, $2, $3, $4)
		RETURNING id, completed_at`

	err = r.db.QueryRowContext(ctx, query,
		assessment.UserID, string(assessment.Type), answers, scores,
	).Scan(&assessment.ID, &assessment.CompletedAt)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("create assessment", err)
	}
	return assessment, nil
}

func (r *AssessmentRepo) GetByID(ctx context.Context, id int64) (*models.Assessment, error) {
	query := `
		SELECT id, user_id, type, answers, scores, completed_at
		FROM assessments WHERE id = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id), "assessment")
}

func (r *AssessmentRepo) ListByUser(ctx context.Context, userID int64) ([]models.Assessment, error) {
	query := `
		SELECT id, user_id, type, answers, scores, completed_at
		FROM assessments WHERE user_id = $1
		ORDER BY completed_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("list assessments", err)
	}
	defer rows.Close()

	assessments := []models.Assessment{}
	for rows.Next() {
		var a models.Assessment
		var answers, scores []byte
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &answers, &scores, &a.CompletedAt); err != nil {
			return nil, stderrors.NewPersistenceFailureError("scan assessment", err)
		}
		if err := unmarshalAssessment(&a, answers, scores); err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewPersistenceFailureError("list assessments", err)
	}
	return assessments, nil
}

// LatestByUser returns the most recent assessment of the given type, used
// to seed the recommendation profile.
func (r *AssessmentRepo) LatestByUser(ctx context.Context, userID int64, typ models.AssessmentType) (*models.Assessment, error) {
	query := `
		SELECT id, user_id, type, answers, scores, completed_at
		FROM assessments WHERE user_id = $1 AND type = $2
		ORDER BY completed_at DESC LIMIT 1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, userID, string(typ)), "assessment")
}

func (r *AssessmentRepo) scanOne(row *sql.Row, what string) (*models.Assessment, error) {
	var a models.Assessment
	var answers, scores []byte
	err := row.Scan(&a.ID, &a.UserID, &a.Type, &answers, &scores, &a.CompletedAt)
	if err == sql.ErrNoRows {
		return nil, stderrors.NewNotFoundError(what)
	}
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("get "+what, err)
	}
	if err := unmarshalAssessment(&a, answers, scores); err != nil {
		return nil, err
	}
	return &a, nil
}

func unmarshalAssessment(a *models.Assessment, answers, scores []byte) error {
	if err := json.Unmarshal(answers, &a.Answers); err != nil {
		return stderrors.NewInternalError(err)
	}
	if err := json.Unmarshal(scores, &a.Scores); err != nil {
		return stderrors.NewInternalError(err)
	}
	return nil
}
