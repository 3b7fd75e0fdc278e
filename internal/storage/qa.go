package storage

import (
	"context"
	"database/sql"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/models"
)

// QARepo persists the curated question/answer corpus. Exact lookups
// compare case-insensitively so the stored question text keeps its casing.
type QARepo struct {
	db *sql.DB
}

func NewQARepo(db *sql.DB) *QARepo {
	return &QARepo{db: db}
}

func (r *QARepo) Create(ctx context.Context, entry *models.QAEntry) (*models.QAEntry, error) {
	query := `
		INSERT INTO qa_database (question, answer, category)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query, entry.Question, entry.Answer, entry.Category).
		Scan(&entry.ID)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("create qa entry", err)
	}
	return entry, nil
}

func (r *QARepo) ListAll(ctx context.Context) ([]models.QAEntry, error) {
	query := `SELECT id, question, answer, category FROM qa_database ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("list qa entries", err)
	}
	defer rows.Close()

	entries := []models.QAEntry{}
	for rows.Next() {
		var e models.QAEntry
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer, &e.Category); err != nil {
			return nil, stderrors.NewPersistenceFailureError("scan qa entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewPersistenceFailureError("list qa entries", err)
	}
	return entries, nil
}

// GetByQuestion matches the stored question text case-insensitively.
func (r *QARepo) GetByQuestion(ctx context.Context, question string) (*models.QAEntry, error) {
	query := `
		SELECT id, question, answer, category
		FROM qa_database
		WHERE lower(trim(question)) = lower(trim($1))
		LIMIT 1`

	var e models.QAEntry
	err := r.db.QueryRowContext(ctx, query, question).
		Scan(&e.ID, &e.Question, &e.Answer, &e.Category)
	if err == sql.ErrNoRows {
		return nil, stderrors.NewNotFoundError("qa entry")
	}
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("get qa entry", err)
	}
	return &e, nil
}
