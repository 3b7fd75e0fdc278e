package storage

import (
	"context"
	"database/sql"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/models"
)

// QuickOptionRepo persists the suggested chat prompts.
type QuickOptionRepo struct {
	db *sql.DB
}

func NewQuickOptionRepo(db *sql.DB) *QuickOptionRepo {
	return &QuickOptionRepo{db: db}
}

// ListActive returns the prompts currently shown in the chat interface.
func (r *QuickOptionRepo) ListActive(ctx context.Context) ([]models.QuickOption, error) {
	query := `
		SELECT id, text, category, is_active
		FROM quick_options WHERE is_active = TRUE
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("list quick options", err)
	}
	defer rows.Close()

	options := []models.QuickOption{}
	for rows.Next() {
		var o models.QuickOption
		if err := rows.Scan(&o.ID, &o.Text, &o.Category, &o.IsActive); err != nil {
			return nil, stderrors.NewPersistenceFailureError("scan quick option", err)
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewPersistenceFailureError("list quick options", err)
	}
	return options, nil
}

func (r *QuickOptionRepo) Create(ctx context.Context, option *models.QuickOption) (*models.QuickOption, error) {
	query := `
		INSERT INTO quick_options (text, category, is_active)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query, option.Text, option.Category, option.IsActive).
		Scan(&option.ID)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("create quick option", err)
	}
	return option, nil
}
