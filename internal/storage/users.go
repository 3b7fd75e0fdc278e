package storage

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/models"
)

// UserRepo persists users.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, age, education_level, interests)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.Age, user.EducationLevel, pq.Array(user.Interests),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("create user", err)
	}
	return user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, name, email, age, education_level, interests, created_at
		FROM users WHERE id = $1`

	var user models.User
	var educationLevel sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Age,
		&educationLevel, pq.Array(&user.Interests), &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, stderrors.NewNotFoundError("user")
	}
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("get user", err)
	}
	user.EducationLevel = educationLevel.String
	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, age, education_level, interests, created_at
		FROM users WHERE email = $1`

	var user models.User
	var educationLevel sql.NullString
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Age,
		&educationLevel, pq.Array(&user.Interests), &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, stderrors.NewNotFoundError("user")
	}
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("get user by email", err)
	}
	user.EducationLevel = educationLevel.String
	return &user, nil
}
