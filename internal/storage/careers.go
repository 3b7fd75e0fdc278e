package storage

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	stderrors "shifra-server/internal/common/errors"
	"shifra-server/internal/models"
)

// CareerRepo persists the curated career catalog and its courses.
type CareerRepo struct {
	db *sql.DB
}

func NewCareerRepo(db *sql.DB) *CareerRepo {
	return &CareerRepo{db: db}
}

func (r *CareerRepo) List(ctx context.Context) ([]models.Career, error) {
	query := `
		SELECT id, name, description, required_skills, avg_salary, industries
		FROM careers ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("list careers", err)
	}
	defer rows.Close()

	careers := []models.Career{}
	for rows.Next() {
		var c models.Career
		if err := rows.Scan(&c.ID, &c.Name, &c.Description,
			pq.Array(&c.RequiredSkills), &c.AvgSalary, pq.Array(&c.Industries)); err != nil {
			return nil, stderrors.NewPersistenceFailureError("scan career", err)
		}
		careers = append(careers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewPersistenceFailureError("list careers", err)
	}
	return careers, nil
}

func (r *CareerRepo) GetByID(ctx context.Context, id int64) (*models.Career, error) {
	query := `
		SELECT id, name, description, required_skills, avg_salary, industries
		FROM careers WHERE id = $1`

	var c models.Career
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description,
		pq.Array(&c.RequiredSkills), &c.AvgSalary, pq.Array(&c.Industries),
	)
	if err == sql.ErrNoRows {
		return nil, stderrors.NewNotFoundError("career")
	}
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("get career", err)
	}
	return &c, nil
}

func (r *CareerRepo) Create(ctx context.Context, career *models.Career) (*models.Career, error) {
	query := `
		INSERT INTO careers (name, description, required_skills, avg_salary, industries)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		career.Name, career.Description, pq.Array(career.RequiredSkills),
		career.AvgSalary, pq.Array(career.Industries),
	).Scan(&career.ID)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("create career", err)
	}
	return career, nil
}

// ListCourses returns the courses attached to a career.
func (r *CareerRepo) ListCourses(ctx context.Context, careerID int64) ([]models.Course, error) {
	query := `
		SELECT id, career_id, name, provider, link
		FROM courses WHERE career_id = $1
		ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, careerID)
	if err != nil {
		return nil, stderrors.NewPersistenceFailureError("list courses", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.CareerID, &c.Name, &c.Provider, &c.Link); err != nil {
			return nil, stderrors.NewPersistenceFailureError("scan course", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewPersistenceFailureError("list courses", err)
	}
	return courses, nil
}
