package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/scope"
)

// CourseRepository provides database access for courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new instance of CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a course. Codes are intentionally not checked for
// uniqueness.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO courses (id, name, code, faculty, created_at) VALUES (:id, :name, :code, :faculty, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// List returns courses visible under the given predicate.
func (r *CourseRepository) List(ctx context.Context, pred scope.Predicate) ([]models.Course, error) {
	query := `SELECT id, name, code, faculty, created_at FROM courses`
	if pred.Clause != "" {
		query += " " + pred.Clause
	}
	query += ` ORDER BY created_at DESC`

	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, pred.Args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// CountByFaculty returns the number of courses owned by a faculty.
func (r *CourseRepository) CountByFaculty(ctx context.Context, faculty string) (int, error) {
	const query = `SELECT COUNT(*) FROM courses WHERE faculty = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, strings.TrimSpace(faculty)); err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return count, nil
}
