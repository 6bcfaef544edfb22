package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/scope"
)

// ClassRepository provides database access for classes.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository creates a new instance of ClassRepository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// Create inserts a class row.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	if class.ID == "" {
		class.ID = uuid.NewString()
	}
	if class.CreatedAt.IsZero() {
		class.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO classes (id, course_id, name, scheduled_time, venue, total_registered, assigned_lecturer_id, created_at)
		VALUES (:id, :course_id, :name, :scheduled_time, :venue, :total_registered, :assigned_lecturer_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, class); err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

// FindDetail re-reads a class joined with its course and lecturer so the
// caller gets a fully hydrated record in one round trip.
func (r *ClassRepository) FindDetail(ctx context.Context, id string) (*models.ClassDetail, error) {
	const query = `SELECT cl.id, cl.name, cl.scheduled_time, cl.venue, cl.total_registered,
			cr.name AS course_name, cr.code AS course_code,
			u.id AS lecturer_id, u.name AS lecturer_name
		FROM classes cl
		JOIN courses cr ON cl.course_id = cr.id
		LEFT JOIN users u ON cl.assigned_lecturer_id = u.id
		WHERE cl.id = $1`
	var detail models.ClassDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find class detail: %w", err)
	}
	return &detail, nil
}

// ListAssigned returns the classes visible under the given predicate,
// joined with course display data.
func (r *ClassRepository) ListAssigned(ctx context.Context, pred scope.Predicate) ([]models.ClassDetail, error) {
	query := `SELECT cl.id, cl.name, cl.scheduled_time, cl.venue, cl.total_registered,
			cr.name AS course_name, cr.code AS course_code
		FROM classes cl
		JOIN courses cr ON cl.course_id = cr.id`
	if pred.Clause != "" {
		query += " " + pred.Clause
	}
	query += ` ORDER BY cl.created_at DESC`

	var classes []models.ClassDetail
	if err := r.db.SelectContext(ctx, &classes, query, pred.Args...); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// CountByFaculty counts classes whose course belongs to the faculty.
func (r *ClassRepository) CountByFaculty(ctx context.Context, faculty string) (int, error) {
	const query = `SELECT COUNT(*)
		FROM classes cl
		JOIN courses cr ON cl.course_id = cr.id
		WHERE cr.faculty = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, faculty); err != nil {
		return 0, fmt.Errorf("count classes: %w", err)
	}
	return count, nil
}
