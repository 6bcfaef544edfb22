package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/scope"
)

// ReportRepository provides database access for teaching reports.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a report. Status is always persisted exactly as set by the
// lifecycle manager; the row never carries a caller-supplied author.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO reports (id, lecturer_id, class_name, topic_taught, actual_students_present, status, prl_feedback, created_at)
		VALUES (:id, :lecturer_id, :class_name, :topic_taught, :actual_students_present, :status, :prl_feedback, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, report); err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

// List returns report rows visible under the given predicate, each joined
// with the authoring lecturer's name.
func (r *ReportRepository) List(ctx context.Context, pred scope.Predicate) ([]models.ReportRow, error) {
	query := `SELECT r.id, r.class_name, r.topic_taught, r.actual_students_present,
			r.status, r.prl_feedback,
			u.name AS lecturer_name
		FROM reports r
		JOIN users u ON r.lecturer_id = u.id`
	if pred.Clause != "" {
		query += " " + pred.Clause
	}
	query += ` ORDER BY r.created_at DESC`

	var rows []models.ReportRow
	if err := r.db.SelectContext(ctx, &rows, query, pred.Args...); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return rows, nil
}

// UpdateReview overwrites feedback and status by report id. Repeating the
// same review is idempotent; the row always holds the latest values. The
// returned count is zero when the id is unknown.
func (r *ReportRepository) UpdateReview(ctx context.Context, id, feedback string, status models.ReportStatus) (int64, error) {
	const query = `UPDATE reports SET prl_feedback = $2, status = $3 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, feedback, status)
	if err != nil {
		return 0, fmt.Errorf("update report review: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update report review: %w", err)
	}
	return affected, nil
}

// CountByFaculty counts reports authored by lecturers of the faculty.
func (r *ReportRepository) CountByFaculty(ctx context.Context, faculty string) (int, error) {
	const query = `SELECT COUNT(*)
		FROM reports r
		JOIN users u ON r.lecturer_id = u.id
		WHERE u.faculty = $1`
	var count int
	if err := r.db.GetContext(ctx, &count, query, faculty); err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return count, nil
}
