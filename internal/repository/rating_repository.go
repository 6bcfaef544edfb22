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

// RatingRepository provides database access for lecturer ratings.
type RatingRepository struct {
	db *sqlx.DB
}

// NewRatingRepository creates a new instance of RatingRepository.
func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create inserts a rating.
func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.NewString()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO ratings (id, rater_id, target_id, module, score, comment, created_at)
		VALUES (:id, :rater_id, :target_id, :module, :score, :comment, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, rating); err != nil {
		return fmt.Errorf("create rating: %w", err)
	}
	return nil
}

// ListByTarget returns ratings under the given predicate, joined with the
// rater's name.
func (r *RatingRepository) ListByTarget(ctx context.Context, pred scope.Predicate) ([]models.RatingRow, error) {
	query := `SELECT rt.id, rt.module, rt.score, rt.comment,
			u.name AS rater_name
		FROM ratings rt
		JOIN users u ON rt.rater_id = u.id`
	if pred.Clause != "" {
		query += " " + pred.Clause
	}
	query += ` ORDER BY rt.created_at DESC`

	var rows []models.RatingRow
	if err := r.db.SelectContext(ctx, &rows, query, pred.Args...); err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return rows, nil
}
