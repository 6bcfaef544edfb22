package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/scope"
)

type ratingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	ListByTarget(ctx context.Context, pred scope.Predicate) ([]models.RatingRow, error)
}

// RatingService handles lecturer ratings. Any authenticated role may submit
// or read ratings; the rater is always the caller.
type RatingService struct {
	repo      ratingRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRatingService creates an instance of RatingService.
func NewRatingService(repo ratingRepository, validate *validator.Validate, logger *zap.Logger) *RatingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &RatingService{repo: repo, validator: validate, logger: logger}
}

// Create submits a rating for a target lecturer, score 1 to 5.
func (s *RatingService) Create(ctx context.Context, claims *models.Claims, req models.CreateRatingRequest) error {
	if !claims.Role.Valid() {
		return appErrors.Clone(appErrors.ErrRoleMismatch, "unknown role")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "target_id, module and a score from 1 to 5 are required")
	}

	rating := &models.Rating{
		RaterID:  claims.UserID,
		TargetID: req.TargetID,
		Module:   req.Module,
		Score:    req.Score,
		Comment:  req.Comment,
	}
	if err := s.repo.Create(ctx, rating); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error submitting rating")
	}

	s.logger.Info("rating submitted", zap.String("rating_id", rating.ID), zap.String("target_id", rating.TargetID))
	return nil
}

// ListByTarget returns the ratings recorded for one lecturer.
func (s *RatingService) ListByTarget(ctx context.Context, claims *models.Claims, targetID string) ([]models.RatingRow, error) {
	pred, err := scope.Ratings(claims, targetID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByTarget(ctx, pred)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error fetching ratings")
	}
	return rows, nil
}
