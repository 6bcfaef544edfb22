package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/scope"
)

type classRepository interface {
	Create(ctx context.Context, class *models.Class) error
	FindDetail(ctx context.Context, id string) (*models.ClassDetail, error)
	ListAssigned(ctx context.Context, pred scope.Predicate) ([]models.ClassDetail, error)
}

// ClassService handles class creation and the lecturer's class listing.
type ClassService struct {
	repo      classRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService creates an instance of ClassService.
func NewClassService(repo classRepository, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ClassService{repo: repo, validator: validate, logger: logger}
}

// Create inserts a class and re-reads the joined row so the caller never
// needs a second round trip to assemble display data. The insert and the
// re-read are deliberately untransacted: no delete path exists that could
// race with the read.
func (s *ClassService) Create(ctx context.Context, claims *models.Claims, req models.CreateClassRequest) (*models.ClassDetail, error) {
	if claims.Role != models.RoleProgramLeader {
		return nil, appErrors.Clone(appErrors.ErrRoleMismatch, "only program leaders can add classes")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "course_id, name, and lecturer_id are required")
	}

	class := &models.Class{
		CourseID:        req.CourseID,
		Name:            req.Name,
		ScheduledTime:   req.ScheduledTime,
		Venue:           req.Venue,
		TotalRegistered: req.TotalRegistered,
		LecturerID:      req.LecturerID,
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error creating class")
	}

	detail, err := s.repo.FindDetail(ctx, class.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error creating class")
	}

	s.logger.Info("class created", zap.String("class_id", class.ID), zap.String("course_id", class.CourseID))
	return detail, nil
}

// MyClasses lists the classes assigned to the calling lecturer.
func (s *ClassService) MyClasses(ctx context.Context, claims *models.Claims) ([]models.ClassDetail, error) {
	pred, err := scope.MyClasses(claims)
	if err != nil {
		return nil, err
	}

	classes, err := s.repo.ListAssigned(ctx, pred)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error fetching your classes")
	}
	return classes, nil
}
