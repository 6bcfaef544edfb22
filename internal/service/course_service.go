package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/scope"
)

type courseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	List(ctx context.Context, pred scope.Predicate) ([]models.Course, error)
}

// CourseService handles course creation and faculty-scoped listing.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService creates an instance of CourseService.
func NewCourseService(repo courseRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{repo: repo, validator: validate, logger: logger}
}

// Create adds a course. Program leaders only.
func (s *CourseService) Create(ctx context.Context, claims *models.Claims, req models.CreateCourseRequest) error {
	if claims.Role != models.RoleProgramLeader {
		return appErrors.Clone(appErrors.ErrRoleMismatch, "only program leaders can add courses")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}

	course := &models.Course{
		Name:    req.Name,
		Code:    req.Code,
		Faculty: req.Faculty,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error adding course")
	}

	s.logger.Info("course created", zap.String("course_id", course.ID), zap.String("faculty", course.Faculty))
	return nil
}

// List returns the courses visible to the caller's faculty.
func (s *CourseService) List(ctx context.Context, claims *models.Claims) ([]models.Course, error) {
	pred, err := scope.Courses(claims)
	if err != nil {
		return nil, err
	}

	courses, err := s.repo.List(ctx, pred)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error fetching courses")
	}
	return courses, nil
}
