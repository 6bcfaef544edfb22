package service

import (
	"context"

	"go.uber.org/zap"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/scope"
)

type userRepository interface {
	List(ctx context.Context, role *models.Role) ([]models.User, error)
}

// UserService serves the user directory. The listing is unscoped for every
// authenticated role; the frontend uses it to pick lecturers for class
// assignment and rating targets.
type UserService struct {
	repo   userRepository
	logger *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(repo userRepository, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, logger: logger}
}

// List returns users, optionally narrowed to one role via the ?role= query.
func (s *UserService) List(ctx context.Context, claims *models.Claims, roleFilter *models.Role) ([]models.User, error) {
	if _, err := scope.Users(claims); err != nil {
		return nil, err
	}
	if roleFilter != nil && !roleFilter.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown role filter")
	}

	users, err := s.repo.List(ctx, roleFilter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error fetching users")
	}
	return users, nil
}
