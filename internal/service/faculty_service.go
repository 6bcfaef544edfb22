package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
)

type facultyCounter interface {
	CountByFaculty(ctx context.Context, faculty string) (int, error)
}

// FacultyService aggregates per-faculty counts for the overview endpoint.
// Counts are served cache-aside from Redis when a client is configured;
// cache failures degrade to direct queries and never fail the request.
type FacultyService struct {
	courses  facultyCounter
	classes  facultyCounter
	reports  facultyCounter
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewFacultyService creates an instance of FacultyService. The cache client
// may be nil, disabling caching.
func NewFacultyService(courses, classes, reports facultyCounter, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *FacultyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &FacultyService{
		courses:  courses,
		classes:  classes,
		reports:  reports,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Overview returns course, class and report counts for a faculty.
func (s *FacultyService) Overview(ctx context.Context, faculty string) (*models.FacultyOverview, error) {
	if cached := s.fromCache(ctx, faculty); cached != nil {
		return cached, nil
	}

	coursesCount, err := s.courses.CountByFaculty(ctx, faculty)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error fetching faculty data")
	}
	classesCount, err := s.classes.CountByFaculty(ctx, faculty)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error fetching faculty data")
	}
	reportsCount, err := s.reports.CountByFaculty(ctx, faculty)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error fetching faculty data")
	}

	overview := &models.FacultyOverview{
		CoursesCount: coursesCount,
		ClassesCount: classesCount,
		ReportsCount: reportsCount,
	}
	s.toCache(ctx, faculty, overview)

	return overview, nil
}

func cacheKey(faculty string) string {
	return "faculty:overview:" + faculty
}

func (s *FacultyService) fromCache(ctx context.Context, faculty string) *models.FacultyOverview {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, cacheKey(faculty)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("overview cache read failed", zap.Error(err))
		}
		return nil
	}
	var overview models.FacultyOverview
	if err := json.Unmarshal(raw, &overview); err != nil {
		s.logger.Warn("overview cache entry malformed", zap.Error(err))
		return nil
	}
	return &overview
}

func (s *FacultyService) toCache(ctx context.Context, faculty string, overview *models.FacultyOverview) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(overview)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(faculty), raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("overview cache write failed", zap.Error(err))
	}
}
