package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/scope"
)

type reportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	List(ctx context.Context, pred scope.Predicate) ([]models.ReportRow, error)
	UpdateReview(ctx context.Context, id, feedback string, status models.ReportStatus) (int64, error)
}

// ReportService enforces the report lifecycle: lecturers submit reports in
// the pending state, review leaders move them to reviewed with feedback.
// There is no transition back and no delete path.
type ReportService struct {
	repo      reportRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReportService creates an instance of ReportService.
func NewReportService(repo reportRepository, validate *validator.Validate, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ReportService{repo: repo, validator: validate, logger: logger}
}

// Submit creates a report in the pending state. The author is always the
// caller; a lecturer cannot submit on behalf of anyone else.
func (s *ReportService) Submit(ctx context.Context, claims *models.Claims, req models.SubmitReportRequest) error {
	if claims.Role != models.RoleLecturer {
		return appErrors.Clone(appErrors.ErrRoleMismatch, "only lecturers can submit reports")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "class_name and topic_taught are required")
	}

	report := &models.Report{
		LecturerID:            claims.UserID,
		ClassName:             req.ClassName,
		TopicTaught:           req.TopicTaught,
		ActualStudentsPresent: req.ActualStudentsPresent,
		Status:                models.ReportPending,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error submitting report")
	}

	s.logger.Info("report submitted", zap.String("report_id", report.ID), zap.String("lecturer_id", report.LecturerID))
	return nil
}

// Review attaches prl feedback and moves the report out of pending.
// Feedback defaults to empty, status to reviewed. Reviews overwrite: the
// row always carries the latest call's values.
func (s *ReportService) Review(ctx context.Context, claims *models.Claims, reportID string, req models.ReviewReportRequest) error {
	if claims.Role != models.RoleProgramReviewLead {
		return appErrors.Clone(appErrors.ErrRoleMismatch, "only prls can give feedback")
	}

	status := req.Status
	if status == "" {
		status = models.ReportReviewed
	}

	affected, err := s.repo.UpdateReview(ctx, reportID, req.Feedback, status)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error submitting feedback")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "report not found")
	}

	s.logger.Info("report reviewed", zap.String("report_id", reportID), zap.String("status", string(status)))
	return nil
}

// List returns the report rows visible to the caller.
func (s *ReportService) List(ctx context.Context, claims *models.Claims) ([]models.ReportRow, error) {
	pred, err := scope.Reports(claims)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.List(ctx, pred)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error fetching reports")
	}
	return rows, nil
}
