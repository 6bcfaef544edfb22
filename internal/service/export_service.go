package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"
	"github.com/campus-ops/faculty-reporting-api/pkg/export"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
)

// ExportFormat selects the download encoding.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

type reportLister interface {
	List(ctx context.Context, claims *models.Claims) ([]models.ReportRow, error)
}

// ExportDownload is a rendered report listing ready to stream.
type ExportDownload struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders the caller's report listing as a CSV or PDF
// download. Visibility is identical to GET /api/reports: the listing is
// fetched through the lifecycle manager, so its scope rules apply.
type ExportService struct {
	reports reportLister
	logger  *zap.Logger
}

// NewExportService creates an instance of ExportService.
func NewExportService(reports reportLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{reports: reports, logger: logger}
}

// Export renders the scoped report listing in the requested format.
func (s *ExportService) Export(ctx context.Context, claims *models.Claims, format ExportFormat) (*ExportDownload, error) {
	if format != ExportCSV && format != ExportPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	rows, err := s.reports.List(ctx, claims)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Title:   "Teaching Reports",
		Headers: []string{"Class", "Topic Taught", "Students Present", "Status", "Feedback", "Lecturer"},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		feedback := ""
		if row.PRLFeedback != nil {
			feedback = *row.PRLFeedback
		}
		table.Rows = append(table.Rows, []string{
			row.ClassName,
			row.TopicTaught,
			strconv.Itoa(row.ActualStudentsPresent),
			string(row.Status),
			feedback,
			row.LecturerName,
		})
	}

	var body []byte
	var contentType string
	switch format {
	case ExportCSV:
		body, err = export.CSV(table)
		contentType = "text/csv"
	case ExportPDF:
		body, err = export.PDF(table)
		contentType = "application/pdf"
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "error exporting reports")
	}

	filename := fmt.Sprintf("reports-%s.%s", time.Now().UTC().Format("20060102"), format)
	s.logger.Info("reports exported", zap.String("format", string(format)), zap.Int("rows", len(rows)))

	return &ExportDownload{Filename: filename, ContentType: contentType, Body: body}, nil
}
