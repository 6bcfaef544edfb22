package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"
	"github.com/campus-ops/faculty-reporting-api/pkg/response"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/service"
)

// ReportHandler serves the report lifecycle endpoints.
type ReportHandler struct {
	service *service.ReportService
	exports *service.ExportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(svc *service.ReportService, exports *service.ExportService) *ReportHandler {
	return &ReportHandler{service: svc, exports: exports}
}

// Submit godoc
// @Summary Submit report
// @Description Submit a teaching report (lecturers only); starts pending
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body models.SubmitReportRequest true "Report payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/reports [post]
func (h *ReportHandler) Submit(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}

	var req models.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "class_name and topic_taught are required"))
		return
	}

	if err := h.service.Submit(c.Request.Context(), claims, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Report submitted successfully")
}

// List godoc
// @Summary List reports
// @Description List reports visible to the caller's role
// @Tags Reports
// @Produce json
// @Success 200 {array} models.ReportRow
// @Failure 403 {object} map[string]string
// @Router /api/reports [get]
func (h *ReportHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}

	rows, err := h.service.List(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, rows)
}

// Feedback godoc
// @Summary Review report
// @Description Attach prl feedback and move the report to reviewed
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param payload body models.ReviewReportRequest true "Feedback payload"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/reports/{id}/feedback [post]
func (h *ReportHandler) Feedback(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}

	var req models.ReviewReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid feedback payload"))
		return
	}

	if err := h.service.Review(c.Request.Context(), claims, c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Feedback submitted")
}

// Export godoc
// @Summary Export reports
// @Description Download the caller's report listing as CSV or PDF
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/reports/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}

	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportCSV)))

	download, err := h.exports.Export(c.Request.Context(), claims, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+download.Filename+`"`)
	c.Data(http.StatusOK, download.ContentType, download.Body)
}
