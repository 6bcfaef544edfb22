package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-ops/faculty-reporting-api/internal/middleware"
	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/scope"
	"github.com/campus-ops/faculty-reporting-api/internal/service"
)

type fakeReportRepo struct {
	created        []*models.Report
	rows           []models.ReportRow
	reviewAffected int64
	reviewStatus   models.ReportStatus
}

func (f *fakeReportRepo) Create(_ context.Context, report *models.Report) error {
	report.ID = "r1"
	f.created = append(f.created, report)
	return nil
}

func (f *fakeReportRepo) List(_ context.Context, _ scope.Predicate) ([]models.ReportRow, error) {
	return f.rows, nil
}

func (f *fakeReportRepo) UpdateReview(_ context.Context, _, _ string, status models.ReportStatus) (int64, error) {
	f.reviewStatus = status
	return f.reviewAffected, nil
}

func newReportTestContext(t *testing.T, method, path string, body string, claims *models.Claims) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if claims != nil {
		c.Set(middleware.ContextUserKey, claims)
	}
	return w, c
}

func newReportHandler(repo *fakeReportRepo) *ReportHandler {
	svc := service.NewReportService(repo, nil, nil)
	exports := service.NewExportService(svc, nil)
	return NewReportHandler(svc, exports)
}

func TestSubmitReportEndpoint(t *testing.T) {
	repo := &fakeReportRepo{}
	h := newReportHandler(repo)

	claims := &models.Claims{UserID: "lect-1", Role: models.RoleLecturer, Faculty: "ICT"}
	w, c := newReportTestContext(t, http.MethodPost, "/api/reports",
		`{"class_name":"Algo101","topic_taught":"Sorting","actual_students_present":28}`, claims)
	h.Submit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Report submitted successfully"}`, w.Body.String())
	require.Len(t, repo.created, 1)
	assert.Equal(t, "lect-1", repo.created[0].LecturerID)
	assert.Equal(t, models.ReportPending, repo.created[0].Status)
}

func TestSubmitReportRoleDenied(t *testing.T) {
	repo := &fakeReportRepo{}
	h := newReportHandler(repo)

	claims := &models.Claims{UserID: "s1", Role: models.RoleStudent, Faculty: "ICT"}
	w, c := newReportTestContext(t, http.MethodPost, "/api/reports",
		`{"class_name":"Algo101","topic_taught":"Sorting"}`, claims)
	h.Submit(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"only lecturers can submit reports"}`, w.Body.String())
	assert.Empty(t, repo.created)
}

func TestSubmitReportMissingClaims(t *testing.T) {
	h := newReportHandler(&fakeReportRepo{})

	w, c := newReportTestContext(t, http.MethodPost, "/api/reports",
		`{"class_name":"Algo101","topic_taught":"Sorting"}`, nil)
	h.Submit(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListReportsEndpoint(t *testing.T) {
	repo := &fakeReportRepo{rows: []models.ReportRow{
		{ID: "r1", ClassName: "Algo101", TopicTaught: "Sorting", Status: models.ReportPending, LecturerName: "Thabo"},
	}}
	h := newReportHandler(repo)

	claims := &models.Claims{UserID: "prl-1", Role: models.RoleProgramReviewLead, Faculty: "ICT"}
	w, c := newReportTestContext(t, http.MethodGet, "/api/reports", "", claims)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"class_name":"Algo101"`)
	assert.Contains(t, w.Body.String(), `"lecturer_name":"Thabo"`)
}

func TestFeedbackEndpointDefaultsToReviewed(t *testing.T) {
	repo := &fakeReportRepo{reviewAffected: 1}
	h := newReportHandler(repo)

	claims := &models.Claims{UserID: "prl-1", Role: models.RoleProgramReviewLead, Faculty: "ICT"}
	w, c := newReportTestContext(t, http.MethodPost, "/api/reports/r1/feedback",
		`{"feedback":"Well prepared"}`, claims)
	c.Params = gin.Params{{Key: "id", Value: "r1"}}
	h.Feedback(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Feedback submitted"}`, w.Body.String())
	assert.Equal(t, models.ReportReviewed, repo.reviewStatus)
}

func TestFeedbackEndpointUnknownReport(t *testing.T) {
	repo := &fakeReportRepo{reviewAffected: 0}
	h := newReportHandler(repo)

	claims := &models.Claims{UserID: "prl-1", Role: models.RoleProgramReviewLead, Faculty: "ICT"}
	w, c := newReportTestContext(t, http.MethodPost, "/api/reports/missing/feedback", `{}`, claims)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	h.Feedback(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"report not found"}`, w.Body.String())
}

func TestExportEndpointStreamsCSV(t *testing.T) {
	repo := &fakeReportRepo{rows: []models.ReportRow{
		{ID: "r1", ClassName: "Algo101", TopicTaught: "Sorting", ActualStudentsPresent: 28, Status: models.ReportPending, LecturerName: "Thabo"},
	}}
	h := newReportHandler(repo)

	claims := &models.Claims{UserID: "lect-1", Role: models.RoleLecturer, Faculty: "ICT"}
	w, c := newReportTestContext(t, http.MethodGet, "/api/reports/export?format=csv", "", claims)
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=")
	assert.Contains(t, w.Body.String(), "Algo101,Sorting,28,pending,,Thabo")
}

func TestExportEndpointRejectsUnknownFormat(t *testing.T) {
	h := newReportHandler(&fakeReportRepo{})

	claims := &models.Claims{UserID: "lect-1", Role: models.RoleLecturer, Faculty: "ICT"}
	w, c := newReportTestContext(t, http.MethodGet, "/api/reports/export?format=xlsx", "", claims)
	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"format must be csv or pdf"}`, w.Body.String())
}
