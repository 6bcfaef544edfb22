package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/scope"
)

func TestCreateReportDefaultsIdentity(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	mock.ExpectExec("INSERT INTO reports").WillReturnResult(sqlmock.NewResult(1, 1))

	report := &models.Report{
		LecturerID:  "lect-1",
		ClassName:   "Algo101",
		TopicTaught: "Sorting",
		Status:      models.ReportPending,
	}
	err := repo.Create(context.Background(), report)
	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListReportsAppliesPredicate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	rows := sqlmock.NewRows([]string{"id", "class_name", "topic_taught", "actual_students_present", "status", "prl_feedback", "lecturer_name"}).
		AddRow("r1", "Algo101", "Sorting", 30, string(models.ReportPending), nil, "Thabo")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.lecturer_id = $1")).
		WithArgs("lect-1").
		WillReturnRows(rows)

	pred := scope.Predicate{Clause: "WHERE r.lecturer_id = $1", Args: []interface{}{"lect-1"}}
	reports, err := repo.List(context.Background(), pred)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Thabo", reports[0].LecturerName)
	assert.Nil(t, reports[0].PRLFeedback)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReviewReportsAffectedRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reports SET prl_feedback = $2, status = $3 WHERE id = $1")).
		WithArgs("r1", "Good session", models.ReportReviewed).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateReview(context.Background(), "r1", "Good session", models.ReportReviewed)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReviewUnknownID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reports SET prl_feedback = $2, status = $3 WHERE id = $1")).
		WithArgs("missing", "", models.ReportReviewed).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.UpdateReview(context.Background(), "missing", "", models.ReportReviewed)
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountReportsByFaculty(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE u.faculty = $1")).
		WithArgs("ICT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountByFaculty(context.Background(), "ICT")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
