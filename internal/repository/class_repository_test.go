package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/scope"
)

func TestCreateClass(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectExec("INSERT INTO classes").WillReturnResult(sqlmock.NewResult(1, 1))

	scheduled := "Mon 09:00"
	venue := "Lab 3"
	class := &models.Class{
		CourseID:        "course-1",
		Name:            "Algo101 Group A",
		ScheduledTime:   &scheduled,
		Venue:           &venue,
		TotalRegistered: 40,
		LecturerID:      "lect-1",
	}
	err := repo.Create(context.Background(), class)
	require.NoError(t, err)
	assert.NotEmpty(t, class.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindClassDetailHydratesCourseAndLecturer(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "scheduled_time", "venue", "total_registered", "course_name", "course_code", "lecturer_id", "lecturer_name"}).
		AddRow("cl1", "Algo101 Group A", "Mon 09:00", "Lab 3", 40, "Algorithms", "CS101", "lect-1", "Thabo")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE cl.id = $1")).
		WithArgs("cl1").
		WillReturnRows(rows)

	detail, err := repo.FindDetail(context.Background(), "cl1")
	require.NoError(t, err)
	assert.Equal(t, "CS101", detail.CourseCode)
	require.NotNil(t, detail.LecturerName)
	assert.Equal(t, "Thabo", *detail.LecturerName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindClassDetailUnknownID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE cl.id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindDetail(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAssignedAppliesPredicate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "scheduled_time", "venue", "total_registered", "course_name", "course_code"}).
		AddRow("cl1", "Algo101 Group A", "Mon 09:00", "Lab 3", 40, "Algorithms", "CS101")
	mock.ExpectQuery(regexp.QuoteMeta("WHERE cl.assigned_lecturer_id = $1")).
		WithArgs("lect-1").
		WillReturnRows(rows)

	pred := scope.Predicate{Clause: "WHERE cl.assigned_lecturer_id = $1", Args: []interface{}{"lect-1"}}
	classes, err := repo.ListAssigned(context.Background(), pred)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "Algorithms", classes[0].CourseName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
