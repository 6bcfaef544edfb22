package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestFindByEmail(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "faculty", "created_at"}).
		AddRow("1", "Thabo", "thabo@example.com", "hash", string(models.RoleLecturer), "ICT", now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, role, faculty, created_at FROM users WHERE email = $1 LIMIT 1")).
		WithArgs("thabo@example.com").
		WillReturnRows(rows)

	user, err := repo.FindByEmail(context.Background(), "thabo@example.com")
	require.NoError(t, err)
	assert.Equal(t, "thabo@example.com", user.Email)
	assert.Equal(t, models.RoleLecturer, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsersWithRoleFilter(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "faculty", "created_at"}).
		AddRow("1", "Thabo", "thabo@example.com", "hash", string(models.RoleLecturer), "ICT", now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, role, faculty, created_at FROM users WHERE role = $1 ORDER BY created_at DESC")).
		WithArgs(models.RoleLecturer).
		WillReturnRows(rows)

	role := models.RoleLecturer
	users, err := repo.List(context.Background(), &role)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))

	user := &models.User{Name: "Thabo", Email: "thabo@example.com", PasswordHash: "hash", Role: models.RoleLecturer, Faculty: "ICT"}
	err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
