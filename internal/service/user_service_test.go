package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
)

type mockUserListRepo struct {
	users    []models.User
	lastRole *models.Role
}

func (m *mockUserListRepo) List(_ context.Context, role *models.Role) ([]models.User, error) {
	m.lastRole = role
	return m.users, nil
}

func TestListUsersUnrestricted(t *testing.T) {
	repo := &mockUserListRepo{users: []models.User{{ID: "u1", Name: "Thabo"}}}
	svc := NewUserService(repo, nil)

	users, err := svc.List(context.Background(), &models.Claims{UserID: "s1", Role: models.RoleStudent, Faculty: "ICT"}, nil)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Nil(t, repo.lastRole)
}

func TestListUsersWithRoleFilterPassed(t *testing.T) {
	repo := &mockUserListRepo{}
	svc := NewUserService(repo, nil)

	role := models.RoleLecturer
	_, err := svc.List(context.Background(), lecturerClaims(), &role)
	require.NoError(t, err)
	require.NotNil(t, repo.lastRole)
	assert.Equal(t, models.RoleLecturer, *repo.lastRole)
}

func TestListUsersRejectsUnknownFilter(t *testing.T) {
	repo := &mockUserListRepo{}
	svc := NewUserService(repo, nil)

	bogus := models.Role("janitor")
	_, err := svc.List(context.Background(), lecturerClaims(), &bogus)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}
