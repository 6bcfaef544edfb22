package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
)

type stubValidator struct {
	claims *models.Claims
	err    error
	token  string
}

func (s *stubValidator) ValidateToken(token string) (*models.Claims, error) {
	s.token = token
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func performJWT(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	JWT(validator)(c)
	return w, c
}

func TestJWTMissingHeader(t *testing.T) {
	w, c := performJWT(t, &stubValidator{}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"no token provided"}`, w.Body.String())
	assert.True(t, c.IsAborted())
}

func TestJWTMalformedHeader(t *testing.T) {
	w, c := performJWT(t, &stubValidator{}, "Token abc")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"invalid token"}`, w.Body.String())
	assert.True(t, c.IsAborted())
}

func TestJWTInvalidToken(t *testing.T) {
	validator := &stubValidator{err: appErrors.Clone(appErrors.ErrInvalidToken, "invalid token")}
	w, c := performJWT(t, validator, "Bearer bad-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "bad-token", validator.token)
	assert.True(t, c.IsAborted())
}

func TestJWTUnexpectedValidatorError(t *testing.T) {
	validator := &stubValidator{err: errors.New("boom")}
	w, _ := performJWT(t, validator, "Bearer token")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestJWTStoresClaims(t *testing.T) {
	claims := &models.Claims{UserID: "u1", Role: models.RoleLecturer, Faculty: "ICT"}
	validator := &stubValidator{claims: claims}
	w, c := performJWT(t, validator, "Bearer good-token")

	assert.Equal(t, http.StatusOK, w.Code)
	value, exists := c.Get(ContextUserKey)
	require.True(t, exists)
	assert.Equal(t, claims, value)
	assert.False(t, c.IsAborted())
}
