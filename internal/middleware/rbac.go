package middleware

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"
	"github.com/campus-ops/faculty-reporting-api/pkg/response"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
)

// RequireRoles gates a route to the listed roles. The denial message names
// the required role so callers know what was missing.
func RequireRoles(message string, allowed ...models.Role) gin.HandlerFunc {
	allowedRoles := make(map[models.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedRoles[role] = struct{}{}
	}

	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthenticated)
			c.Abort()
			return
		}
		claims := claimsValue.(*models.Claims)

		if _, ok := allowedRoles[claims.Role]; !ok {
			response.Error(c, appErrors.Clone(appErrors.ErrRoleMismatch, message))
			c.Abort()
			return
		}

		c.Next()
	}
}
