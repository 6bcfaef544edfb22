package handler

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"
	"github.com/campus-ops/faculty-reporting-api/pkg/response"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/service"
)

// UserHandler serves the user directory.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// List godoc
// @Summary List users
// @Description List all users, optionally narrowed to one role
// @Tags Users
// @Produce json
// @Param role query string false "Role filter"
// @Success 200 {array} models.User
// @Failure 401 {object} map[string]string
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}

	var roleFilter *models.Role
	if role := c.Query("role"); role != "" {
		r := models.Role(role)
		roleFilter = &r
	}

	users, err := h.service.List(c.Request.Context(), claims, roleFilter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, users)
}
