package handler

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"
	"github.com/campus-ops/faculty-reporting-api/pkg/response"

	"github.com/campus-ops/faculty-reporting-api/internal/service"
)

// FacultyHandler serves the faculty overview endpoint.
type FacultyHandler struct {
	service *service.FacultyService
}

// NewFacultyHandler creates a new faculty handler.
func NewFacultyHandler(svc *service.FacultyService) *FacultyHandler {
	return &FacultyHandler{service: svc}
}

// Overview godoc
// @Summary Faculty overview
// @Description Course, class and report counts for one faculty
// @Tags Faculty
// @Produce json
// @Param facultyName path string true "Faculty name"
// @Success 200 {object} models.FacultyOverview
// @Failure 401 {object} map[string]string
// @Router /api/faculty/{facultyName} [get]
func (h *FacultyHandler) Overview(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}

	overview, err := h.service.Overview(c.Request.Context(), c.Param("facultyName"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, overview)
}
