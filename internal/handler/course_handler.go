package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"
	"github.com/campus-ops/faculty-reporting-api/pkg/response"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/service"
)

// CourseHandler serves course creation and listing.
type CourseHandler struct {
	service *service.CourseService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(svc *service.CourseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// Create godoc
// @Summary Add course
// @Description Create a course (program leaders only)
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body models.CreateCourseRequest true "Course payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}

	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "all fields are required"))
		return
	}

	if err := h.service.Create(c.Request.Context(), claims, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Course added successfully")
}

// List godoc
// @Summary List courses
// @Description List courses scoped to the caller's faculty
// @Tags Courses
// @Produce json
// @Success 200 {array} models.Course
// @Failure 401 {object} map[string]string
// @Router /api/courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}

	courses, err := h.service.List(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, courses)
}
