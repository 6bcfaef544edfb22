package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"
	"github.com/campus-ops/faculty-reporting-api/pkg/response"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/service"
)

// ClassHandler serves class creation and the lecturer's class listing.
type ClassHandler struct {
	service *service.ClassService
}

// NewClassHandler creates a new class handler.
func NewClassHandler(svc *service.ClassService) *ClassHandler {
	return &ClassHandler{service: svc}
}

// Create godoc
// @Summary Add class
// @Description Create a class under a course (program leaders only)
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body models.CreateClassRequest true "Class payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}

	var req models.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "course_id, name, and lecturer_id are required"))
		return
	}

	detail, err := h.service.Create(c.Request.Context(), claims, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"message": "Class created successfully", "class": detail})
}

// MyClasses godoc
// @Summary List my classes
// @Description List classes assigned to the calling lecturer
// @Tags Classes
// @Produce json
// @Success 200 {array} models.ClassDetail
// @Failure 403 {object} map[string]string
// @Router /api/my-classes [get]
func (h *ClassHandler) MyClasses(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}

	classes, err := h.service.MyClasses(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, classes)
}
