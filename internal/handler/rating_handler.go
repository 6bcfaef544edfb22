package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"
	"github.com/campus-ops/faculty-reporting-api/pkg/response"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
	"github.com/campus-ops/faculty-reporting-api/internal/service"
)

// RatingHandler serves lecturer rating endpoints.
type RatingHandler struct {
	service *service.RatingService
}

// NewRatingHandler creates a new rating handler.
func NewRatingHandler(svc *service.RatingService) *RatingHandler {
	return &RatingHandler{service: svc}
}

// Create godoc
// @Summary Submit rating
// @Description Rate a lecturer on a module, score 1-5
// @Tags Ratings
// @Accept json
// @Produce json
// @Param payload body models.CreateRatingRequest true "Rating payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/ratings [post]
func (h *RatingHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}

	var req models.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "target_id, module and a score from 1 to 5 are required"))
		return
	}

	if err := h.service.Create(c.Request.Context(), claims, req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Rating submitted successfully")
}

// ListByTarget godoc
// @Summary List ratings for a lecturer
// @Description List ratings recorded for the given lecturer
// @Tags Ratings
// @Produce json
// @Param id path string true "Target lecturer ID"
// @Success 200 {array} models.RatingRow
// @Failure 401 {object} map[string]string
// @Router /api/ratings/target/{id} [get]
func (h *RatingHandler) ListByTarget(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthenticated)
		return
	}

	rows, err := h.service.ListByTarget(c.Request.Context(), claims, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, rows)
}
