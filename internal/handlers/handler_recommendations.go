package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecovault/eco_finance_app/internal/apperrors"
	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
	"github.com/ecovault/eco_finance_app/internal/dto"
	"github.com/ecovault/eco_finance_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// recommendationHandler serves sustainable fund suggestions.
type recommendationHandler struct {
	recommendationService portssvc.RecommendationSvcFacade
}

func newRecommendationHandler(rs portssvc.RecommendationSvcFacade) *recommendationHandler {
	return &recommendationHandler{
		recommendationService: rs,
	}
}

// registerRecommendationRoutes registers the recommendation routes.
func registerRecommendationRoutes(rg *gin.RouterGroup, recommendationService portssvc.RecommendationSvcFacade) {
	h := newRecommendationHandler(recommendationService)

	recs := rg.Group("/recommendations")
	{
		recs.GET("", h.listRecommendations)
	}
}

// listRecommendations godoc
// @Summary List fund recommendations
// @Description Retrieves sustainable investment funds unlocked by the caller's latest overall score
// @Tags recommendations
// @Produce  json
// @Success 200 {object} dto.ListRecommendationsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No batch uploaded yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recommendations [get]
func (h *recommendationHandler) listRecommendations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	score, funds, err := h.recommendationService.ListRecommendations(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No batches uploaded yet"})
			return
		}
		logger.Error("Failed to list recommendations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list recommendations"})
		return
	}

	resp := dto.ListRecommendationsResponse{
		OverallScore:    score,
		Recommendations: make([]dto.RecommendationResponse, len(funds)),
	}
	for i, f := range funds {
		resp.Recommendations[i] = dto.ToRecommendationResponse(f)
	}
	c.JSON(http.StatusOK, resp)
}
