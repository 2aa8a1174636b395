package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
	"github.com/ecovault/eco_finance_app/internal/dto"
	"github.com/ecovault/eco_finance_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// rewardHandler serves cashback rewards and the tier table.
type rewardHandler struct {
	rewardsService portssvc.RewardsSvcFacade
}

func newRewardHandler(rs portssvc.RewardsSvcFacade) *rewardHandler {
	return &rewardHandler{
		rewardsService: rs,
	}
}

// registerRewardRoutes registers the reward routes.
func registerRewardRoutes(rg *gin.RouterGroup, rewardsService portssvc.RewardsSvcFacade) {
	h := newRewardHandler(rewardsService)

	rewards := rg.Group("/rewards")
	{
		rewards.GET("", h.listRewards)
	}
}

// listRewards godoc
// @Summary List cashback rewards
// @Description Retrieves a page of the caller's cashback rewards plus the tier table
// @Tags rewards
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   offset query int false "Offset (default 0)"
// @Success 200 {object} dto.ListRewardsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rewards [get]
func (h *rewardHandler) listRewards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListRewardsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters: " + err.Error()})
		return
	}

	rewards, err := h.rewardsService.ListRewards(c.Request.Context(), ownerID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list rewards", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list rewards"})
		return
	}

	tiers := h.rewardsService.Tiers()
	resp := dto.ListRewardsResponse{
		Rewards: make([]dto.RewardResponse, len(rewards)),
		Tiers:   make([]dto.TierResponse, len(tiers)),
	}
	for i := range rewards {
		resp.Rewards[i] = dto.ToRewardResponse(&rewards[i])
	}
	for i, t := range tiers {
		resp.Tiers[i] = dto.ToTierResponse(t)
	}
	c.JSON(http.StatusOK, resp)
}
