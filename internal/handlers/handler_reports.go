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

// reportHandler serves the sustainability summary and category breakdowns.
type reportHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newReportHandler(ts portssvc.TransactionSvcFacade) *reportHandler {
	return &reportHandler{
		transactionService: ts,
	}
}

// registerReportRoutes registers the reporting routes.
func registerReportRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newReportHandler(transactionService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getLatestSummary)
		reports.GET("/summaries", h.listSummaries)
		reports.GET("/breakdowns", h.listLatestBreakdowns)
	}
}

// getLatestSummary godoc
// @Summary Get the latest sustainability summary
// @Description Retrieves the summary computed for the caller's most recent batch
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No batch uploaded yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportHandler) getLatestSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.transactionService.GetLatestSummary(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No batches uploaded yet"})
			return
		}
		logger.Error("Failed to retrieve summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// listSummaries godoc
// @Summary List summary history
// @Description Retrieves a page of the caller's sustainability summaries, newest first
// @Tags reports
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   offset query int false "Offset into the history"
// @Success 200 {object} dto.ListSummariesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summaries [get]
func (h *reportHandler) listSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListSummariesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	summaries, err := h.transactionService.ListSummaries(c.Request.Context(), ownerID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list summaries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list summaries"})
		return
	}

	resp := dto.ListSummariesResponse{Summaries: make([]dto.SummaryResponse, len(summaries))}
	for i := range summaries {
		resp.Summaries[i] = dto.ToSummaryResponse(&summaries[i])
	}
	c.JSON(http.StatusOK, resp)
}

// listLatestBreakdowns godoc
// @Summary List the latest category breakdowns
// @Description Retrieves the per-category totals and average scores of the caller's most recent batch
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.ListBreakdownsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No batch uploaded yet"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/breakdowns [get]
func (h *reportHandler) listLatestBreakdowns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	breakdowns, err := h.transactionService.ListLatestBreakdowns(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No batches uploaded yet"})
			return
		}
		logger.Error("Failed to retrieve breakdowns", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve breakdowns"})
		return
	}

	resp := dto.ListBreakdownsResponse{Breakdowns: make([]dto.BreakdownResponse, len(breakdowns))}
	for i := range breakdowns {
		resp.Breakdowns[i] = dto.ToBreakdownResponse(&breakdowns[i])
	}
	c.JSON(http.StatusOK, resp)
}
