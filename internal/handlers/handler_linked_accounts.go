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

// linkedAccountHandler manages bank connections and sync requests.
type linkedAccountHandler struct {
	bankSyncService portssvc.BankSyncSvcFacade
}

func newLinkedAccountHandler(bs portssvc.BankSyncSvcFacade) *linkedAccountHandler {
	return &linkedAccountHandler{
		bankSyncService: bs,
	}
}

// registerLinkedAccountRoutes registers the bank connection routes.
func registerLinkedAccountRoutes(rg *gin.RouterGroup, bankSyncService portssvc.BankSyncSvcFacade) {
	h := newLinkedAccountHandler(bankSyncService)

	accounts := rg.Group("/linked-accounts")
	{
		accounts.POST("", h.linkAccount)
		accounts.GET("", h.listAccounts)
		accounts.POST("/:id/sync", h.syncAccount)
	}
}

// linkAccount godoc
// @Summary Link a bank account
// @Description Registers a bank account connection through the aggregator
// @Tags linked-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.LinkAccountRequest true "Connection details"
// @Success 201 {object} dto.LinkedAccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /linked-accounts [post]
func (h *linkedAccountHandler) linkAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.LinkAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.bankSyncService.LinkAccount(c.Request.Context(), ownerID, req)
	if err != nil {
		logger.Error("Failed to link account", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to link account"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToLinkedAccountResponse(account))
}

// listAccounts godoc
// @Summary List linked accounts
// @Description Retrieves the caller's bank connections
// @Tags linked-accounts
// @Produce  json
// @Success 200 {object} dto.ListLinkedAccountsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /linked-accounts [get]
func (h *linkedAccountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	accounts, err := h.bankSyncService.ListAccounts(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to list linked accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list linked accounts"})
		return
	}

	resp := dto.ListLinkedAccountsResponse{Accounts: make([]dto.LinkedAccountResponse, len(accounts))}
	for i := range accounts {
		resp.Accounts[i] = dto.ToLinkedAccountResponse(&accounts[i])
	}
	c.JSON(http.StatusOK, resp)
}

// syncAccount godoc
// @Summary Sync a linked account
// @Description Pulls the account's transactions from the aggregator and scores them as one batch
// @Tags linked-accounts
// @Produce  json
// @Param   id path string true "Linked account ID"
// @Success 201 {object} dto.UploadBatchResponse
// @Failure 400 {object} ErrorResponse "Aggregator returned an unusable batch"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Account belongs to another user"
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Aggregator unreachable"
// @Security BearerAuth
// @Router /linked-accounts/{id}/sync [post]
func (h *linkedAccountHandler) syncAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.bankSyncService.SyncAccount(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Linked account not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		default:
			logger.Error("Failed to sync linked account", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to sync account"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUploadBatchResponse(result))
}
