package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/ecovault/eco_finance_app/internal/core/ecoscore"
	"github.com/ecovault/eco_finance_app/internal/core/ingest"
	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
	"github.com/ecovault/eco_finance_app/internal/dto"
	"github.com/ecovault/eco_finance_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps CSV uploads at 5 MiB.
const maxUploadBytes = 5 << 20

// transactionHandler handles HTTP requests for scored transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers all transaction-related routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	txns := rg.Group("/transactions")
	{
		txns.POST("/upload", h.uploadCSV)
		txns.GET("", h.listTransactions)
	}
}

// uploadCSV godoc
// @Summary Upload a transaction CSV
// @Description Parses and eco-scores a CSV of transactions, persists the batch and returns the scored result. Accepts either a multipart "file" field or a raw text body.
// @Tags transactions
// @Accept  mpfd
// @Accept  plain
// @Produce  json
// @Param   file formData file false "CSV file (date, merchant, category, amount)"
// @Success 201 {object} dto.UploadBatchResponse
// @Failure 400 {object} ErrorResponse "Malformed CSV, invalid amount or empty batch"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/upload [post]
func (h *transactionHandler) uploadCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rawText, err := readUploadBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.transactionService.UploadCSV(c.Request.Context(), ownerID, rawText)
	if err != nil {
		h.respondIngestError(c, logger, err)
		return
	}

	logger.Info("Batch uploaded",
		slog.Int("transactions", len(result.Transactions)),
		slog.Int("overall_score", result.Summary.OverallScore),
	)
	c.JSON(http.StatusCreated, dto.ToUploadBatchResponse(result))
}

// respondIngestError maps pipeline errors to client responses. Parse and
// scoring failures carry enough detail for the caller to fix the file.
func (h *transactionHandler) respondIngestError(c *gin.Context, logger *slog.Logger, err error) {
	var parseErr *ingest.ParseError
	if errors.As(err, &parseErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": parseErr.Message, "line": parseErr.Line})
		return
	}

	var amountErr *ecoscore.InvalidAmountError
	if errors.As(err, &amountErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: amountErr.Error()})
		return
	}

	var emptyErr *ecoscore.EmptyBatchError
	if errors.As(err, &emptyErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: emptyErr.Error()})
		return
	}

	logger.Error("Failed to ingest batch", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process batch"})
}

// readUploadBody pulls the CSV text from a multipart "file" field when
// present, falling back to the raw request body.
func readUploadBody(c *gin.Context) (string, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return "", errors.New("failed to open uploaded file")
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		if err != nil {
			return "", errors.New("failed to read uploaded file")
		}
		return string(data), nil
	}

	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes))
	if err != nil {
		return "", errors.New("failed to read request body")
	}
	if len(data) == 0 {
		return "", errors.New("empty request body")
	}
	return string(data), nil
}

// listTransactions godoc
// @Summary List scored transactions
// @Description Retrieves a page of the caller's scored transactions, most recent upload first
// @Tags transactions
// @Produce  json
// @Param   limit query int false "Page size (default 50)"
// @Param   offset query int false "Offset (default 0)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters: " + err.Error()})
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), ownerID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	resp := dto.ListTransactionsResponse{Transactions: make([]dto.TransactionResponse, len(txns))}
	for i := range txns {
		resp.Transactions[i] = dto.ToTransactionResponse(&txns[i])
	}
	c.JSON(http.StatusOK, resp)
}
