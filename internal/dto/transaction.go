package dto

import (
	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"github.com/ecovault/eco_finance_app/internal/core/ecoscore"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams carries pagination for transaction listing.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// TransactionResponse is the public representation of a scored transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Date            string          `json:"date"`
	Merchant        string          `json:"merchant"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	EcoScore        int             `json:"ecoScore"`
	HasAlternatives bool            `json:"hasAlternatives"`
}

// UploadBatchResponse is returned after a successful CSV upload: every scored
// transaction plus the batch's summary and per-category breakdowns.
type UploadBatchResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      SummaryResponse       `json:"summary"`
	Breakdowns   []BreakdownResponse   `json:"breakdowns"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain transaction to its public form.
func ToTransactionResponse(t *domain.ScoredTransaction) TransactionResponse {
	date := ""
	if !t.Date.IsZero() {
		date = t.Date.Format("2006-01-02")
	}
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Date:            date,
		Merchant:        t.Merchant,
		Category:        t.Category,
		Amount:          t.Amount,
		EcoScore:        t.EcoScore,
		HasAlternatives: t.HasAlternatives,
	}
}

// ToUploadBatchResponse converts a full scoring result to the upload response.
func ToUploadBatchResponse(result *ecoscore.Result) UploadBatchResponse {
	resp := UploadBatchResponse{
		Transactions: make([]TransactionResponse, len(result.Transactions)),
		Summary:      ToSummaryResponse(&result.Summary),
		Breakdowns:   make([]BreakdownResponse, len(result.Breakdowns)),
	}
	for i := range result.Transactions {
		resp.Transactions[i] = ToTransactionResponse(&result.Transactions[i])
	}
	for i := range result.Breakdowns {
		resp.Breakdowns[i] = ToBreakdownResponse(&result.Breakdowns[i])
	}
	return resp
}
