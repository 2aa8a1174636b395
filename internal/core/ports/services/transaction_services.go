package services

import (
	"context"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"github.com/ecovault/eco_finance_app/internal/core/ecoscore"
)

// TransactionIngestSvc runs the upload pipeline: parse, score, persist.
type TransactionIngestSvc interface {
	// UploadCSV parses raw delimited text, scores every row for ownerID and
	// persists the whole batch atomically. The parse and scoring error types
	// (ParseError, InvalidAmountError, EmptyBatchError) surface unwrapped so
	// handlers can map them to client errors.
	UploadCSV(ctx context.Context, ownerID int64, rawText string) (*ecoscore.Result, error)

	// IngestRows runs the same pipeline over already-parsed rows; the bank
	// sync feature feeds aggregator transactions through here.
	IngestRows(ctx context.Context, ownerID int64, rows []domain.RawRow) (*ecoscore.Result, error)
}

// TransactionReaderSvc defines read operations over persisted batches.
type TransactionReaderSvc interface {
	// ListTransactions retrieves a page of the owner's scored transactions.
	ListTransactions(ctx context.Context, ownerID int64, limit, offset int) ([]domain.ScoredTransaction, error)

	// GetLatestSummary retrieves the owner's most recent summary.
	GetLatestSummary(ctx context.Context, ownerID int64) (*domain.SustainabilitySummary, error)

	// ListSummaries retrieves a page of the owner's summary history, newest first.
	ListSummaries(ctx context.Context, ownerID int64, limit, offset int) ([]domain.SustainabilitySummary, error)

	// ListLatestBreakdowns retrieves the breakdowns of the most recent batch.
	ListLatestBreakdowns(ctx context.Context, ownerID int64) ([]domain.CategoryBreakdown, error)
}

// TransactionSvcFacade combines ingestion and read operations.
type TransactionSvcFacade interface {
	TransactionIngestSvc
	TransactionReaderSvc
}
