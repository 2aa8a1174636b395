package repositories

import (
	"context"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
)

// EcoBatchWriter persists the complete output of one scored batch.
type EcoBatchWriter interface {
	// SaveBatch appends one batch atomically: all transactions, the summary
	// and the breakdowns land together or not at all. Breakdowns are stored
	// under the summary's id so the latest batch can be retrieved later.
	SaveBatch(ctx context.Context, summary domain.SustainabilitySummary, txns []domain.ScoredTransaction, breakdowns []domain.CategoryBreakdown) error
}

// EcoBatchReader defines read operations over persisted batches.
type EcoBatchReader interface {
	// FindTransactionsByOwner retrieves a paginated list of an owner's scored
	// transactions, most recent upload first.
	FindTransactionsByOwner(ctx context.Context, ownerID int64, limit int, offset int) ([]domain.ScoredTransaction, error)

	// FindLatestSummary retrieves the most recently computed summary.
	FindLatestSummary(ctx context.Context, ownerID int64) (*domain.SustainabilitySummary, error)

	// FindSummaries retrieves an owner's summaries, newest first.
	FindSummaries(ctx context.Context, ownerID int64, limit int, offset int) ([]domain.SustainabilitySummary, error)

	// FindBreakdownsForSummary retrieves the breakdowns stored with a summary.
	FindBreakdownsForSummary(ctx context.Context, summaryID string) ([]domain.CategoryBreakdown, error)
}

// EcoBatchRepositoryFacade combines batch read and write operations.
type EcoBatchRepositoryFacade interface {
	EcoBatchWriter
	EcoBatchReader
}
