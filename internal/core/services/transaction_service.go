package services

import (
	"context"
	"fmt"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"github.com/ecovault/eco_finance_app/internal/core/ecoscore"
	"github.com/ecovault/eco_finance_app/internal/core/ingest"
	portsrepo "github.com/ecovault/eco_finance_app/internal/core/ports/repositories"
	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// transactionService ties the upload pipeline together: parse, score,
// persist, award cashback. The scoring engine itself stays pure; all ids and
// persistence live here.
type transactionService struct {
	batchRepo portsrepo.EcoBatchRepositoryFacade
	engine    *ecoscore.Engine
	rewards   portssvc.RewardsAwarderSvc
}

// TransactionServiceOption configures the transaction service.
type TransactionServiceOption func(*transactionService)

// WithEngine overrides the scoring engine (used by tests to pin the clock).
func WithEngine(engine *ecoscore.Engine) TransactionServiceOption {
	return func(s *transactionService) { s.engine = engine }
}

// WithRewardsAwarder wires the cashback awarder invoked after each batch.
func WithRewardsAwarder(rewards portssvc.RewardsAwarderSvc) TransactionServiceOption {
	return func(s *transactionService) { s.rewards = rewards }
}

// NewTransactionService creates the transaction service.
func NewTransactionService(batchRepo portsrepo.EcoBatchRepositoryFacade, opts ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	s := &transactionService{
		batchRepo: batchRepo,
		engine:    ecoscore.NewEngine(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) UploadCSV(ctx context.Context, ownerID int64, rawText string) (*ecoscore.Result, error) {
	rows, err := ingest.Parse(rawText)
	if err != nil {
		return nil, err
	}
	return s.IngestRows(ctx, ownerID, rows)
}

func (s *transactionService) IngestRows(ctx context.Context, ownerID int64, rows []domain.RawRow) (*ecoscore.Result, error) {
	result, err := s.engine.Process(rows, ownerID)
	if err != nil {
		return nil, err
	}

	// The engine leaves ids empty; assign them before the batch is persisted.
	result.Summary.SummaryID = uuid.NewString()
	for i := range result.Transactions {
		result.Transactions[i].TransactionID = uuid.NewString()
		result.Transactions[i].CreatedAt = result.Summary.ComputedAt
		result.Transactions[i].LastUpdatedAt = result.Summary.ComputedAt
	}
	for i := range result.Breakdowns {
		result.Breakdowns[i].BreakdownID = uuid.NewString()
	}

	if err := s.batchRepo.SaveBatch(ctx, result.Summary, result.Transactions, result.Breakdowns); err != nil {
		return nil, fmt.Errorf("failed to persist batch: %w", err)
	}

	if s.rewards != nil {
		if _, err := s.rewards.AwardForBatch(ctx, result); err != nil {
			return nil, fmt.Errorf("failed to award cashback for batch: %w", err)
		}
	}

	return result, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, ownerID int64, limit, offset int) ([]domain.ScoredTransaction, error) {
	txns, err := s.batchRepo.FindTransactionsByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *transactionService) GetLatestSummary(ctx context.Context, ownerID int64) (*domain.SustainabilitySummary, error) {
	summary, err := s.batchRepo.FindLatestSummary(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *transactionService) ListSummaries(ctx context.Context, ownerID int64, limit, offset int) ([]domain.SustainabilitySummary, error) {
	summaries, err := s.batchRepo.FindSummaries(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	return summaries, nil
}

func (s *transactionService) ListLatestBreakdowns(ctx context.Context, ownerID int64) ([]domain.CategoryBreakdown, error) {
	summary, err := s.batchRepo.FindLatestSummary(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	breakdowns, err := s.batchRepo.FindBreakdownsForSummary(ctx, summary.SummaryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breakdowns: %w", err)
	}
	return breakdowns, nil
}
