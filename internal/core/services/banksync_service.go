package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ecovault/eco_finance_app/internal/apperrors"
	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"github.com/ecovault/eco_finance_app/internal/core/ecoscore"
	portsrepo "github.com/ecovault/eco_finance_app/internal/core/ports/repositories"
	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
	"github.com/ecovault/eco_finance_app/internal/dto"
	"github.com/google/uuid"
)

// bankSyncService manages aggregator connections and feeds pulled
// transactions through the same pipeline as CSV uploads.
type bankSyncService struct {
	accountRepo portsrepo.LinkedAccountRepositoryFacade
	fetcher     portssvc.BankTransactionFetcher
	ingester    portssvc.TransactionIngestSvc
}

// NewBankSyncService creates the bank sync service.
func NewBankSyncService(
	accountRepo portsrepo.LinkedAccountRepositoryFacade,
	fetcher portssvc.BankTransactionFetcher,
	ingester portssvc.TransactionIngestSvc,
) portssvc.BankSyncSvcFacade {
	return &bankSyncService{
		accountRepo: accountRepo,
		fetcher:     fetcher,
		ingester:    ingester,
	}
}

var _ portssvc.BankSyncSvcFacade = (*bankSyncService)(nil)

func (s *bankSyncService) LinkAccount(ctx context.Context, ownerID int64, req dto.LinkAccountRequest) (*domain.LinkedAccount, error) {
	now := time.Now()
	account := domain.LinkedAccount{
		AccountID:   uuid.NewString(),
		OwnerID:     ownerID,
		ExternalID:  req.ExternalID,
		Institution: req.Institution,
		Mask:        req.Mask,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.accountRepo.SaveLinkedAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to link account: %w", err)
	}
	return &account, nil
}

func (s *bankSyncService) ListAccounts(ctx context.Context, ownerID int64) ([]domain.LinkedAccount, error) {
	accounts, err := s.accountRepo.FindLinkedAccountsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked accounts: %w", err)
	}
	return accounts, nil
}

func (s *bankSyncService) SyncAccount(ctx context.Context, ownerID int64, accountID string) (*ecoscore.Result, error) {
	account, err := s.accountRepo.FindLinkedAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.OwnerID != ownerID {
		return nil, apperrors.ErrForbidden
	}

	rows, err := s.fetcher.FetchTransactions(ctx, account.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions from aggregator: %w", err)
	}

	result, err := s.ingester.IngestRows(ctx, ownerID, rows)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.UpdateLastSynced(ctx, accountID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to record sync time: %w", err)
	}
	return result, nil
}
