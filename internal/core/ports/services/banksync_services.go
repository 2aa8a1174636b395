package services

import (
	"context"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"github.com/ecovault/eco_finance_app/internal/core/ecoscore"
	"github.com/ecovault/eco_finance_app/internal/dto"
)

// BankTransactionFetcher is the boundary to the banking aggregator. The HTTP
// client in internal/clients/banking implements it.
type BankTransactionFetcher interface {
	// FetchTransactions pulls the raw transactions of one external account.
	FetchTransactions(ctx context.Context, externalID string) ([]domain.RawRow, error)
}

// BankSyncSvcFacade manages bank connections and pulls their transactions
// through the scoring pipeline.
type BankSyncSvcFacade interface {
	// LinkAccount registers a new aggregator connection for the owner.
	LinkAccount(ctx context.Context, ownerID int64, req dto.LinkAccountRequest) (*domain.LinkedAccount, error)

	// ListAccounts retrieves the owner's connections.
	ListAccounts(ctx context.Context, ownerID int64) ([]domain.LinkedAccount, error)

	// SyncAccount fetches an account's transactions from the aggregator and
	// ingests them as one batch.
	SyncAccount(ctx context.Context, ownerID int64, accountID string) (*ecoscore.Result, error)
}
