package repositories

import (
	"context"
	"time"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
)

// LinkedAccountReader defines read operations for bank connections.
type LinkedAccountReader interface {
	// FindLinkedAccountByID retrieves a specific connection.
	FindLinkedAccountByID(ctx context.Context, accountID string) (*domain.LinkedAccount, error)

	// FindLinkedAccountsByOwner retrieves all of an owner's connections.
	FindLinkedAccountsByOwner(ctx context.Context, ownerID int64) ([]domain.LinkedAccount, error)
}

// LinkedAccountWriter defines write operations for bank connections.
type LinkedAccountWriter interface {
	// SaveLinkedAccount persists a new connection.
	SaveLinkedAccount(ctx context.Context, account domain.LinkedAccount) error

	// UpdateLastSynced records a successful sync time.
	UpdateLastSynced(ctx context.Context, accountID string, syncedAt time.Time) error
}

// LinkedAccountRepositoryFacade combines connection read and write operations.
type LinkedAccountRepositoryFacade interface {
	LinkedAccountReader
	LinkedAccountWriter
}
