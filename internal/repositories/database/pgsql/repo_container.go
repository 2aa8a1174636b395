package pgsql

import (
	portsrepo "github.com/ecovault/eco_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository over a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(pool),
		EcoBatchRepo:      newPgxEcoBatchRepository(pool),
		LinkedAccountRepo: newPgxLinkedAccountRepository(pool),
		RewardRepo:        newPgxRewardRepository(pool),
	}
}
