package repositories

import (
	"context"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
)

// RewardWriter defines write operations for cashback rewards.
type RewardWriter interface {
	// SaveReward persists a cashback reward earned for one batch.
	SaveReward(ctx context.Context, reward domain.CashbackReward) error
}

// RewardReader defines read operations for cashback rewards.
type RewardReader interface {
	// FindRewardsByOwner retrieves an owner's rewards, newest first.
	FindRewardsByOwner(ctx context.Context, ownerID int64, limit int, offset int) ([]domain.CashbackReward, error)
}

// RewardRepositoryFacade combines reward read and write operations.
type RewardRepositoryFacade interface {
	RewardWriter
	RewardReader
}
