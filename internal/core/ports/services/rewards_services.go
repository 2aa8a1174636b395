package services

import (
	"context"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"github.com/ecovault/eco_finance_app/internal/core/ecoscore"
)

// RewardsAwarderSvc grants cashback off a freshly scored batch.
type RewardsAwarderSvc interface {
	// AwardForBatch computes and persists the cashback earned by one batch:
	// the tier is picked from the batch's overall score and its rate applies
	// to the batch's sustainable purchases only. Returns nil without error
	// when nothing qualifies.
	AwardForBatch(ctx context.Context, result *ecoscore.Result) (*domain.CashbackReward, error)
}

// RewardsReaderSvc defines read operations for rewards.
type RewardsReaderSvc interface {
	// ListRewards retrieves a page of the owner's rewards.
	ListRewards(ctx context.Context, ownerID int64, limit, offset int) ([]domain.CashbackReward, error)

	// Tiers returns the cashback tier table, highest tier first.
	Tiers() []domain.RewardTier
}

// RewardsSvcFacade combines reward operations.
type RewardsSvcFacade interface {
	RewardsAwarderSvc
	RewardsReaderSvc
}
