package services

import (
	"context"
	"fmt"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"github.com/ecovault/eco_finance_app/internal/core/ecoscore"
	portsrepo "github.com/ecovault/eco_finance_app/internal/core/ports/repositories"
	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// rewardTiers maps overall batch scores to cashback rates, scanned top down,
// first tier whose minimum the score clears wins.
var rewardTiers = []domain.RewardTier{
	{Name: "evergreen", MinScore: 85, CashbackRate: decimal.NewFromFloat(0.03)},
	{Name: "sprout", MinScore: 75, CashbackRate: decimal.NewFromFloat(0.02)},
	{Name: "seedling", MinScore: 65, CashbackRate: decimal.NewFromFloat(0.01)},
	{Name: "base", MinScore: 0, CashbackRate: decimal.NewFromFloat(0.005)},
}

type rewardsService struct {
	rewardRepo portsrepo.RewardRepositoryFacade
}

// NewRewardsService creates the cashback rewards service.
func NewRewardsService(rewardRepo portsrepo.RewardRepositoryFacade) portssvc.RewardsSvcFacade {
	return &rewardsService{rewardRepo: rewardRepo}
}

var _ portssvc.RewardsSvcFacade = (*rewardsService)(nil)

func (s *rewardsService) AwardForBatch(ctx context.Context, result *ecoscore.Result) (*domain.CashbackReward, error) {
	tier := TierForScore(result.Summary.OverallScore)

	// Cashback applies to sustainable purchases only; refunds and negative
	// rows never earn.
	base := decimal.Zero
	for _, txn := range result.Transactions {
		if txn.EcoScore >= ecoscore.SustainableThreshold && txn.Amount.IsPositive() {
			base = base.Add(txn.Amount)
		}
	}
	if base.IsZero() {
		return nil, nil
	}

	reward := domain.CashbackReward{
		RewardID:  uuid.NewString(),
		OwnerID:   result.Summary.OwnerID,
		SummaryID: result.Summary.SummaryID,
		Tier:      tier.Name,
		Amount:    base.Mul(tier.CashbackRate).Round(2),
		EarnedAt:  result.Summary.ComputedAt,
	}
	if err := s.rewardRepo.SaveReward(ctx, reward); err != nil {
		return nil, fmt.Errorf("failed to save reward: %w", err)
	}
	return &reward, nil
}

func (s *rewardsService) ListRewards(ctx context.Context, ownerID int64, limit, offset int) ([]domain.CashbackReward, error) {
	rewards, err := s.rewardRepo.FindRewardsByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	return rewards, nil
}

func (s *rewardsService) Tiers() []domain.RewardTier {
	tiers := make([]domain.RewardTier, len(rewardTiers))
	copy(tiers, rewardTiers)
	return tiers
}

// TierForScore picks the cashback tier for an overall batch score.
func TierForScore(score int) domain.RewardTier {
	for _, tier := range rewardTiers {
		if score >= tier.MinScore {
			return tier
		}
	}
	return rewardTiers[len(rewardTiers)-1]
}
