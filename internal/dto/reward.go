package dto

import (
	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RewardResponse is the public representation of a cashback reward.
type RewardResponse struct {
	RewardID string          `json:"rewardID"`
	Tier     string          `json:"tier"`
	Amount   decimal.Decimal `json:"amount"`
	EarnedAt string          `json:"earnedAt"`
}

// TierResponse describes one cashback tier.
type TierResponse struct {
	Name         string          `json:"name"`
	MinScore     int             `json:"minScore"`
	CashbackRate decimal.Decimal `json:"cashbackRate"`
}

// ListRewardsResponse wraps a page of rewards plus the tier table.
type ListRewardsResponse struct {
	Rewards []RewardResponse `json:"rewards"`
	Tiers   []TierResponse   `json:"tiers"`
}

// ListRewardsParams carries pagination for reward listing.
type ListRewardsParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ToRewardResponse converts a domain reward to its public form.
func ToRewardResponse(r *domain.CashbackReward) RewardResponse {
	return RewardResponse{
		RewardID: r.RewardID,
		Tier:     r.Tier,
		Amount:   r.Amount,
		EarnedAt: r.EarnedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToTierResponse converts a domain tier to its public form.
func ToTierResponse(t domain.RewardTier) TierResponse {
	return TierResponse{
		Name:         t.Name,
		MinScore:     t.MinScore,
		CashbackRate: t.CashbackRate,
	}
}
