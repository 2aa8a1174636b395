package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RewardTier maps a range of overall sustainability scores to a cashback rate.
type RewardTier struct {
	Name         string          `json:"name"`
	MinScore     int             `json:"minScore"`
	CashbackRate decimal.Decimal `json:"cashbackRate"` // fraction, e.g. 0.02 for 2%
}

// CashbackReward is the cashback earned on the sustainable purchases of one
// batch, at the rate of the tier the batch's overall score falls into.
type CashbackReward struct {
	RewardID  string          `json:"rewardID"`
	OwnerID   int64           `json:"ownerID"`
	SummaryID string          `json:"summaryID"`
	Tier      string          `json:"tier"`
	Amount    decimal.Decimal `json:"amount"`
	EarnedAt  time.Time       `json:"earnedAt"`
}
