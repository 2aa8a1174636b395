package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SustainabilitySummary is the aggregate produced for one uploaded batch.
// Each upload yields an independent snapshot; summaries are never merged
// across batches.
type SustainabilitySummary struct {
	SummaryID          string          `json:"summaryID"`
	OwnerID            int64           `json:"ownerID"`
	OverallScore       int             `json:"overallScore"`
	CarbonFootprintKg  decimal.Decimal `json:"carbonFootprintKg"`
	SustainablePercent int             `json:"sustainablePercent"`
	WaterUsageLiters   decimal.Decimal `json:"waterUsageLiters"`
	ComputedAt         time.Time       `json:"computedAt"`
}

// CategoryBreakdown aggregates one batch's transactions for a single
// lower-cased category label.
type CategoryBreakdown struct {
	BreakdownID  string          `json:"breakdownID"`
	OwnerID      int64           `json:"ownerID"`
	Category     string          `json:"category"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	AverageScore int             `json:"averageScore"`
}
