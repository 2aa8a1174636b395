package dto

import (
	"github.com/ecovault/eco_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryResponse is the public representation of a sustainability summary.
type SummaryResponse struct {
	SummaryID          string          `json:"summaryID"`
	OverallScore       int             `json:"overallScore"`
	CarbonFootprintKg  decimal.Decimal `json:"carbonFootprintKg"`
	SustainablePercent int             `json:"sustainablePercent"`
	WaterUsageLiters   decimal.Decimal `json:"waterUsageLiters"`
	ComputedAt         string          `json:"computedAt"`
}

// BreakdownResponse is the public representation of a category breakdown.
type BreakdownResponse struct {
	Category     string          `json:"category"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	AverageScore int             `json:"averageScore"`
}

// ListBreakdownsResponse wraps the breakdowns of one batch.
type ListBreakdownsResponse struct {
	Breakdowns []BreakdownResponse `json:"breakdowns"`
}

// ListSummariesParams carries pagination for the summary history.
type ListSummariesParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ListSummariesResponse wraps a page of the owner's summary history.
type ListSummariesResponse struct {
	Summaries []SummaryResponse `json:"summaries"`
}

// ToSummaryResponse converts a domain summary to its public form.
func ToSummaryResponse(s *domain.SustainabilitySummary) SummaryResponse {
	return SummaryResponse{
		SummaryID:          s.SummaryID,
		OverallScore:       s.OverallScore,
		CarbonFootprintKg:  s.CarbonFootprintKg,
		SustainablePercent: s.SustainablePercent,
		WaterUsageLiters:   s.WaterUsageLiters,
		ComputedAt:         s.ComputedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToBreakdownResponse converts a domain breakdown to its public form.
func ToBreakdownResponse(b *domain.CategoryBreakdown) BreakdownResponse {
	return BreakdownResponse{
		Category:     b.Category,
		TotalAmount:  b.TotalAmount,
		AverageScore: b.AverageScore,
	}
}
