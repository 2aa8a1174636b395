package services

import (
	"context"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
	portsrepo "github.com/ecovault/eco_finance_app/internal/core/ports/repositories"
	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
)

// fundCatalog is the static table of sustainable investment products. Funds
// with a higher MinScore are reserved for greener portfolios.
var fundCatalog = []domain.FundRecommendation{
	{Ticker: "GRNB", Name: "Green Bond Index", Description: "Investment-grade bonds funding climate projects", MinScore: 0, RiskLevel: "low"},
	{Ticker: "ESGV", Name: "ESG Screened Equity", Description: "Broad equity index screened for ESG criteria", MinScore: 55, RiskLevel: "medium"},
	{Ticker: "CLNR", Name: "Clean Energy Leaders", Description: "Solar, wind and storage producers", MinScore: 65, RiskLevel: "medium"},
	{Ticker: "WTRX", Name: "Water Infrastructure", Description: "Water treatment and distribution operators", MinScore: 70, RiskLevel: "medium"},
	{Ticker: "RGNF", Name: "Regenerative Agriculture", Description: "Early-stage sustainable food producers", MinScore: 80, RiskLevel: "high"},
}

type recommendationService struct {
	batchRepo portsrepo.EcoBatchReader
}

// NewRecommendationService creates the fund recommendation service.
func NewRecommendationService(batchRepo portsrepo.EcoBatchReader) portssvc.RecommendationSvcFacade {
	return &recommendationService{batchRepo: batchRepo}
}

var _ portssvc.RecommendationSvcFacade = (*recommendationService)(nil)

func (s *recommendationService) ListRecommendations(ctx context.Context, ownerID int64) (int, []domain.FundRecommendation, error) {
	summary, err := s.batchRepo.FindLatestSummary(ctx, ownerID)
	if err != nil {
		return 0, nil, err
	}

	var funds []domain.FundRecommendation
	for _, fund := range fundCatalog {
		if summary.OverallScore >= fund.MinScore {
			funds = append(funds, fund)
		}
	}
	return summary.OverallScore, funds, nil
}
