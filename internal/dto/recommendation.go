package dto

import "github.com/ecovault/eco_finance_app/internal/core/domain"

// RecommendationResponse is the public representation of a fund suggestion.
type RecommendationResponse struct {
	Ticker      string `json:"ticker"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RiskLevel   string `json:"riskLevel"`
}

// ListRecommendationsResponse wraps fund suggestions for the caller's score.
type ListRecommendationsResponse struct {
	OverallScore    int                      `json:"overallScore"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}

// ToRecommendationResponse converts a domain fund to its public form.
func ToRecommendationResponse(f domain.FundRecommendation) RecommendationResponse {
	return RecommendationResponse{
		Ticker:      f.Ticker,
		Name:        f.Name,
		Description: f.Description,
		RiskLevel:   f.RiskLevel,
	}
}
