package services

import (
	"context"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
)

// RecommendationSvcFacade suggests sustainable investment products based on
// the owner's latest overall score.
type RecommendationSvcFacade interface {
	// ListRecommendations returns the funds whose minimum score the owner's
	// latest summary clears, plus that score.
	ListRecommendations(ctx context.Context, ownerID int64) (int, []domain.FundRecommendation, error)
}
