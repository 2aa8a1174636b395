package services

import (
	"context"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
)

// EcoProductSearcher is the boundary to the generative-text service. The
// genai wrapper in internal/clients/aisearch implements it.
type EcoProductSearcher interface {
	// SearchProducts asks the model for sustainable product suggestions.
	SearchProducts(ctx context.Context, query string) ([]domain.EcoProduct, error)
}

// ProductSearchSvcFacade exposes the generative product search feature.
type ProductSearchSvcFacade interface {
	// Search returns sustainable alternatives matching the free-text query.
	Search(ctx context.Context, query string) ([]domain.EcoProduct, error)
}
