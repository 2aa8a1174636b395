package services

import (
	"context"
	"fmt"

	"github.com/ecovault/eco_finance_app/internal/core/domain"
	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
)

// productSearchService is a thin facade over the generative searcher; the
// model call itself lives in internal/clients/aisearch.
type productSearchService struct {
	searcher portssvc.EcoProductSearcher
}

// NewProductSearchService creates the product search service.
func NewProductSearchService(searcher portssvc.EcoProductSearcher) portssvc.ProductSearchSvcFacade {
	return &productSearchService{searcher: searcher}
}

var _ portssvc.ProductSearchSvcFacade = (*productSearchService)(nil)

func (s *productSearchService) Search(ctx context.Context, query string) ([]domain.EcoProduct, error) {
	products, err := s.searcher.SearchProducts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("product search failed: %w", err)
	}
	return products, nil
}
