package dto

import "github.com/ecovault/eco_finance_app/internal/core/domain"

// ProductSearchParams carries the generative product search query.
type ProductSearchParams struct {
	Query string `form:"q" binding:"required,notblank,min=2,max=200"`
}

// ProductSearchResponse wraps generative product suggestions.
type ProductSearchResponse struct {
	Query    string              `json:"query"`
	Products []domain.EcoProduct `json:"products"`
}
