package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ecovault/eco_finance_app/internal/core/ports/services"
	"github.com/ecovault/eco_finance_app/internal/dto"
	"github.com/ecovault/eco_finance_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// productSearchHandler serves generative sustainable product search.
type productSearchHandler struct {
	productSearchService portssvc.ProductSearchSvcFacade
}

func newProductSearchHandler(ps portssvc.ProductSearchSvcFacade) *productSearchHandler {
	return &productSearchHandler{
		productSearchService: ps,
	}
}

// registerProductSearchRoutes registers the product search routes.
func registerProductSearchRoutes(rg *gin.RouterGroup, productSearchService portssvc.ProductSearchSvcFacade) {
	h := newProductSearchHandler(productSearchService)

	products := rg.Group("/products")
	{
		products.GET("/search", h.search)
	}
}

// search godoc
// @Summary Search sustainable products
// @Description Asks the generative model for sustainable product suggestions matching the query
// @Tags products
// @Produce  json
// @Param   q query string true "Free-text query"
// @Success 200 {object} dto.ProductSearchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Model unavailable or returned an unusable answer"
// @Security BearerAuth
// @Router /products/search [get]
func (h *productSearchHandler) search(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, ok := middleware.GetUserIDFromContext(c); !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ProductSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}

	products, err := h.productSearchService.Search(c.Request.Context(), params.Query)
	if err != nil {
		logger.Error("Product search failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Product search is unavailable right now"})
		return
	}

	c.JSON(http.StatusOK, dto.ProductSearchResponse{
		Query:    params.Query,
		Products: products,
	})
}
