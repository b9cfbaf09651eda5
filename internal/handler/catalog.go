package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornBrian/ViralCart/internal/catalog"
	"github.com/bornBrian/ViralCart/internal/handler/dto"
	"github.com/bornBrian/ViralCart/internal/service"
)

// CatalogHandler serves the storefront catalog: the category-grouped
// view and the search view over the same product listing.
type CatalogHandler struct {
	products *service.ProductService
	logger   *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(products *service.ProductService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		products: products,
		logger:   logger.With("component", "handler.catalog"),
	}
}

// Get handles GET /api/v1/catalog.
//
// Without a query it returns the catalog grouped by category, buckets
// in first-seen order with uncategorized products under "Featured".
// With ?q= it returns the flat list of matches instead.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("catalog load failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Catalog is temporarily unavailable",
			Code:  "CATALOG_UNAVAILABLE",
		})
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query != "" {
		results := catalog.Search(products, query)
		writeJSON(w, http.StatusOK, dto.SearchResponse{
			Query:   query,
			Results: dto.ToProductResponses(results),
		})
		return
	}

	buckets := catalog.GroupByCategory(products)
	categories := make([]dto.CategoryResponse, 0, len(buckets))
	for _, bucket := range buckets {
		categories = append(categories, dto.CategoryResponse{
			Name:     bucket.Name,
			Products: dto.ToProductResponses(bucket.Products),
		})
	}

	writeJSON(w, http.StatusOK, dto.CatalogResponse{Categories: categories})
}
