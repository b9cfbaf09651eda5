package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bornBrian/ViralCart/internal/catalog"
	"github.com/bornBrian/ViralCart/internal/handler/dto"
	"github.com/bornBrian/ViralCart/internal/service"
)

// ProductHandler handles HTTP requests for product operations: the
// public listing and the admin CRUD surface.
type ProductHandler struct {
	svc    *service.ProductService
	logger *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		svc:    svc,
		logger: logger.With("component", "handler.product"),
	}
}

// List handles GET /api/v1/products. An optional ?q= narrows the
// listing with the same matching rules as the catalog search.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("product listing failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Catalog is temporarily unavailable",
			Code:  "CATALOG_UNAVAILABLE",
		})
		return
	}

	if query := strings.TrimSpace(r.URL.Query().Get("q")); query != "" {
		products = catalog.Search(products, query)
	}

	writeJSON(w, http.StatusOK, dto.ProductListResponse{
		Data: dto.ToProductResponses(products),
	})
}

// Get handles GET /api/v1/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_ID", "Product ID is required")
		return
	}

	product, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProductResponse(product))
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	product, err := h.svc.CreateProduct(r.Context(), req.ToDraft())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("product_created",
		"product_id", product.ID,
		"slug", product.Slug,
		"category", product.BucketKey(),
	)

	writeJSON(w, http.StatusCreated, dto.ToProductResponse(product))
}

// Update handles PUT /api/v1/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_ID", "Product ID is required")
		return
	}

	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	product, err := h.svc.UpdateProduct(r.Context(), id, req.ToDraft())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("product_updated", "product_id", product.ID, "slug", product.Slug)

	writeJSON(w, http.StatusOK, dto.ToProductResponse(product))
}

// Delete handles DELETE /api/v1/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "MISSING_ID", "Product ID is required")
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("product_deleted", "product_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// handleServiceError maps service errors to HTTP responses.
func (h *ProductHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		h.writeError(w, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	case errors.Is(err, service.ErrTitleRequired):
		h.writeError(w, http.StatusBadRequest, "TITLE_REQUIRED", "Title is required")
	case errors.Is(err, service.ErrAffiliateURLRequired):
		h.writeError(w, http.StatusBadRequest, "AFFILIATE_URL_REQUIRED", "Affiliate URL is required")
	case errors.Is(err, service.ErrInvalidAffiliateURL):
		h.writeError(w, http.StatusBadRequest, "INVALID_AFFILIATE_URL", "Affiliate URL is too long")
	default:
		h.logger.Error("unhandled service error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes a JSON error response.
func (h *ProductHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
