package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bornBrian/ViralCart/internal/analytics"
	"github.com/bornBrian/ViralCart/internal/handler/dto"
	"github.com/bornBrian/ViralCart/internal/service"
)

// RedirectHandler sends visitors to a product's affiliate destination,
// recording the click on the way out without ever delaying it.
type RedirectHandler struct {
	svc              *service.ProductService
	recorder         *analytics.Recorder
	geoCountryHeader string
	logger           *slog.Logger
}

// NewRedirectHandler creates a new RedirectHandler.
func NewRedirectHandler(svc *service.ProductService, recorder *analytics.Recorder, geoCountryHeader string, logger *slog.Logger) *RedirectHandler {
	return &RedirectHandler{
		svc:              svc,
		recorder:         recorder,
		geoCountryHeader: geoCountryHeader,
		logger:           logger.With("component", "handler.redirect"),
	}
}

// Redirect handles GET /go/{id}.
func (h *RedirectHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeNotFound(w)
		return
	}

	start := time.Now()

	product, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			h.logger.Info("redirect_not_found", "product_id", id)
			h.writeNotFound(w)
			return
		}
		h.logger.Error("redirect_error", "product_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	// Fire-and-forget; the visitor leaves regardless of the outcome.
	country := ""
	if h.geoCountryHeader != "" {
		country = analytics.ExtractCountryCode(r.Header.Get(h.geoCountryHeader))
	}
	h.recorder.Record(product.ID, country)

	h.logger.Info("redirect_success",
		"product_id", product.ID,
		"slug", product.Slug,
		"duration_ms", float64(time.Since(start).Microseconds())/1000,
	)

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("Cache-Control", "private, max-age=0")

	http.Redirect(w, r, product.AffiliateURL, http.StatusFound)
}

func (h *RedirectHandler) writeNotFound(w http.ResponseWriter) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "private, max-age=0")
	writeJSON(w, http.StatusNotFound, dto.ErrorResponse{
		Error: "Product not found",
		Code:  "PRODUCT_NOT_FOUND",
	})
}
