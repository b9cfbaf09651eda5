package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bornBrian/ViralCart/internal/analytics"
	"github.com/bornBrian/ViralCart/internal/handler/dto"
	"github.com/bornBrian/ViralCart/internal/model"
	"github.com/bornBrian/ViralCart/internal/service"
)

// AnalyticsHandler serves the admin analytics overview.
type AnalyticsHandler struct {
	products *service.ProductService
	clicks   analytics.Reader
	logger   *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(products *service.ProductService, clicks analytics.Reader, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		products: products,
		clicks:   clicks,
		logger:   logger.With("component", "handler.analytics"),
		now:      time.Now,
	}
}

// Overview handles GET /api/v1/analytics.
//
// Returns per-product click totals with a 30-day daily histogram,
// sorted by total clicks descending.
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("analytics product load failed", "error", err)
		h.writeError(w, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "Catalog is temporarily unavailable")
		return
	}

	now := h.now().UTC()
	summaries, err := analytics.Compute(r.Context(), products, h.clicks, now)
	if err != nil {
		h.logger.Error("analytics rollup failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute analytics")
		return
	}

	var totalClicks int64
	for _, s := range summaries {
		totalClicks += s.TotalCount
	}
	avgClicks := 0.0
	if len(summaries) > 0 {
		avgClicks = float64(totalClicks) / float64(len(summaries))
	}

	writeJSON(w, http.StatusOK, dto.AnalyticsResponse{
		GeneratedAt:  now,
		WindowDays:   model.SparklineDays,
		TotalClicks:  totalClicks,
		ProductCount: len(summaries),
		AvgClicks:    avgClicks,
		Products:     summaries,
	})
}

func (h *AnalyticsHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
