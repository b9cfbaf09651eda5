package handler

import (
	"fmt"
	"net/http"

	"github.com/bornBrian/ViralCart/internal/metrics"
)

// MetricsHandler exposes the in-memory counters.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns counters in Prometheus exposition format.
// GET /api/v1/metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "viralcart_catalog_cache_hits_total %d\n", snap.CatalogCacheHits)
	writeMetric(w, "viralcart_catalog_cache_misses_total %d\n", snap.CatalogCacheMisses)
	writeMetric(w, "viralcart_catalog_load_duration_seconds_count %d\n", snap.CatalogLoadCount)
	writeMetric(w, "viralcart_catalog_load_duration_seconds_sum %.6f\n", float64(snap.CatalogLoadTotalNs)/1e9)

	writeMetric(w, "viralcart_products_created_total %d\n", snap.ProductsCreated)
	writeMetric(w, "viralcart_products_updated_total %d\n", snap.ProductsUpdated)
	writeMetric(w, "viralcart_products_deleted_total %d\n", snap.ProductsDeleted)

	writeMetric(w, "viralcart_clicks_recorded_total{status=\"success\"} %d\n", snap.ClicksRecorded)
	writeMetric(w, "viralcart_clicks_recorded_total{status=\"dropped\"} %d\n", snap.ClicksDropped)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
