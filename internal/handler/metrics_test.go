package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bornBrian/ViralCart/internal/metrics"
)

func TestMetricsExposition(t *testing.T) {
	t.Parallel()

	recorder := metrics.NewInMemory()
	recorder.IncCatalogCacheHit()
	recorder.IncCatalogCacheHit()
	recorder.IncCatalogCacheMiss()
	recorder.ObserveCatalogLoadDuration(250 * time.Millisecond)
	recorder.IncProductCreated()
	recorder.IncClickRecorded("success")
	recorder.IncClickRecorded("dropped")

	h := NewMetricsHandler(recorder)

	rec := httptest.NewRecorder()
	h.Metrics(rec, httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain exposition", ct)
	}

	body := rec.Body.String()
	wantLines := []string{
		"viralcart_catalog_cache_hits_total 2",
		"viralcart_catalog_cache_misses_total 1",
		"viralcart_catalog_load_duration_seconds_count 1",
		"viralcart_catalog_load_duration_seconds_sum 0.250000",
		"viralcart_products_created_total 1",
		`viralcart_clicks_recorded_total{status="success"} 1`,
		`viralcart_clicks_recorded_total{status="dropped"} 1`,
	}
	for _, line := range wantLines {
		if !strings.Contains(body, line) {
			t.Errorf("exposition missing %q\nbody:\n%s", line, body)
		}
	}
}

func TestMetricsWithoutSnapshotter(t *testing.T) {
	t.Parallel()

	h := NewMetricsHandler(nil)

	rec := httptest.NewRecorder()
	h.Metrics(rec, httptest.NewRequest(http.MethodGet, "/api/v1/metrics", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}
