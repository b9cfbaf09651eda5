package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornBrian/ViralCart/internal/analytics"
)

// TrackHandler handles the public click-ingestion endpoint. It is an
// origin-agnostic sink for storefront beacons, so CORS is fully
// permissive and independent of the API's CORS policy.
type TrackHandler struct {
	store            analytics.Appender
	geoCountryHeader string
	logger           *slog.Logger
}

// NewTrackHandler creates a new TrackHandler. geoCountryHeader names
// the edge header carrying the visitor country; empty disables
// country attribution.
func NewTrackHandler(store analytics.Appender, geoCountryHeader string, logger *slog.Logger) *TrackHandler {
	return &TrackHandler{
		store:            store,
		geoCountryHeader: geoCountryHeader,
		logger:           logger.With("component", "handler.track"),
	}
}

// trackRequest accepts both snake_case and camelCase payloads since
// beacons from older storefront builds still send the latter.
type trackRequest struct {
	ProductID      string `json:"product_id"`
	ProductIDCamel string `json:"productId"`
}

func (r trackRequest) productID() string {
	if r.ProductID != "" {
		return r.ProductID
	}
	return r.ProductIDCamel
}

// Track handles all methods on /api/track-click.
//
// OPTIONS preflights get 200, non-POST methods get 405, and every
// response carries permissive CORS headers.
func (h *TrackHandler) Track(w http.ResponseWriter, r *http.Request) {
	h.setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"error": "Method not allowed",
		})
		return
	}

	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "product_id is required",
		})
		return
	}

	productID := strings.TrimSpace(req.productID())
	if productID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "product_id is required",
		})
		return
	}

	country := ""
	if h.geoCountryHeader != "" {
		country = analytics.ExtractCountryCode(r.Header.Get(h.geoCountryHeader))
	}

	if err := h.store.AppendClick(r.Context(), productID, country); err != nil {
		h.logger.Error("click insert failed",
			"product_id", productID,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal server error",
			"details": err.Error(),
		})
		return
	}

	h.logger.Info("click_recorded", "product_id", productID, "country", country)

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// setCORSHeaders makes the endpoint callable from any origin.
func (h *TrackHandler) setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
