package dto

import (
	"time"

	"github.com/bornBrian/ViralCart/internal/model"
)

// AnalyticsResponse represents the admin analytics overview: per-product
// totals with sparkline buckets, sorted by total clicks descending.
type AnalyticsResponse struct {
	GeneratedAt  time.Time                 `json:"generated_at"`
	WindowDays   int                       `json:"window_days"`
	TotalClicks  int64                     `json:"total_clicks"`
	ProductCount int                       `json:"product_count"`
	AvgClicks    float64                   `json:"avg_clicks_per_product"`
	Products     []*model.ProductAnalytics `json:"products"`
}
