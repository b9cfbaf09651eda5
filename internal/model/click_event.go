package model

import "time"

// ClickEvent represents one affiliate-link activation.
// Rows are append-only; the application never updates or deletes them.
type ClickEvent struct {
	ID        int64     `json:"id"`
	ProductID string    `json:"product_id"`
	Country   string    `json:"country,omitempty"` // ISO 3166-1 alpha-2, empty when unattributed
	CreatedAt time.Time `json:"created_at"`        // server-assigned
}

// SparklineDays is the length of the per-product daily click histogram.
const SparklineDays = 30

// ProductAnalytics is the per-product rollup: the unbounded click total
// plus a trailing-30-day histogram, oldest day first (index 29 = today).
type ProductAnalytics struct {
	ProductID   string  `json:"product_id"`
	Title       string  `json:"product_title"`
	TotalCount  int64   `json:"click_count"`
	DailyCounts []int64 `json:"recent_clicks"` // always length SparklineDays
}
