// Package analytics provides click recording and rollup computation.
package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/bornBrian/ViralCart/internal/model"
)

// Reader provides read access to the click store.
type Reader interface {
	// CountClicks returns the unbounded click total for a product.
	// An empty productID counts every click.
	CountClicks(ctx context.Context, productID string) (int64, error)

	// ListClicksSince returns a product's clicks created at or after
	// since, ordered by creation time ascending.
	ListClicksSince(ctx context.Context, productID string, since time.Time) ([]*model.ClickEvent, error)
}

// Compute builds the per-product analytics rollup: unbounded totals plus
// a trailing-30-day daily histogram (index 29 = today, index 0 = 29 days
// ago). Events older than the window stay in the total but not the
// histogram. Results are sorted by total descending; ties keep input
// product order.
//
// One count plus one range query per product: fine at catalog scale,
// a scaling limit for anything larger.
func Compute(ctx context.Context, products []*model.Product, clicks Reader, now time.Time) ([]*model.ProductAnalytics, error) {
	windowStart := now.Add(-model.SparklineDays * 24 * time.Hour)

	summaries := make([]*model.ProductAnalytics, 0, len(products))
	for _, p := range products {
		total, err := clicks.CountClicks(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("count clicks for %s: %w", p.ID, err)
		}

		recent, err := clicks.ListClicksSince(ctx, p.ID, windowStart)
		if err != nil {
			return nil, fmt.Errorf("list recent clicks for %s: %w", p.ID, err)
		}

		summaries = append(summaries, &model.ProductAnalytics{
			ProductID:   p.ID,
			Title:       p.Title,
			TotalCount:  total,
			DailyCounts: dailyHistogram(recent, now),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalCount > summaries[j].TotalCount
	})

	return summaries, nil
}

// dailyHistogram buckets events into the trailing 30 days, oldest first.
func dailyHistogram(events []*model.ClickEvent, now time.Time) []int64 {
	counts := make([]int64, model.SparklineDays)
	for _, e := range events {
		daysDiff := int(math.Floor(now.Sub(e.CreatedAt).Hours() / 24))
		if daysDiff >= 0 && daysDiff < model.SparklineDays {
			counts[model.SparklineDays-1-daysDiff]++
		}
	}
	return counts
}
