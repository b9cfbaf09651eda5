// Package catalog turns the flat product list into display models:
// category groupings for the storefront and filtered lists for search.
package catalog

import "github.com/bornBrian/ViralCart/internal/model"

// Bucket is a named group of products sharing a category.
type Bucket struct {
	Name     string           `json:"name"`
	Products []*model.Product `json:"products"`
}

// GroupByCategory groups products into buckets keyed by category, with
// uncategorized products collected under "Featured". Input order is
// preserved within each bucket and buckets appear in first-seen-category
// order. Every product lands in exactly one bucket; an empty input
// yields an empty result (the storefront's "empty catalog" state).
func GroupByCategory(products []*model.Product) []Bucket {
	buckets := make([]Bucket, 0)
	index := make(map[string]int)

	for _, p := range products {
		key := p.BucketKey()
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Name: key})
		}
		buckets[i].Products = append(buckets[i].Products, p)
	}

	return buckets
}
