package catalog

import (
	"strings"

	"github.com/bornBrian/ViralCart/internal/model"
)

// Search filters products by case-insensitive substring match against
// title and description, preserving input order. An empty (or
// whitespace-only) query returns an empty slice: callers must treat
// that as "no active search", distinguishing it from zero results by
// inspecting the original query string, never the result length.
func Search(products []*model.Product, query string) []*model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []*model.Product{}
	}

	matches := make([]*model.Product, 0)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			matches = append(matches, p)
		}
	}

	return matches
}
