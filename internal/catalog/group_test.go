package catalog

import (
	"testing"

	"github.com/bornBrian/ViralCart/internal/model"
)

func product(id, title, category string) *model.Product {
	return &model.Product{ID: id, Title: title, Category: category}
}

func TestGroupByCategory_Basic(t *testing.T) {
	t.Parallel()

	products := []*model.Product{
		product("1", "Earbuds", "Electronics"),
		product("2", "Blender", ""),
		product("3", "Charger", "Electronics"),
		product("4", "Lamp", "Home"),
	}

	buckets := GroupByCategory(products)

	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}

	// Buckets follow first-seen-category order.
	wantOrder := []string{"Electronics", model.FeaturedCategory, "Home"}
	for i, name := range wantOrder {
		if buckets[i].Name != name {
			t.Errorf("bucket[%d] = %q, want %q", i, buckets[i].Name, name)
		}
	}

	// Input order preserved within a bucket.
	electronics := buckets[0].Products
	if len(electronics) != 2 || electronics[0].ID != "1" || electronics[1].ID != "3" {
		t.Errorf("Electronics bucket order wrong: %+v", electronics)
	}

	featured := buckets[1].Products
	if len(featured) != 1 || featured[0].ID != "2" {
		t.Errorf("uncategorized product should land in Featured, got %+v", featured)
	}
}

func TestGroupByCategory_NoProductDroppedOrDuplicated(t *testing.T) {
	t.Parallel()

	products := []*model.Product{
		product("1", "a", "X"),
		product("2", "b", ""),
		product("3", "c", "X"),
		product("4", "d", "Y"),
		product("5", "e", ""),
	}

	buckets := GroupByCategory(products)

	seen := make(map[string]int)
	total := 0
	for _, b := range buckets {
		total += len(b.Products)
		for _, p := range b.Products {
			seen[p.ID]++
		}
	}

	if total != len(products) {
		t.Errorf("bucket sizes sum to %d, want %d", total, len(products))
	}
	for _, p := range products {
		if seen[p.ID] != 1 {
			t.Errorf("product %s appears %d times, want 1", p.ID, seen[p.ID])
		}
	}
}

func TestGroupByCategory_Empty(t *testing.T) {
	t.Parallel()

	buckets := GroupByCategory(nil)
	if len(buckets) != 0 {
		t.Errorf("expected empty grouping, got %d buckets", len(buckets))
	}
}

func TestGroupByCategory_AllCategorized(t *testing.T) {
	t.Parallel()

	buckets := GroupByCategory([]*model.Product{
		product("1", "a", "Kitchen"),
		product("2", "b", "Kitchen"),
	})

	for _, b := range buckets {
		if b.Name == model.FeaturedCategory {
			t.Error("Featured bucket should not exist when every product has a category")
		}
	}
}
