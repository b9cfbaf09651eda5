package catalog

import (
	"testing"

	"github.com/bornBrian/ViralCart/internal/model"
)

func TestSearch_EmptyQuery(t *testing.T) {
	t.Parallel()

	products := []*model.Product{
		product("1", "Wireless Earbuds Pro", ""),
		product("2", "Blender", ""),
	}

	for _, q := range []string{"", "   ", "\t\n"} {
		if got := Search(products, q); len(got) != 0 {
			t.Errorf("Search(products, %q) returned %d results, want 0", q, len(got))
		}
	}
}

func TestSearch_CaseInsensitiveTitleMatch(t *testing.T) {
	t.Parallel()

	products := []*model.Product{
		product("1", "Wireless Earbuds Pro", ""),
		product("2", "Desk Lamp", ""),
	}

	got := Search(products, "EARBUDS")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("Search EARBUDS = %+v, want product 1", got)
	}
}

func TestSearch_DescriptionMatch(t *testing.T) {
	t.Parallel()

	products := []*model.Product{
		{ID: "1", Title: "Desk Lamp", Description: "Warm LED light for late nights"},
		{ID: "2", Title: "Blender", Description: ""},
	}

	got := Search(products, "led")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("Search led = %+v, want product 1", got)
	}
}

func TestSearch_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	products := []*model.Product{
		product("1", "USB cable", ""),
		product("2", "Lamp", ""),
		product("3", "USB hub", ""),
		product("4", "USB charger", ""),
	}

	got := Search(products, "usb")
	wantIDs := []string{"1", "3", "4"}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d results, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("result[%d].ID = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestSearch_NoMatch(t *testing.T) {
	t.Parallel()

	products := []*model.Product{product("1", "Blender", "")}

	got := Search(products, "xyz-nomatch")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", got)
	}
}
