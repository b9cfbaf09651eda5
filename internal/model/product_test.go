package model

import "testing"

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Wireless Earbuds Pro", "wireless-earbuds-pro"},
		{"punctuation_stripped", "Best! Deal? (2024)", "best-deal-2024"},
		{"collapses_separators", "a  b__c--d", "a-b-c-d"},
		{"trims_edge_hyphens", "  -hello world-  ", "hello-world"},
		{"empty", "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Slugify(test.title); got != test.want {
				t.Errorf("Slugify(%q) = %q, want %q", test.title, got, test.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price string
		want  string
	}{
		{"already_formatted", "$19.99", "$19.99"},
		{"bare_decimal", "19.9", "$19.90"},
		{"integer", "25", "$25.00"},
		{"unparseable", "about twenty bucks", "about twenty bucks"},
		{"empty", "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := FormatPrice(test.price); got != test.want {
				t.Errorf("FormatPrice(%q) = %q, want %q", test.price, got, test.want)
			}
		})
	}
}

func TestProduct_BucketKey(t *testing.T) {
	t.Parallel()

	withCategory := &Product{Category: "Electronics"}
	if got := withCategory.BucketKey(); got != "Electronics" {
		t.Errorf("BucketKey() = %q, want Electronics", got)
	}

	uncategorized := &Product{}
	if got := uncategorized.BucketKey(); got != FeaturedCategory {
		t.Errorf("BucketKey() = %q, want %q", got, FeaturedCategory)
	}
}
