// Package model defines domain entities for the application.
package model

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FeaturedCategory is the bucket products without a category fall into.
const FeaturedCategory = "Featured"

// Product represents one catalog item promoted through an affiliate link.
type Product struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Slug               string    `json:"slug"`
	Description        string    `json:"description"`
	Price              string    `json:"price"` // free-form, may carry a currency symbol
	AffiliateURL       string    `json:"affiliate_url"`
	Images             []string  `json:"images"`
	Videos             []string  `json:"videos,omitempty"`
	Tags               []string  `json:"tags,omitempty"`
	AvailableCountries []string  `json:"available_countries,omitempty"`
	Category           string    `json:"category,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// BucketKey returns the category grouping key for the product.
// Products without a category land in the "Featured" bucket.
func (p *Product) BucketKey() string {
	if p.Category == "" {
		return FeaturedCategory
	}
	return p.Category
}

// ProductDraft mirrors Product minus identity and timestamps.
// It is the payload of admin create/update operations.
type ProductDraft struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              string   `json:"price"`
	AffiliateURL       string   `json:"affiliate_url"`
	Images             []string `json:"images"`
	Videos             []string `json:"videos,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	AvailableCountries []string `json:"available_countries,omitempty"`
	Category           string   `json:"category,omitempty"`
}

var (
	slugInvalidChars = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s_-]+`)
	slugEdgeHyphens  = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives a lowercase hyphenated slug from a product title.
// Uniqueness is best-effort and not enforced.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return slugEdgeHyphens.ReplaceAllString(s, "")
}

// FormatPrice normalizes a price string for display.
// Already-formatted values pass through, bare decimals gain a dollar
// sign and two decimal places, anything else passes through untouched.
func FormatPrice(price string) string {
	if strings.HasPrefix(price, "$") {
		return price
	}

	if n, err := strconv.ParseFloat(strings.TrimSpace(price), 64); err == nil {
		return "$" + strconv.FormatFloat(n, 'f', 2, 64)
	}

	return price
}
