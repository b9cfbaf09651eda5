// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/bornBrian/ViralCart/internal/model"
)

// ProductRequest represents the request body for creating or
// replacing a product.
type ProductRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	Price              string   `json:"price,omitempty"`
	AffiliateURL       string   `json:"affiliate_url"`
	Images             []string `json:"images,omitempty"`
	Videos             []string `json:"videos,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	AvailableCountries []string `json:"available_countries,omitempty"`
	Category           string   `json:"category,omitempty"`
}

// ToDraft converts the request into the service-layer draft.
func (r ProductRequest) ToDraft() model.ProductDraft {
	return model.ProductDraft{
		Title:              r.Title,
		Description:        r.Description,
		Price:              r.Price,
		AffiliateURL:       r.AffiliateURL,
		Images:             r.Images,
		Videos:             r.Videos,
		Tags:               r.Tags,
		AvailableCountries: r.AvailableCountries,
		Category:           r.Category,
	}
}

// ProductResponse represents a product in API responses. DisplayPrice
// carries the dollar-formatted price; Price echoes the stored value.
type ProductResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Slug               string    `json:"slug"`
	Description        string    `json:"description,omitempty"`
	Price              string    `json:"price,omitempty"`
	DisplayPrice       string    `json:"display_price,omitempty"`
	AffiliateURL       string    `json:"affiliate_url"`
	Images             []string  `json:"images,omitempty"`
	Videos             []string  `json:"videos,omitempty"`
	Tags               []string  `json:"tags,omitempty"`
	AvailableCountries []string  `json:"available_countries,omitempty"`
	Category           string    `json:"category,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// ToProductResponse converts a product model to its API representation.
func ToProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:                 p.ID,
		Title:              p.Title,
		Slug:               p.Slug,
		Description:        p.Description,
		Price:              p.Price,
		DisplayPrice:       model.FormatPrice(p.Price),
		AffiliateURL:       p.AffiliateURL,
		Images:             p.Images,
		Videos:             p.Videos,
		Tags:               p.Tags,
		AvailableCountries: p.AvailableCountries,
		Category:           p.Category,
		CreatedAt:          p.CreatedAt,
	}
}

// ToProductResponses converts a slice of products, never returning nil
// so empty listings serialize as [].
func ToProductResponses(products []*model.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, ToProductResponse(p))
	}
	return result
}

// ProductListResponse represents the flat product listing.
type ProductListResponse struct {
	Data []ProductResponse `json:"data"`
}

// CategoryResponse is one category bucket of the grouped catalog.
type CategoryResponse struct {
	Name     string            `json:"name"`
	Products []ProductResponse `json:"products"`
}

// CatalogResponse represents the grouped storefront catalog.
type CatalogResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// SearchResponse represents catalog search results. Results is always
// present so zero matches serialize as [].
type SearchResponse struct {
	Query   string            `json:"query"`
	Results []ProductResponse `json:"results"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
