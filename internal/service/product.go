// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/bornBrian/ViralCart/internal/affiliate"
	"github.com/bornBrian/ViralCart/internal/metrics"
	"github.com/bornBrian/ViralCart/internal/model"
	"github.com/bornBrian/ViralCart/internal/repository"
)

// Service errors.
var (
	ErrTitleRequired        = errors.New("title is required")
	ErrAffiliateURLRequired = errors.New("affiliate URL is required")
	ErrInvalidAffiliateURL  = errors.New("invalid affiliate URL")
	ErrProductNotFound      = errors.New("product not found")
)

const maxAffiliateURLLength = 2048

// ProductStore is the persistence boundary for products.
type ProductStore interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// CatalogCache is the optional read-through cache for the listing.
type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]*model.Product, error)
	SetCatalog(ctx context.Context, products []*model.Product) error
	InvalidateCatalog(ctx context.Context) error
}

// ProductService handles product business logic: validation, slug
// derivation, affiliate-tag injection and catalog caching.
type ProductService struct {
	store        ProductStore
	cache        CatalogCache
	affiliateTag string
	metrics      metrics.Recorder
}

// NewProductService creates a new ProductService. cache may be nil to
// disable catalog caching; affiliateTag may be empty to disable tag
// injection.
func NewProductService(store ProductStore, cache CatalogCache, affiliateTag string, recorder metrics.Recorder) *ProductService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ProductService{
		store:        store,
		cache:        cache,
		affiliateTag: affiliateTag,
		metrics:      recorder,
	}
}

// CreateProduct validates a draft and persists it as a new product.
func (s *ProductService) CreateProduct(ctx context.Context, draft model.ProductDraft) (*model.Product, error) {
	product, err := s.productFromDraft(draft)
	if err != nil {
		return nil, err
	}

	product.ID = ulid.Make().String()
	product.CreatedAt = time.Now().UTC()

	if err := s.store.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.metrics.IncProductCreated()
	s.invalidateCatalog(ctx)

	return product, nil
}

// GetProduct retrieves a product by ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

// ListProducts returns the full catalog, newest first. The cached
// listing is preferred; any cache failure falls back to the store.
func (s *ProductService) ListProducts(ctx context.Context) ([]*model.Product, error) {
	if s.cache != nil {
		if products, err := s.cache.GetCatalog(ctx); err == nil {
			s.metrics.IncCatalogCacheHit()
			return products, nil
		}
		s.metrics.IncCatalogCacheMiss()
	}

	start := time.Now()
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveCatalogLoadDuration(time.Since(start))

	if s.cache != nil {
		// Best effort - a failed backfill only costs the next read.
		_ = s.cache.SetCatalog(ctx, products)
	}

	return products, nil
}

// UpdateProduct replaces a product's fields with a validated draft.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, draft model.ProductDraft) (*model.Product, error) {
	existing, err := s.store.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	product, err := s.productFromDraft(draft)
	if err != nil {
		return nil, err
	}

	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt

	if err := s.store.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.metrics.IncProductUpdated()
	s.invalidateCatalog(ctx)

	return product, nil
}

// DeleteProduct removes a product. Its click history is retained.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	s.metrics.IncProductDeleted()
	s.invalidateCatalog(ctx)

	return nil
}

// productFromDraft validates the draft and builds the product, deriving
// the slug and injecting the affiliate tag when one is configured and
// the URL does not already carry attribution.
func (s *ProductService) productFromDraft(draft model.ProductDraft) (*model.Product, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	affiliateURL := strings.TrimSpace(draft.AffiliateURL)
	if affiliateURL == "" {
		return nil, ErrAffiliateURLRequired
	}
	if len(affiliateURL) > maxAffiliateURLLength {
		return nil, ErrInvalidAffiliateURL
	}

	if s.affiliateTag != "" && !affiliate.HasTag(affiliateURL) {
		affiliateURL = affiliate.BuildLink(affiliateURL, s.affiliateTag)
	}

	return &model.Product{
		Title:              title,
		Slug:               model.Slugify(title),
		Description:        draft.Description,
		Price:              draft.Price,
		AffiliateURL:       affiliateURL,
		Images:             dropEmpty(draft.Images),
		Videos:             dropEmpty(draft.Videos),
		Tags:               dropEmpty(draft.Tags),
		AvailableCountries: dropEmpty(draft.AvailableCountries),
		Category:           strings.TrimSpace(draft.Category),
	}, nil
}

// invalidateCatalog drops the cached listing after a write.
// Eventual consistency is acceptable, so failures are not propagated.
func (s *ProductService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.InvalidateCatalog(ctx)
}

// dropEmpty removes blank entries from admin-entered URL/tag lists.
func dropEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
