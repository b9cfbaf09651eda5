package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bornBrian/ViralCart/internal/model"
)

// Cache key and TTL for the catalog listing.
const (
	catalogKey = "catalog:products"

	// CatalogTTL keeps the cached listing short-lived; admin writes
	// invalidate it eagerly, the TTL is the backstop.
	CatalogTTL = 60 * time.Second
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// GetCatalog retrieves the cached product listing.
// Returns ErrCacheMiss if not present.
func (c *Cache) GetCatalog(ctx context.Context) ([]*model.Product, error) {
	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if isRedisNil(err) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var products []*model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		// A corrupt entry behaves like a miss; the caller refills it.
		return nil, ErrCacheMiss
	}

	return products, nil
}

// SetCatalog stores the product listing.
func (c *Cache) SetCatalog(ctx context.Context, products []*model.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := c.client.Set(ctx, catalogKey, data, CatalogTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache catalog: %w", err)
	}

	return nil
}

// InvalidateCatalog drops the cached listing after an admin write.
func (c *Cache) InvalidateCatalog(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}

	return nil
}
