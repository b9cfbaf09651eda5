package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"github.com/bornBrian/ViralCart/internal/model"
)

// Common errors for product repository operations.
var (
	ErrProductNotFound = errors.New("product not found")
)

const productColumns = `
	id, title, slug, description, price, affiliate_url,
	images, videos, tags, available_countries, category, created_at
`

// CreateProduct inserts a new product.
func (r *Repository) CreateProduct(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (
			id, title, slug, description, price, affiliate_url,
			images, videos, tags, available_countries, category, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Title,
		product.Slug,
		product.Description,
		product.Price,
		product.AffiliateURL,
		pq.Array(product.Images),
		pq.Array(product.Videos),
		pq.Array(product.Tags),
		pq.Array(product.AvailableCountries),
		nullableString(product.Category),
		product.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// GetProduct retrieves a product by its ID.
func (r *Repository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// ListProducts retrieves every product, newest first. The catalog is
// small enough that the full row set is the unit of work.
func (r *Repository) ListProducts(ctx context.Context) ([]*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]*model.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// UpdateProduct replaces a product's mutable fields (full-document
// update; admin edits always submit the complete draft).
func (r *Repository) UpdateProduct(ctx context.Context, product *model.Product) error {
	query := `
		UPDATE products
		SET title = $2, slug = $3, description = $4, price = $5,
			affiliate_url = $6, images = $7, videos = $8, tags = $9,
			available_countries = $10, category = $11
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Title,
		product.Slug,
		product.Description,
		product.Price,
		product.AffiliateURL,
		pq.Array(product.Images),
		pq.Array(product.Videos),
		pq.Array(product.Tags),
		pq.Array(product.AvailableCountries),
		nullableString(product.Category),
	)

	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes a product. Click rows referencing it are kept;
// the foreign reference is not enforced at the data layer.
func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// scanProduct scans a single row into a Product model.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var product model.Product
	var category *string

	err := row.Scan(
		&product.ID,
		&product.Title,
		&product.Slug,
		&product.Description,
		&product.Price,
		&product.AffiliateURL,
		pq.Array(&product.Images),
		pq.Array(&product.Videos),
		pq.Array(&product.Tags),
		pq.Array(&product.AvailableCountries),
		&category,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if category != nil {
		product.Category = *category
	}

	return &product, nil
}

// nullableString returns nil for empty strings.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
