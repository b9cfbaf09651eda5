package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/bornBrian/ViralCart/internal/model"
)

// ClickRepository provides database access for click events.
// The clicks table is append-only: nothing here updates or deletes.
type ClickRepository struct {
	repo *Repository
}

// NewClickRepository creates a new ClickRepository.
func NewClickRepository(repo *Repository) *ClickRepository {
	return &ClickRepository{repo: repo}
}

// AppendClick inserts one click event with a server-side timestamp.
// An empty country is stored as NULL.
func (r *ClickRepository) AppendClick(ctx context.Context, productID, country string) error {
	query := `
		INSERT INTO clicks (product_id, country, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := r.repo.pool.Exec(ctx, query, productID, nullableString(country))
	if err != nil {
		return fmt.Errorf("failed to append click: %w", err)
	}

	return nil
}

// CountClicks returns the unbounded click total for a product, or for
// the whole store when productID is empty.
func (r *ClickRepository) CountClicks(ctx context.Context, productID string) (int64, error) {
	var count int64
	var err error

	if productID == "" {
		err = r.repo.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clicks`).Scan(&count)
	} else {
		err = r.repo.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM clicks WHERE product_id = $1`, productID,
		).Scan(&count)
	}

	if err != nil {
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}

	return count, nil
}

// ListClicksSince returns a product's clicks created at or after since,
// oldest first.
func (r *ClickRepository) ListClicksSince(ctx context.Context, productID string, since time.Time) ([]*model.ClickEvent, error) {
	query := `
		SELECT id, product_id, COALESCE(country, ''), created_at
		FROM clicks
		WHERE product_id = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`

	rows, err := r.repo.pool.Query(ctx, query, productID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list clicks: %w", err)
	}
	defer rows.Close()

	var events []*model.ClickEvent
	for rows.Next() {
		var event model.ClickEvent
		if err := rows.Scan(&event.ID, &event.ProductID, &event.Country, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan click: %w", err)
		}
		events = append(events, &event)
	}

	return events, rows.Err()
}
