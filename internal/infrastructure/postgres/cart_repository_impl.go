package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-shop-cart/internal/domain/entity"
	"github.com/oksasatya/go-shop-cart/internal/domain/repository"
)

// CartRepository keeps each cart's line items as a JSONB document keyed by user id.
type CartRepository struct {
	pool PgxPool
}

func NewCartRepository(pool PgxPool) *CartRepository {
	return &CartRepository{pool: pool}
}

func (r *CartRepository) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	var (
		raw       []byte
		updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT items, updated_at
		FROM carts
		WHERE user_id = $1
	`, userID).Scan(&raw, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select cart: %w", err)
	}

	c := entity.NewCart(userID)
	c.UpdatedAt = updatedAt
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &c.Items); err != nil {
			return nil, fmt.Errorf("decode cart items: %w", err)
		}
	}
	if c.Items == nil {
		c.Items = []entity.LineItem{}
	}
	return c, nil
}

func (r *CartRepository) Save(ctx context.Context, c *entity.Cart) error {
	items := c.Items
	if items == nil {
		items = []entity.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart items: %w", err)
	}
	c.UpdatedAt = time.Now().UTC()

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO carts (user_id, items, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at
	`, c.UserID, raw, c.UpdatedAt); err != nil {
		return fmt.Errorf("upsert cart: %w", err)
	}
	return nil
}

var _ repository.CartRepository = (*CartRepository)(nil)
