package repository

import (
	"context"

	"github.com/oksasatya/go-shop-cart/internal/domain/entity"
)

// CartRepository persists one cart document per user.
// Save overwrites whatever is stored; there is no version check.
type CartRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Cart, error)
	Save(ctx context.Context, c *entity.Cart) error
}
