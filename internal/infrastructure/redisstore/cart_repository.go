package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-shop-cart/internal/domain/entity"
	"github.com/oksasatya/go-shop-cart/internal/domain/repository"
	"github.com/oksasatya/go-shop-cart/pkg/helpers"
)

// CartRepository stores each cart as a JSON document under cart:<userID>.
type CartRepository struct {
	rdb redis.Cmdable
}

func NewCartRepository(rdb redis.Cmdable) *CartRepository {
	return &CartRepository{rdb: rdb}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

func (r *CartRepository) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	var c entity.Cart
	ok, err := helpers.RedisGetJSON(ctx, r.rdb, cartKey(userID), &c)
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", userID, err)
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	c.UserID = userID
	if c.Items == nil {
		c.Items = []entity.LineItem{}
	}
	return &c, nil
}

func (r *CartRepository) Save(ctx context.Context, c *entity.Cart) error {
	if c.Items == nil {
		c.Items = []entity.LineItem{}
	}
	c.UpdatedAt = time.Now().UTC()
	if err := helpers.RedisSetJSON(ctx, r.rdb, cartKey(c.UserID), c, 0); err != nil {
		return fmt.Errorf("save cart %s: %w", c.UserID, err)
	}
	return nil
}

var _ repository.CartRepository = (*CartRepository)(nil)
