package redisstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-shop-cart/internal/domain/entity"
	"github.com/oksasatya/go-shop-cart/internal/domain/repository"
	"github.com/oksasatya/go-shop-cart/internal/infrastructure/redisstore"
)

func mockRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		s.Close()
	})
	return s, rdb
}

func TestCartRepository_MissingCart(t *testing.T) {
	_, rdb := mockRedis(t)
	repo := redisstore.NewCartRepository(rdb)

	c, err := repo.GetByUserID(context.Background(), "u1")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCartRepository_SaveAndLoad(t *testing.T) {
	s, rdb := mockRedis(t)
	repo := redisstore.NewCartRepository(rdb)
	ctx := context.Background()

	c := entity.NewCart("u1")
	require.NoError(t, c.Add(entity.LineItem{ItemID: "sku1", Name: "Widget", Price: 9.99, Quantity: 2}))
	require.NoError(t, repo.Save(ctx, c))

	assert.True(t, s.Exists("cart:u1"))
	assert.Equal(t, "0s", s.TTL("cart:u1").String())

	got, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, c.Items, got.Items)
	assert.Equal(t, "u1", got.UserID)
}

func TestCartRepository_LastWriteWins(t *testing.T) {
	_, rdb := mockRedis(t)
	repo := redisstore.NewCartRepository(rdb)
	ctx := context.Background()

	first := entity.NewCart("u1")
	require.NoError(t, first.Add(entity.LineItem{ItemID: "a", Name: "A", Quantity: 1}))
	second := entity.NewCart("u1")
	require.NoError(t, second.Add(entity.LineItem{ItemID: "b", Name: "B", Quantity: 1}))

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "b", got.Items[0].ItemID)
}

func TestCartRepository_CorruptDocument(t *testing.T) {
	s, rdb := mockRedis(t)
	require.NoError(t, s.Set("cart:u1", "not json"))

	_, err := redisstore.NewCartRepository(rdb).GetByUserID(context.Background(), "u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}
