package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-cart/config"
	"github.com/oksasatya/go-shop-cart/internal/domain/entity"
	pginfra "github.com/oksasatya/go-shop-cart/internal/infrastructure/postgres"
	"github.com/oksasatya/go-shop-cart/pkg/helpers"
)

// Seeds a demo account with a small cart. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, cfg.DBMaxConnLife)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to postgres")
	}
	defer pool.Close()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		logger.WithError(err).Fatal("failed to hash password")
	}

	var id string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, full_name, age, country, state, street, postal_code, phone_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id
	`, email, hash, "Demo User", 30, "NL", "Noord-Holland", "Damrak 1", "1012 LG", "+31200000000").Scan(&id)
	if err != nil {
		logger.WithError(err).Fatal("failed to seed user")
	}
	logger.WithFields(logrus.Fields{"id": id, "email": email, "password": password}).Info("seeded user")

	cart := entity.NewCart(id)
	for _, it := range []entity.LineItem{
		{ItemID: "sku-100", Name: "Coffee mug", Price: 8.5, Quantity: 2},
		{ItemID: "sku-200", Name: "Notebook", Price: 4.25, Quantity: 1},
	} {
		if err := cart.Add(it); err != nil {
			logger.WithError(err).Fatal("invalid seed item")
		}
	}
	if err := pginfra.NewCartRepository(pool).Save(ctx, cart); err != nil {
		logger.WithError(err).Fatal("failed to seed cart")
	}
	logger.WithFields(logrus.Fields{"user_id": id, "items": cart.Items}).Info("seeded cart")
}
