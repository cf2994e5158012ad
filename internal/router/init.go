package router

import (
	"github.com/oksasatya/go-shop-cart/config"
	"github.com/oksasatya/go-shop-cart/internal/application"
	"github.com/oksasatya/go-shop-cart/internal/container"
	repo "github.com/oksasatya/go-shop-cart/internal/domain/repository"
	"github.com/oksasatya/go-shop-cart/internal/infrastructure/elastic"
	pginfra "github.com/oksasatya/go-shop-cart/internal/infrastructure/postgres"
	"github.com/oksasatya/go-shop-cart/internal/infrastructure/redisstore"
	handlers "github.com/oksasatya/go-shop-cart/internal/interface/http"
	"github.com/oksasatya/go-shop-cart/internal/router/modules"
)

type UserModuleDeps struct {
	Service *application.UserService
	Users   *handlers.UserHandler
	Auth    *handlers.AuthHandler
}

type CartModuleDeps struct {
	Repo    repo.CartRepository
	Service *application.CartService
	Handler *handlers.CartHandler
}

func buildUserDeps() UserModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	service := application.NewUserService(
		pginfra.NewUserRepository(container.GetPGPool()),
		container.GetJWT(),
		logger,
	)
	if es := container.GetES(); es != nil {
		service.WithSearch(elastic.NewUserIndex(es, cfg.ESUsersIndex))
	}
	if pub := container.GetRabbitPub(); pub != nil && cfg.MailSendEnabled {
		service.WithMail(pub, cfg.AppName)
	}

	return UserModuleDeps{
		Service: service,
		Users:   handlers.NewUserHandler(service, logger),
		Auth:    handlers.NewAuthHandler(service, logger),
	}
}

// cartRepository picks the cart document store named by CART_STORE.
func cartRepository(cfg *config.Config) repo.CartRepository {
	if cfg.CartStore == config.CartStoreRedis && container.GetRedis() != nil {
		return redisstore.NewCartRepository(container.GetRedis())
	}
	return pginfra.NewCartRepository(container.GetPGPool())
}

func buildCartDeps() CartModuleDeps {
	logger := container.GetLogger()
	r := cartRepository(container.GetConfig())
	service := application.NewCartService(r, logger)
	return CartModuleDeps{
		Repo:    r,
		Service: service,
		Handler: handlers.NewCartHandler(service, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	jwt := container.GetJWT()

	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Users, jwt))
	r.Add(modules.NewAuthModule(userDeps.Auth))

	cartDeps := buildCartDeps()
	r.Add(modules.NewCartModule(cartDeps.Handler, jwt))

	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
