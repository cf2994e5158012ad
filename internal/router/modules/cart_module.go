package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-shop-cart/internal/interface/http"
	"github.com/oksasatya/go-shop-cart/internal/interface/middleware"
	"github.com/oksasatya/go-shop-cart/pkg/helpers"
)

// CartModule serves /api/cart; every route needs a bearer token.
type CartModule struct {
	Handler *handlers.CartHandler
	JWT     *helpers.JWTManager
}

func NewCartModule(h *handlers.CartHandler, jwt *helpers.JWTManager) *CartModule {
	return &CartModule{Handler: h, JWT: jwt}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/cart")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("", m.Handler.Get)
		auth.PUT("", m.Handler.Add)
		auth.DELETE("/:item_id", m.Handler.Remove)
		auth.PUT("/:item_id", m.Handler.UpdateQuantity)
	}
}
