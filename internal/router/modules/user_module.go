package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-shop-cart/internal/interface/http"
	"github.com/oksasatya/go-shop-cart/internal/interface/middleware"
	"github.com/oksasatya/go-shop-cart/pkg/helpers"
)

// UserModule wires user HTTP handlers into routes
// Public: POST /api/users, GET /api/users, GET /api/users/:id
// Protected: GET /api/search/users
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Register)
	rg.GET("/users", m.Handler.ListUsers)
	rg.GET("/users/:id", m.Handler.GetUser)

	rg.GET("/search/users", middleware.Auth(m.JWT), m.Handler.SearchUsers)
}
