package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	cartapp "github.com/oksasatya/go-shop-cart/internal/application"
	"github.com/oksasatya/go-shop-cart/internal/interface/middleware"
	"github.com/oksasatya/go-shop-cart/pkg/response"
)

// CartHandler serves the cart of the authenticated user; the user id always comes from the token.
type CartHandler struct {
	Svc    *cartapp.CartService
	Logger *logrus.Logger
}

func NewCartHandler(svc *cartapp.CartService, logger *logrus.Logger) *CartHandler {
	return &CartHandler{Svc: svc, Logger: logger}
}

type addItemRequest struct {
	ItemID   string   `json:"itemId" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Price    *float64 `json:"price" binding:"required,gte=0"`
	Quantity *int     `json:"quantity" binding:"required"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// Get GET /api/cart
func (h *CartHandler) Get(c *gin.Context) {
	items, err := h.Svc.GetCart(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Add PUT /api/cart
func (h *CartHandler) Add(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}
	cart, err := h.Svc.AddItem(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), cartapp.AddItemInput{
		ItemID:   req.ItemID,
		Name:     req.Name,
		Price:    *req.Price,
		Quantity: *req.Quantity,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cart)
}

// Remove DELETE /api/cart/:item_id
func (h *CartHandler) Remove(c *gin.Context) {
	cart, err := h.Svc.RemoveItem(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("item_id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cart)
}

// UpdateQuantity PUT /api/cart/:item_id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}
	cart, err := h.Svc.UpdateQuantity(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Param("item_id"), *req.Quantity)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, cart)
}
