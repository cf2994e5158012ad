package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/go-shop-cart/internal/application"
	"github.com/oksasatya/go-shop-cart/internal/domain/entity"
	"github.com/oksasatya/go-shop-cart/pkg/response"
)

type UserHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type addressRequest struct {
	Country    string `json:"country" binding:"required"`
	State      string `json:"state" binding:"required"`
	Street     string `json:"street" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
}

type registerRequest struct {
	Email       string         `json:"email" binding:"required,email"`
	Password    string         `json:"password" binding:"required,pwd"`
	FullName    string         `json:"fullName" binding:"required"`
	Age         *int           `json:"age" binding:"required,gte=0"`
	Address     addressRequest `json:"address"`
	PhoneNumber string         `json:"phoneNumber" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type addressView struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
}

type userView struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	FullName    string      `json:"fullName"`
	Age         int         `json:"age"`
	Address     addressView `json:"address"`
	PhoneNumber string      `json:"phoneNumber"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func toUserView(u *entity.User) *userView {
	if u == nil {
		return nil
	}
	return &userView{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Age:      u.Age,
		Address: addressView{
			Country:    u.Address.Country,
			State:      u.Address.State,
			Street:     u.Address.Street,
			PostalCode: u.Address.PostalCode,
		},
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
	}
}

// Register POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}
	token, err := h.Svc.Register(c.Request.Context(), userapp.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Age:      *req.Age,
		Address: entity.Address{
			Country:    req.Address.Country,
			State:      req.Address.State,
			Street:     req.Address.Street,
			PostalCode: req.Address.PostalCode,
		},
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tokenResponse{Token: token})
}

// ListUsers GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]*userView, 0, len(users))
	for _, u := range users {
		out = append(out, toUserView(u))
	}
	response.Success(c, http.StatusOK, out)
}

// GetUser GET /api/users/:id answers null for unknown or malformed ids.
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Success[*userView](c, http.StatusOK, nil)
		return
	}
	u, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserView(u))
}

// SearchUsers GET /api/search/users?q=&size= (auth required)
func (h *UserHandler) SearchUsers(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	docs, err := h.Svc.SearchUsers(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, docs)
}
