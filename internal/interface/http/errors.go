package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-cart/internal/application"
	"github.com/oksasatya/go-shop-cart/internal/domain/entity"
	"github.com/oksasatya/go-shop-cart/pkg/helpers"
	"github.com/oksasatya/go-shop-cart/pkg/response"
	"github.com/oksasatya/go-shop-cart/pkg/validation"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// Business-rule failures; anything else is a StoreError.
var errorTable = []errorMapping{
	{application.ErrAlreadyRegistered, http.StatusBadRequest, "AlreadyRegistered"},
	{application.ErrNotRegistered, http.StatusBadRequest, "NotRegistered"},
	{application.ErrInvalidCredentials, http.StatusBadRequest, "InvalidCredentials"},
	{application.ErrPasswordTooLong, http.StatusBadRequest, "ValidationError"},
	{entity.ErrCartNotFound, http.StatusBadRequest, "CartNotFound"},
	{entity.ErrCartEmpty, http.StatusBadRequest, "CartEmpty"},
	{entity.ErrItemNotFound, http.StatusBadRequest, "ItemNotFound"},
	{entity.ErrInvalidQuantity, http.StatusBadRequest, "InvalidQuantity"},
	{entity.ErrInvalidItem, http.StatusBadRequest, "ValidationError"},
}

func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			response.Error(c, m.status, m.err.Error(), gin.H{"code": m.code})
			return
		}
	}
	helpers.LogError(logger, "request failed", err, logrus.Fields{
		"request_id": c.GetString("request_id"),
		"path":       c.FullPath(),
	})
	response.Error(c, http.StatusInternalServerError, "server error", gin.H{"code": "StoreError"})
}

func writeValidationError(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, "invalid payload", gin.H{
		"code":   "ValidationError",
		"fields": validation.ToDetails(err),
	})
}
