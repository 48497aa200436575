package handlers

import (
	"errors"
	"net/http"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/service"
	"github.com/gin-gonic/gin"
)

// 服務層錯誤統一對應HTTP狀態碼
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, service.ErrOrderNotExist),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrUserNotExist):
		return http.StatusNotFound
	case errors.Is(err, service.ErrCartEmpty),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidStock):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}
