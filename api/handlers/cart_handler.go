package handlers

import (
	"net/http"
	"strconv"

	"github.com/Web-Master-pro-max/ecommerce-project/api/middleware"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/service"
	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	actor := middleware.GetActor(c)

	cart, err := h.cartService.GetCart(c.Request.Context(), actor.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "items": cart.Items, "total": cart.Total})
}

type addToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// POST /api/cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	actor := middleware.GetActor(c)

	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartService.AddToCart(c.Request.Context(), actor.UserID, req.ProductID, req.Quantity)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item added to cart",
		"items":   cart.Items,
		"total":   cart.Total,
	})
}

type updateCartRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// PUT /api/cart/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	actor := middleware.GetActor(c)

	cartItemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
		return
	}

	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.cartService.UpdateCartItem(c.Request.Context(), actor.UserID, uint(cartItemID), req.Quantity)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "items": cart.Items, "total": cart.Total})
}

// DELETE /api/cart/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	actor := middleware.GetActor(c)

	cartItemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
		return
	}

	cart, err := h.cartService.RemoveFromCart(c.Request.Context(), actor.UserID, uint(cartItemID))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "items": cart.Items, "total": cart.Total})
}

// DELETE /api/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	actor := middleware.GetActor(c)

	if err := h.cartService.ClearCart(c.Request.Context(), actor.UserID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared", "items": []any{}, "total": 0})
}
