package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Web-Master-pro-max/ecommerce-project/api/middleware"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/service"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type createOrderRequest struct {
	CustomerName    string                   `json:"customer_name"`
	Email           string                   `json:"email"`
	Phone           string                   `json:"phone"`
	ShippingAddress string                   `json:"shipping_address"`
	City            string                   `json:"city"`
	State           string                   `json:"state"`
	PostalCode      string                   `json:"postal_code"`
	Country         string                   `json:"country"`
	PaymentMethod   string                   `json:"payment_method"`
	Items           []service.PlaceOrderItem `json:"items"`
}

// POST /api/orders
// 沒帶items就結算已登入用戶的購物車，訪客下單必須帶items
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := service.PlaceOrderParams{
		Actor: middleware.GetActor(c),
		Items: req.Items,
		Profile: service.ShippingProfile{
			CustomerName:    req.CustomerName,
			Email:           req.Email,
			Phone:           req.Phone,
			ShippingAddress: req.ShippingAddress,
			City:            req.City,
			State:           req.State,
			PostalCode:      req.PostalCode,
			Country:         req.Country,
			PaymentMethod:   req.PaymentMethod,
		},
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), params)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"order":   order,
		"id":      order.OrderID,
	})
}

// GET /api/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), uint(orderID), middleware.GetActor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.UpdateOrderStatus(
		c.Request.Context(), uint(orderID), model.OrderStatus(req.Status), middleware.GetActor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// GET /api/orders/reports/sales
func (h *OrderHandler) GetSalesReport(c *gin.Context) {
	start, err := parseDateQuery(c, "start_date", time.Time{})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date"})
		return
	}
	end, err := parseDateQuery(c, "end_date", time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date"})
		return
	}

	report, err := h.orderService.GetSalesReport(c.Request.Context(), start, end, middleware.GetActor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "report": report})
}

func parseDateQuery(c *gin.Context, key string, fallback time.Time) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return time.Parse("2006-01-02", raw)
}
