package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrOrderNotExist    = errors.New("order is not exist")
	ErrAccessDenied     = errors.New("access denied")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

// PlaceOrderItem 明確指定的訂單項目
// Price為nil時以商品現價計算
type PlaceOrderItem struct {
	ProductID uint             `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Price     *decimal.Decimal `json:"price,omitempty"`
}

// ShippingProfile 收件與付款資料，缺漏欄位以用戶資料或預設值補上
type ShippingProfile struct {
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shipping_address"`
	City            string `json:"city"`
	State           string `json:"state"`
	PostalCode      string `json:"postal_code"`
	Country         string `json:"country"`
	PaymentMethod   string `json:"payment_method"`
}

type PlaceOrderParams struct {
	Actor   *model.Actor // nil 表示訪客下單
	Items   []PlaceOrderItem
	Profile ShippingProfile
}

// SalesReport 銷售統計
type SalesReport struct {
	StartDate         time.Time            `json:"start_date"`
	EndDate           time.Time            `json:"end_date"`
	TotalSales        decimal.Decimal      `json:"total_sales"`
	TotalOrders       int                  `json:"total_orders"`
	AverageOrderValue decimal.Decimal      `json:"average_order_value"`
	ProductSales      []ProductSalesReport `json:"product_sales"`
}

type ProductSalesReport struct {
	ProductID     uint            `json:"product_id"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type IOrderService interface {
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*model.Order, error)
	GetOrder(ctx context.Context, orderID uint, actor *model.Actor) (*model.Order, error)
	ListOrders(ctx context.Context, actor *model.Actor) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus, actor *model.Actor) (*model.Order, error)
	GetSalesReport(ctx context.Context, start, end time.Time, actor *model.Actor) (*SalesReport, error)
}

type OrderService struct {
	db          *db.DbDao
	orderRepo   db.IOrderRepository
	productRepo db.IProductRepository
	cartRepo    db.ICartRepository
	userRepo    db.IUserRepository
}

func NewOrderService(dbDao *db.DbDao, orderRepo db.IOrderRepository, productRepo db.IProductRepository, cartRepo db.ICartRepository, userRepo db.IUserRepository) *OrderService {
	return &OrderService{
		db:          dbDao,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		userRepo:    userRepo,
	}
}

/*
下單流程

 1. 解析訂單項目來源：有明確項目就直接使用，否則讀取已登入用戶的購物車
 2. 在單一交易內逐項計價、扣庫存，建立訂單與項目快照
 3. 已登入用戶下單成功後整車清空
 4. 任一步失敗整筆回滾，不會留下部分訂單或部分庫存異動

庫存扣減帶 stock >= quantity 條件，不足時整筆訂單失敗
*/
func (o *OrderService) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*model.Order, error) {
	items, err := o.resolveItems(ctx, params)
	if err != nil {
		return nil, err
	}

	profile, err := o.fillProfileDefaults(ctx, params.Actor, params.Profile)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		CustomerName:    profile.CustomerName,
		Email:           profile.Email,
		Phone:           profile.Phone,
		ShippingAddress: profile.ShippingAddress,
		City:            profile.City,
		State:           profile.State,
		PostalCode:      profile.PostalCode,
		Country:         profile.Country,
		PaymentMethod:   profile.PaymentMethod,
		Status:          model.OrderStatusPending,
		OrderDate:       time.Now().UTC(),
	}
	if params.Actor != nil {
		userID := params.Actor.UserID
		order.UserID = &userID
	}

	err = o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txProductRepo := o.productRepo.WithTx(tx)
		txOrderRepo := o.orderRepo.WithTx(tx)

		total := decimal.NewFromInt(0)
		orderItems := make([]model.OrderItem, 0, len(items))

		for _, item := range items {
			price, err := o.resolveUnitPrice(ctx, txProductRepo, item)
			if err != nil {
				return err
			}

			if err := txProductRepo.DeductStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}

			total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			orderItems = append(orderItems, model.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     price,
			})
		}

		order.TotalAmount = total
		if err := txOrderRepo.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("create order failed: %w", err)
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.OrderID
		}
		if err := txOrderRepo.CreateOrderItems(ctx, orderItems); err != nil {
			return fmt.Errorf("create order items failed: %w", err)
		}

		// 即使明確項目與購物車內容不一致，仍然整車清空
		if params.Actor != nil {
			if err := o.cartRepo.WithTx(tx).ClearByUserID(ctx, params.Actor.UserID); err != nil {
				return fmt.Errorf("clear cart failed: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return o.orderRepo.GetOrderByID(ctx, order.OrderID)
}

// 解析訂單項目來源，前置條件不滿足時不開交易直接拒絕
func (o *OrderService) resolveItems(ctx context.Context, params PlaceOrderParams) ([]PlaceOrderItem, error) {
	if len(params.Items) > 0 {
		for _, item := range params.Items {
			if item.Quantity < 1 {
				return nil, ErrInvalidQuantity
			}
		}
		return params.Items, nil
	}

	if params.Actor == nil {
		return nil, ErrNotAuthenticated
	}

	cartItems, err := o.cartRepo.GetCartItems(ctx, params.Actor.UserID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	items := make([]PlaceOrderItem, 0, len(cartItems))
	for _, ci := range cartItems {
		items = append(items, PlaceOrderItem{
			ProductID: ci.ProductID,
			Quantity:  ci.Quantity,
		})
	}
	return items, nil
}

// 明確給價直接快照，否則以交易內查到的商品現價為準
func (o *OrderService) resolveUnitPrice(ctx context.Context, productRepo db.IProductRepository, item PlaceOrderItem) (decimal.Decimal, error) {
	if item.Price != nil {
		return *item.Price, nil
	}
	product, err := productRepo.GetProductByID(ctx, item.ProductID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return product.Price, nil
}

// 缺漏的收件欄位以用戶資料補上，訪客用固定預設值
func (o *OrderService) fillProfileDefaults(ctx context.Context, actor *model.Actor, profile ShippingProfile) (ShippingProfile, error) {
	if actor != nil {
		user, err := o.userRepo.GetUserByID(ctx, actor.UserID)
		if err != nil {
			return profile, err
		}
		if profile.CustomerName == "" {
			profile.CustomerName = user.Name
		}
		if profile.Email == "" {
			profile.Email = user.Email
		}
		if profile.Phone == "" {
			profile.Phone = user.Phone
		}
		if profile.ShippingAddress == "" {
			profile.ShippingAddress = user.Address
		}
	}
	if profile.CustomerName == "" {
		profile.CustomerName = "Guest"
	}
	if profile.Country == "" {
		profile.Country = "India"
	}
	if profile.PaymentMethod == "" {
		profile.PaymentMethod = "card"
	}
	return profile, nil
}

// 本人或管理員才可讀取，not found與access denied是不同結果
func (o *OrderService) GetOrder(ctx context.Context, orderID uint, actor *model.Actor) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByID(ctx, orderID)
	if errors.Is(err, db.ErrOrderNotFound) {
		return nil, ErrOrderNotExist
	}
	if err != nil {
		return nil, err
	}

	if !actor.HasAdminPrivilege() && !isOwner(order, actor) {
		return nil, ErrAccessDenied
	}
	return order, nil
}

// 管理員看全部，一般用戶只看自己的，新的在前
func (o *OrderService) ListOrders(ctx context.Context, actor *model.Actor) ([]model.Order, error) {
	if actor == nil {
		return nil, ErrNotAuthenticated
	}
	if actor.HasAdminPrivilege() {
		return o.orderRepo.GetAllOrders(ctx)
	}
	return o.orderRepo.GetOrdersByUserID(ctx, actor.UserID)
}

// 僅管理員可更新狀態，只驗證值域不限制轉移順序
func (o *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint, status model.OrderStatus, actor *model.Actor) (*model.Order, error) {
	if !actor.HasAdminPrivilege() {
		return nil, ErrAccessDenied
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	err := o.orderRepo.UpdateOrderStatus(ctx, orderID, status)
	if errors.Is(err, db.ErrOrderNotFound) {
		return nil, ErrOrderNotExist
	}
	if err != nil {
		return nil, err
	}

	return o.orderRepo.GetOrderByID(ctx, orderID)
}

// 銷售統計，僅管理員
func (o *OrderService) GetSalesReport(ctx context.Context, start, end time.Time, actor *model.Actor) (*SalesReport, error) {
	if !actor.HasAdminPrivilege() {
		return nil, ErrAccessDenied
	}

	orders, err := o.orderRepo.GetOrdersByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		StartDate:         start,
		EndDate:           end,
		TotalSales:        decimal.NewFromInt(0),
		TotalOrders:       len(orders),
		AverageOrderValue: decimal.NewFromInt(0),
	}

	productSales := make(map[uint]*ProductSalesReport)
	for _, order := range orders {
		report.TotalSales = report.TotalSales.Add(order.TotalAmount)
		for _, item := range order.OrderItems {
			ps, ok := productSales[item.ProductID]
			if !ok {
				ps = &ProductSalesReport{ProductID: item.ProductID, TotalRevenue: decimal.NewFromInt(0)}
				productSales[item.ProductID] = ps
			}
			ps.TotalQuantity += item.Quantity
			ps.TotalRevenue = ps.TotalRevenue.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalSales.Div(decimal.NewFromInt(int64(report.TotalOrders))).Round(2)
	}

	for _, ps := range productSales {
		report.ProductSales = append(report.ProductSales, *ps)
	}

	return report, nil
}

func isOwner(order *model.Order, actor *model.Actor) bool {
	return actor != nil && order.UserID != nil && *order.UserID == actor.UserID
}

var _ IOrderService = (*OrderService)(nil)
