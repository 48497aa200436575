package db

import (
	"context"
	"time"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"gorm.io/gorm"
)

// ProductFilter 商品目錄查詢條件
type ProductFilter struct {
	Category string
	Search   string
	MinPrice string
	MaxPrice string
	Sort     string // price_asc, price_desc, name_asc, 預設 created_at DESC
	Page     int
	PageSize int
}

// IProductRepository Product 相關操作介面
type IProductRepository interface {
	WithTx(tx *gorm.DB) IProductRepository
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, productID uint) (*model.Product, error)
	GetProductsFiltered(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error)
	GetAllCategories(ctx context.Context) ([]string, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, productID uint) error
	AddStock(ctx context.Context, productID uint, quantity int) error
	DeductStock(ctx context.Context, productID uint, quantity int) error
}

// ICartRepository CartItem 相關操作介面
type ICartRepository interface {
	WithTx(tx *gorm.DB) ICartRepository
	GetCartItems(ctx context.Context, userID uint) ([]model.CartItem, error)
	GetCartItem(ctx context.Context, userID, productID uint) (*model.CartItem, error)
	GetCartItemByID(ctx context.Context, userID, cartItemID uint) (*model.CartItem, error)
	UpsertCartItem(ctx context.Context, item *model.CartItem) error
	UpdateQuantity(ctx context.Context, cartItemID uint, quantity int) error
	RemoveCartItem(ctx context.Context, cartItemID uint) error
	ClearByUserID(ctx context.Context, userID uint) error
}

// IOrderRepository Order 相關操作介面
type IOrderRepository interface {
	WithTx(tx *gorm.DB) IOrderRepository
	CreateOrder(ctx context.Context, order *model.Order) error
	CreateOrderItems(ctx context.Context, items []model.OrderItem) error
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	GetOrdersByDateRange(ctx context.Context, start, end time.Time) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) error
}

// IUserRepository User 相關操作介面
type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uint) error
}
