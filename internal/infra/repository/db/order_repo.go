package db

import (
	"context"
	"errors"
	"time"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"gorm.io/gorm"
)

// ErrOrderNotFound 訂單不存在
var ErrOrderNotFound = errors.New("order not found")

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// WithTx 回傳綁定交易的repo
func (s *OrderRepo) WithTx(tx *gorm.DB) IOrderRepository {
	return &OrderRepo{db: NewDbDao(tx)}
}

// Create - 創建訂單
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Omit("OrderItems").Create(order).Error
}

// Create - 創建訂單項目
func (s *OrderRepo) CreateOrderItems(ctx context.Context, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Omit("Product").Create(&items).Error
}

// Read - 根據ID查詢訂單，帶出項目、商品與下單用戶
func (s *OrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Preload("User").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 根據用戶ID查詢訂單，新的在前
func (s *OrderRepo) GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// Read - 查詢所有訂單，新的在前
func (s *OrderRepo) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// Read - 根據日期範圍查詢訂單
func (s *OrderRepo) GetOrdersByDateRange(ctx context.Context, start, end time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).
		Preload("OrderItems").
		Where("order_date BETWEEN ? AND ?", start, end).
		Find(&orders).Error
	return orders, err
}

// Update - 更新訂單狀態
func (s *OrderRepo) UpdateOrderStatus(ctx context.Context, id uint, status model.OrderStatus) error {
	result := s.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

var _ IOrderRepository = (*OrderRepo)(nil)
