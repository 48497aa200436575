package db

import (
	"context"
	"errors"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrCartItemNotFound 購物車項目不存在
var ErrCartItemNotFound = errors.New("cart item not found")

type CartRepo struct {
	db *DbDao
}

func NewCartRepo(db *DbDao) *CartRepo {
	return &CartRepo{db: db}
}

// WithTx 回傳綁定交易的repo
func (s *CartRepo) WithTx(tx *gorm.DB) ICartRepository {
	return &CartRepo{db: NewDbDao(tx)}
}

// Read - 查詢用戶的購物車，帶出商品資訊
func (s *CartRepo) GetCartItems(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&items).Error
	return items, err
}

// Read - 根據 (user, product) 查詢單一項目
func (s *CartRepo) GetCartItem(ctx context.Context, userID, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Read - 根據項目ID查詢，限定本人
func (s *CartRepo) GetCartItemByID(ctx context.Context, userID, cartItemID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("cart_item_id = ? AND user_id = ?", cartItemID, userID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert - 首次加入建立新列，重複加入累加數量
func (s *CartRepo) UpsertCartItem(ctx context.Context, item *model.CartItem) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", item.Quantity),
		}),
	}).Omit("Product").Create(item).Error
}

// Update - 更新項目數量
func (s *CartRepo) UpdateQuantity(ctx context.Context, cartItemID uint, quantity int) error {
	result := s.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("cart_item_id = ?", cartItemID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Delete - 移除單一項目
func (s *CartRepo) RemoveCartItem(ctx context.Context, cartItemID uint) error {
	result := s.db.WithContext(ctx).Unscoped().Delete(&model.CartItem{}, cartItemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Delete - 清空用戶購物車，下單成功後整車清除
func (s *CartRepo) ClearByUserID(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Unscoped().
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}

var _ ICartRepository = (*CartRepo)(nil)
