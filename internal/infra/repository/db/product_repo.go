package db

import (
	"context"
	"errors"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrProductStockNotEnough 商品庫存不足
	ErrProductStockNotEnough = errors.New("product stock not enough")
)

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

// WithTx 回傳綁定交易的repo，供下單流程在單一交易內組合使用
func (s *ProductRepo) WithTx(tx *gorm.DB) IProductRepository {
	return &ProductRepo{db: NewDbDao(tx)}
}

// Create - 創建商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// Read - 根據ID查詢商品
func (s *ProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 依條件分頁查詢商品目錄
func (s *ProductRepo) GetProductsFiltered(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Product{})

	// 應用條件
	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.MinPrice != "" {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice != "" {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	// 計算總數
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "name_asc":
		query = query.Order("name ASC")
	default:
		query = query.Order("created_at DESC")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	// 分頁查詢
	err := query.Offset(offset).Limit(pageSize).Find(&products).Error
	return products, total, err
}

// Read - 查詢所有商品分類
func (s *ProductRepo) GetAllCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.db.WithContext(ctx).Model(&model.Product{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

// Update - 更新商品
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

// Delete - 軟刪除商品
func (s *ProductRepo) DeleteProduct(ctx context.Context, productID uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Product{}, productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Update - 增加庫存
func (s *ProductRepo) AddStock(ctx context.Context, productID uint, quantity int) error {
	return s.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", quantity)).Error
}

// Update - 扣除庫存
// 扣減在資料庫端以相對運算執行，並帶有 stock >= quantity 條件，
// 併發下單時不會發生lost update，也不會把庫存扣到負數
func (s *ProductRepo) DeductStock(ctx context.Context, productID uint, quantity int) error {
	result := s.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// 區分商品不存在與庫存不足
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Product{}).
			Where("product_id = ?", productID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrProductNotFound
		}
		return ErrProductStockNotEnough
	}
	return nil
}

var _ IProductRepository = (*ProductRepo)(nil)
