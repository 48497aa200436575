package service

import (
	"context"
	"errors"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/infra/repository/db"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("price must be non-negative")
	ErrInvalidStock    = errors.New("stock must be non-negative")
)

// ProductPage 分頁查詢結果
type ProductPage struct {
	Products []model.Product `json:"products"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	Pages    int64           `json:"pages"`
	PageSize int             `json:"limit"`
}

type IProductService interface {
	ListProducts(ctx context.Context, filter db.ProductFilter) (*ProductPage, error)
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	GetCategories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, productID uint) error
}

type ProductService struct {
	productRepo db.IProductRepository
}

func NewProductService(productRepo db.IProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (p *ProductService) ListProducts(ctx context.Context, filter db.ProductFilter) (*ProductPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	products, total, err := p.productRepo.GetProductsFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	pages := total / int64(filter.PageSize)
	if total%int64(filter.PageSize) != 0 {
		pages++
	}

	return &ProductPage{
		Products: products,
		Total:    total,
		Page:     filter.Page,
		Pages:    pages,
		PageSize: filter.PageSize,
	}, nil
}

func (p *ProductService) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := p.productRepo.GetProductByID(ctx, productID)
	if errors.Is(err, db.ErrProductNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (p *ProductService) GetCategories(ctx context.Context) ([]string, error) {
	return p.productRepo.GetAllCategories(ctx)
}

func (p *ProductService) CreateProduct(ctx context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return p.productRepo.CreateProduct(ctx, product)
}

func (p *ProductService) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if _, err := p.GetProduct(ctx, product.ProductID); err != nil {
		return err
	}
	return p.productRepo.UpdateProduct(ctx, product)
}

func (p *ProductService) DeleteProduct(ctx context.Context, productID uint) error {
	err := p.productRepo.DeleteProduct(ctx, productID)
	if errors.Is(err, db.ErrProductNotFound) {
		return ErrProductNotFound
	}
	return err
}

func validateProduct(product *model.Product) error {
	if product.Price.LessThan(decimal.Zero) {
		return ErrInvalidPrice
	}
	if product.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}

var _ IProductService = (*ProductService)(nil)
