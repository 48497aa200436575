package service

import (
	"context"
	"errors"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/infra/repository/db"
	"github.com/shopspring/decimal"
)

var (
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// CartView 購物車內容與以現價計算的總額
type CartView struct {
	Items []model.CartItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
}

type ICartService interface {
	GetCart(ctx context.Context, userID uint) (*CartView, error)
	AddToCart(ctx context.Context, userID, productID uint, quantity int) (*CartView, error)
	UpdateCartItem(ctx context.Context, userID, cartItemID uint, quantity int) (*CartView, error)
	RemoveFromCart(ctx context.Context, userID, cartItemID uint) (*CartView, error)
	ClearCart(ctx context.Context, userID uint) error
}

type CartService struct {
	cartRepo    db.ICartRepository
	productRepo db.IProductRepository
}

func NewCartService(cartRepo db.ICartRepository, productRepo db.IProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// 購物車總額永遠以商品現價計算，價格快照只發生在下單當下
func (c *CartService) GetCart(ctx context.Context, userID uint) (*CartView, error) {
	items, err := c.cartRepo.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := decimal.NewFromInt(0)
	for _, item := range items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return &CartView{Items: items, Total: total}, nil
}

// 首次加入建立新列，重複加入累加數量，累計數量不可超過現有庫存
func (c *CartService) AddToCart(ctx context.Context, userID, productID uint, quantity int) (*CartView, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := c.productRepo.GetProductByID(ctx, productID)
	if errors.Is(err, db.ErrProductNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, ErrInsufficientStock
	}

	existing, err := c.cartRepo.GetCartItem(ctx, userID, productID)
	if err != nil && !errors.Is(err, db.ErrCartItemNotFound) {
		return nil, err
	}
	if existing != nil && existing.Quantity+quantity > product.Stock {
		return nil, ErrInsufficientStock
	}

	item := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := c.cartRepo.UpsertCartItem(ctx, item); err != nil {
		return nil, err
	}

	return c.GetCart(ctx, userID)
}

func (c *CartService) UpdateCartItem(ctx context.Context, userID, cartItemID uint, quantity int) (*CartView, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := c.cartRepo.GetCartItemByID(ctx, userID, cartItemID)
	if errors.Is(err, db.ErrCartItemNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}

	if quantity > item.Product.Stock {
		return nil, ErrInsufficientStock
	}

	if err := c.cartRepo.UpdateQuantity(ctx, item.CartItemID, quantity); err != nil {
		return nil, err
	}

	return c.GetCart(ctx, userID)
}

func (c *CartService) RemoveFromCart(ctx context.Context, userID, cartItemID uint) (*CartView, error) {
	item, err := c.cartRepo.GetCartItemByID(ctx, userID, cartItemID)
	if errors.Is(err, db.ErrCartItemNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := c.cartRepo.RemoveCartItem(ctx, item.CartItemID); err != nil {
		return nil, err
	}

	return c.GetCart(ctx, userID)
}

func (c *CartService) ClearCart(ctx context.Context, userID uint) error {
	return c.cartRepo.ClearByUserID(ctx, userID)
}

var _ ICartService = (*CartService)(nil)
