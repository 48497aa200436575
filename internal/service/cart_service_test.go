package service

import (
	"context"
	"testing"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CartServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	cartService *CartService
	productRepo db.IProductRepository
}

// SetupSuite 在測試套件開始前執行
func (suite *CartServiceTestSuite) SetupSuite() {
	conn, err := db.GetDbConn("ecommerce_test", "localhost", "5432", "postgres", "password", "disable")
	require.NoError(suite.T(), err)

	dbDao := db.NewDbDao(conn)
	require.NoError(suite.T(), dbDao.InitMigrate())

	cartRepo := db.NewCartRepo(dbDao)
	productRepo := db.NewProductRepo(dbDao)

	suite.db = conn
	suite.productRepo = productRepo
	suite.cartService = NewCartService(cartRepo, productRepo)
}

// SetupTest 在每個測試前執行
func (suite *CartServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM cart_items")
	suite.db.Exec("DELETE FROM products")
}

// TearDownSuite 在測試套件結束後執行
func (suite *CartServiceTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *CartServiceTestSuite) createProduct(name string, price int64, stock int) *model.Product {
	product := &model.Product{
		Name:     name,
		Price:    decimal.NewFromInt(price),
		Stock:    stock,
		Category: "Test",
	}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))
	return product
}

// 加入購物車：總額以現價計、累計數量不可超過庫存
func (suite *CartServiceTestSuite) TestAddToCart() {
	ctx := context.Background()
	product := suite.createProduct("Cart Product", 100, 5)
	const userID = uint(1)

	view, err := suite.cartService.AddToCart(ctx, userID, product.ProductID, 2)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), view.Items, 1)
	require.True(suite.T(), decimal.NewFromInt(200).Equal(view.Total))

	// 重複加入累加，2+3=5還在庫存內
	view, err = suite.cartService.AddToCart(ctx, userID, product.ProductID, 3)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 5, view.Items[0].Quantity)
	require.True(suite.T(), decimal.NewFromInt(500).Equal(view.Total))

	// 再加就超過庫存
	_, err = suite.cartService.AddToCart(ctx, userID, product.ProductID, 1)
	require.ErrorIs(suite.T(), err, ErrInsufficientStock)

	_, err = suite.cartService.AddToCart(ctx, userID, 99999, 1)
	require.ErrorIs(suite.T(), err, ErrProductNotFound)
}

// 購物車總額跟著商品現價變動
func (suite *CartServiceTestSuite) TestGetCartUsesLivePrice() {
	ctx := context.Background()
	product := suite.createProduct("Live Price Product", 100, 10)
	const userID = uint(1)

	_, err := suite.cartService.AddToCart(ctx, userID, product.ProductID, 2)
	require.NoError(suite.T(), err)

	product.Price = decimal.NewFromInt(150)
	require.NoError(suite.T(), suite.productRepo.UpdateProduct(ctx, product))

	view, err := suite.cartService.GetCart(ctx, userID)
	require.NoError(suite.T(), err)
	require.True(suite.T(), decimal.NewFromInt(300).Equal(view.Total))
}

func (suite *CartServiceTestSuite) TestUpdateCartItem() {
	ctx := context.Background()
	product := suite.createProduct("Update Product", 100, 5)
	const userID = uint(1)

	view, err := suite.cartService.AddToCart(ctx, userID, product.ProductID, 1)
	require.NoError(suite.T(), err)
	itemID := view.Items[0].CartItemID

	view, err = suite.cartService.UpdateCartItem(ctx, userID, itemID, 4)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 4, view.Items[0].Quantity)

	_, err = suite.cartService.UpdateCartItem(ctx, userID, itemID, 6)
	require.ErrorIs(suite.T(), err, ErrInsufficientStock)

	_, err = suite.cartService.UpdateCartItem(ctx, userID, itemID, 0)
	require.ErrorIs(suite.T(), err, ErrInvalidQuantity)

	// 別人的購物車項目視同不存在
	_, err = suite.cartService.UpdateCartItem(ctx, userID+1, itemID, 2)
	require.ErrorIs(suite.T(), err, ErrCartItemNotFound)
}

func (suite *CartServiceTestSuite) TestRemoveAndClear() {
	ctx := context.Background()
	productA := suite.createProduct("Remove A", 100, 10)
	productB := suite.createProduct("Remove B", 50, 10)
	const userID = uint(1)

	view, err := suite.cartService.AddToCart(ctx, userID, productA.ProductID, 1)
	require.NoError(suite.T(), err)
	itemID := view.Items[0].CartItemID

	_, err = suite.cartService.AddToCart(ctx, userID, productB.ProductID, 2)
	require.NoError(suite.T(), err)

	view, err = suite.cartService.RemoveFromCart(ctx, userID, itemID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), view.Items, 1)
	require.True(suite.T(), decimal.NewFromInt(100).Equal(view.Total))

	require.NoError(suite.T(), suite.cartService.ClearCart(ctx, userID))

	view, err = suite.cartService.GetCart(ctx, userID)
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), view.Items)
	require.True(suite.T(), view.Total.IsZero())
}

func TestCartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CartServiceTestSuite))
}
