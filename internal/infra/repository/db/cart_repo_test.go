package db

import (
	"context"
	"testing"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type CartRepoTestSuite struct {
	suite.Suite
	db          *gorm.DB
	cartRepo    *CartRepo
	productRepo *ProductRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *CartRepoTestSuite) SetupSuite() {
	conn, err := GetDbConn("ecommerce_test", "localhost", "5432", "postgres", "password", "disable")
	require.NoError(suite.T(), err)

	dbDao := NewDbDao(conn)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = conn
	suite.cartRepo = NewCartRepo(dbDao)
	suite.productRepo = NewProductRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *CartRepoTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM cart_items")
	suite.db.Exec("DELETE FROM products")
}

// TearDownSuite 在測試套件結束後執行
func (suite *CartRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *CartRepoTestSuite) createProduct(name string, stock int) *model.Product {
	product := &model.Product{
		Name:     name,
		Price:    decimal.NewFromInt(100),
		Stock:    stock,
		Category: "Test",
	}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))
	return product
}

// 重複加入同商品：同一列累加數量，不會多出新列
func (suite *CartRepoTestSuite) TestUpsertCartItemAccumulates() {
	ctx := context.Background()
	product := suite.createProduct("Upsert Product", 100)
	const userID = uint(1)

	require.NoError(suite.T(), suite.cartRepo.UpsertCartItem(ctx, &model.CartItem{
		UserID: userID, ProductID: product.ProductID, Quantity: 2,
	}))
	require.NoError(suite.T(), suite.cartRepo.UpsertCartItem(ctx, &model.CartItem{
		UserID: userID, ProductID: product.ProductID, Quantity: 3,
	}))

	items, err := suite.cartRepo.GetCartItems(ctx, userID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), items, 1)
	require.Equal(suite.T(), 5, items[0].Quantity)

	// Preload帶出商品資訊
	require.Equal(suite.T(), "Upsert Product", items[0].Product.Name)
}

// 不同用戶的購物車互不干擾
func (suite *CartRepoTestSuite) TestCartIsolatedPerUser() {
	ctx := context.Background()
	product := suite.createProduct("Shared Product", 100)

	require.NoError(suite.T(), suite.cartRepo.UpsertCartItem(ctx, &model.CartItem{
		UserID: 1, ProductID: product.ProductID, Quantity: 1,
	}))
	require.NoError(suite.T(), suite.cartRepo.UpsertCartItem(ctx, &model.CartItem{
		UserID: 2, ProductID: product.ProductID, Quantity: 4,
	}))

	itemsA, err := suite.cartRepo.GetCartItems(ctx, 1)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), itemsA, 1)
	require.Equal(suite.T(), 1, itemsA[0].Quantity)

	itemsB, err := suite.cartRepo.GetCartItems(ctx, 2)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 4, itemsB[0].Quantity)
}

func (suite *CartRepoTestSuite) TestUpdateQuantity() {
	ctx := context.Background()
	product := suite.createProduct("Qty Product", 100)

	item := &model.CartItem{UserID: 1, ProductID: product.ProductID, Quantity: 1}
	require.NoError(suite.T(), suite.cartRepo.UpsertCartItem(ctx, item))

	require.NoError(suite.T(), suite.cartRepo.UpdateQuantity(ctx, item.CartItemID, 7))

	reloaded, err := suite.cartRepo.GetCartItemByID(ctx, 1, item.CartItemID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 7, reloaded.Quantity)

	require.ErrorIs(suite.T(), suite.cartRepo.UpdateQuantity(ctx, 99999, 1), ErrCartItemNotFound)
}

// GetCartItemByID 限定本人，拿別人的項目視同不存在
func (suite *CartRepoTestSuite) TestGetCartItemByIDScopedToUser() {
	ctx := context.Background()
	product := suite.createProduct("Scoped Product", 100)

	item := &model.CartItem{UserID: 1, ProductID: product.ProductID, Quantity: 1}
	require.NoError(suite.T(), suite.cartRepo.UpsertCartItem(ctx, item))

	_, err := suite.cartRepo.GetCartItemByID(ctx, 2, item.CartItemID)
	require.ErrorIs(suite.T(), err, ErrCartItemNotFound)
}

func (suite *CartRepoTestSuite) TestRemoveAndClear() {
	ctx := context.Background()
	productA := suite.createProduct("Remove A", 100)
	productB := suite.createProduct("Remove B", 100)

	itemA := &model.CartItem{UserID: 1, ProductID: productA.ProductID, Quantity: 1}
	require.NoError(suite.T(), suite.cartRepo.UpsertCartItem(ctx, itemA))
	require.NoError(suite.T(), suite.cartRepo.UpsertCartItem(ctx, &model.CartItem{
		UserID: 1, ProductID: productB.ProductID, Quantity: 2,
	}))

	require.NoError(suite.T(), suite.cartRepo.RemoveCartItem(ctx, itemA.CartItemID))

	items, err := suite.cartRepo.GetCartItems(ctx, 1)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), items, 1)

	require.NoError(suite.T(), suite.cartRepo.ClearByUserID(ctx, 1))

	items, err = suite.cartRepo.GetCartItems(ctx, 1)
	require.NoError(suite.T(), err)
	require.Empty(suite.T(), items)

	// 清空後可以重新加入同商品，硬刪除不會留下唯一索引殘骸
	require.NoError(suite.T(), suite.cartRepo.UpsertCartItem(ctx, &model.CartItem{
		UserID: 1, ProductID: productA.ProductID, Quantity: 1,
	}))
}

func TestCartRepoTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepoTestSuite))
}
