package service

import (
	"context"
	"testing"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/infra/repository/db"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type UserServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	userService *UserService
}

// SetupSuite 在測試套件開始前執行
func (suite *UserServiceTestSuite) SetupSuite() {
	conn, err := db.GetDbConn("ecommerce_test", "localhost", "5432", "postgres", "password", "disable")
	require.NoError(suite.T(), err)

	dbDao := db.NewDbDao(conn)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = conn
	suite.userService = NewUserService(db.NewUserRepo(dbDao))
}

// SetupTest 在每個測試前執行
func (suite *UserServiceTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM cart_items")
	suite.db.Exec("DELETE FROM users")
}

// TearDownSuite 在測試套件結束後執行
func (suite *UserServiceTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *UserServiceTestSuite) register(email, password string) *model.User {
	user, err := suite.userService.Register(context.Background(), RegisterParams{
		Name:     "Test User",
		Email:    email,
		Password: password,
	})
	require.NoError(suite.T(), err)
	return user
}

// 註冊：密碼不落明文、角色固定customer、email不可重複
func (suite *UserServiceTestSuite) TestRegister() {
	ctx := context.Background()

	user := suite.register("register@example.com", "secret123")
	require.Equal(suite.T(), model.RoleCustomer, user.Role)
	require.NotEqual(suite.T(), "secret123", user.Password)

	_, err := suite.userService.Register(ctx, RegisterParams{
		Name: "Dup", Email: "register@example.com", Password: "secret123",
	})
	require.ErrorIs(suite.T(), err, ErrEmailAlreadyExists)

	_, err = suite.userService.Register(ctx, RegisterParams{
		Name: "Short", Email: "short@example.com", Password: "abc",
	})
	require.ErrorIs(suite.T(), err, ErrPasswordTooShort)
}

// 驗證失敗不區分帳號不存在與密碼錯誤
func (suite *UserServiceTestSuite) TestAuthenticate() {
	ctx := context.Background()
	suite.register("auth@example.com", "secret123")

	user, err := suite.userService.Authenticate(ctx, "auth@example.com", "secret123")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "auth@example.com", user.Email)

	_, err = suite.userService.Authenticate(ctx, "auth@example.com", "wrongpass")
	require.ErrorIs(suite.T(), err, ErrInvalidCredentials)

	_, err = suite.userService.Authenticate(ctx, "nobody@example.com", "secret123")
	require.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

// 更新個資不會動到角色與密碼
func (suite *UserServiceTestSuite) TestUpdateProfile() {
	ctx := context.Background()
	user := suite.register("profile@example.com", "secret123")
	originalPassword := user.Password

	updated, err := suite.userService.UpdateProfile(ctx, &model.User{
		UserID:  user.UserID,
		Name:    "New Name",
		Phone:   "0987654321",
		Address: "456 New St",
		City:    "Taipei",
		Country: "Taiwan",
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "New Name", updated.Name)
	require.Equal(suite.T(), "Taipei", updated.City)
	require.Equal(suite.T(), model.RoleCustomer, updated.Role)
	require.Equal(suite.T(), originalPassword, updated.Password)

	_, err = suite.userService.UpdateProfile(ctx, &model.User{UserID: 99999, Name: "Ghost"})
	require.ErrorIs(suite.T(), err, ErrUserNotExist)
}

// 部分更新：沒提供的欄位不能被清空
func (suite *UserServiceTestSuite) TestUpdateProfilePartial() {
	ctx := context.Background()
	user := suite.register("partial@example.com", "secret123")

	_, err := suite.userService.UpdateProfile(ctx, &model.User{
		UserID:  user.UserID,
		Name:    "Full Name",
		Phone:   "0911222333",
		Address: "789 Old St",
		City:    "Kaohsiung",
		Country: "Taiwan",
	})
	require.NoError(suite.T(), err)

	// 只改電話
	updated, err := suite.userService.UpdateProfile(ctx, &model.User{
		UserID: user.UserID,
		Phone:  "0944555666",
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "0944555666", updated.Phone)
	require.Equal(suite.T(), "Full Name", updated.Name)
	require.Equal(suite.T(), "789 Old St", updated.Address)
	require.Equal(suite.T(), "Kaohsiung", updated.City)
	require.Equal(suite.T(), "Taiwan", updated.Country)
}

func (suite *UserServiceTestSuite) TestListUsers() {
	ctx := context.Background()
	suite.register("lista@example.com", "secret123")
	suite.register("listb@example.com", "secret123")

	users, err := suite.userService.ListUsers(ctx, &model.Actor{UserID: 1, Role: model.RoleAdmin})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), users, 2)

	_, err = suite.userService.ListUsers(ctx, &model.Actor{UserID: 1, Role: model.RoleCustomer})
	require.ErrorIs(suite.T(), err, ErrAccessDenied)

	_, err = suite.userService.ListUsers(ctx, nil)
	require.ErrorIs(suite.T(), err, ErrAccessDenied)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
