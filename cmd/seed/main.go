package main

import (
	"context"
	"errors"

	"github.com/Web-Master-pro-max/ecommerce-project/internal/config"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/domain/model"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/infra/repository/db"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// 初始化管理員帳號與範例商品目錄
// 冪等性：已存在的資料不會重複寫入
func main() {
	cf := config.GetConfig()

	logger.Initialize(cf.Environment)
	defer logger.Sync()
	log := logger.Log

	conn, err := db.GetDbConn(cf.DbName, cf.DbHost, cf.DbPort, cf.DbUser, cf.DbPas, cf.DbSSLMode)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	dbDao := db.NewDbDao(conn)
	if err := dbDao.InitMigrate(); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	ctx := context.Background()
	userRepo := db.NewUserRepo(dbDao)
	productRepo := db.NewProductRepo(dbDao)

	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatal("failed to seed admin", zap.Error(err))
	}
	if err := seedProducts(ctx, dbDao, productRepo); err != nil {
		log.Fatal("failed to seed products", zap.Error(err))
	}

	log.Info("seed complete")
}

func seedAdmin(ctx context.Context, userRepo db.IUserRepository) error {
	const adminEmail = "admin@example.com"

	_, err := userRepo.GetUserByEmail(ctx, adminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, db.ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = userRepo.CreateUser(ctx, &model.User{
		Name:     "Admin",
		Email:    adminEmail,
		Password: string(hashed),
		Role:     model.RoleAdmin,
	})
	return err
}

func seedProducts(ctx context.Context, dbDao *db.DbDao, productRepo db.IProductRepository) error {
	var count int64
	if err := dbDao.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []model.Product{
		{Name: "iPhone 15 Pro", Description: "Latest Apple smartphone with advanced camera system", Price: decimal.NewFromInt(99999), Stock: 50, Category: "Electronics"},
		{Name: "Samsung Galaxy S24", Description: "Flagship Android device with powerful processor", Price: decimal.NewFromInt(79999), Stock: 45, Category: "Electronics"},
		{Name: "MacBook Pro 14\"", Description: "Professional laptop with M3 Max chip", Price: decimal.NewFromInt(199999), Stock: 25, Category: "Electronics"},
		{Name: "Sony WH-1000XM5", Description: "Premium noise-cancelling headphones", Price: decimal.NewFromInt(28999), Stock: 60, Category: "Electronics"},
		{Name: "Kindle Paperwhite", Description: "E-reader with waterproof display", Price: decimal.NewFromInt(14999), Stock: 50, Category: "Electronics"},
		{Name: "Nike Air Max 90", Description: "Classic sneakers with Air cushioning", Price: decimal.NewFromInt(7999), Stock: 100, Category: "Fashion"},
		{Name: "Levi's 501 Jeans", Description: "Iconic denim jeans", Price: decimal.NewFromInt(4999), Stock: 110, Category: "Fashion"},
		{Name: "Ray-Ban Aviator", Description: "Classic aviator sunglasses", Price: decimal.NewFromInt(14999), Stock: 50, Category: "Fashion"},
		{Name: "Coach Handbag", Description: "Premium leather handbag", Price: decimal.NewFromInt(19999), Stock: 30, Category: "Fashion"},
		{Name: "Winter Jacket", Description: "Warm insulated jacket", Price: decimal.NewFromInt(7999), Stock: 50, Category: "Fashion"},
	}

	for i := range products {
		if err := productRepo.CreateProduct(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}
