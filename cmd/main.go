package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Web-Master-pro-max/ecommerce-project/api"
	"github.com/Web-Master-pro-max/ecommerce-project/api/handlers"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/config"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/infra/repository/db"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/infra/repository/redis_repo"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/logger"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/service"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/token"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

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

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cf.RedisAddr,
		Password: cf.RedisPassword,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("failed to connect redis", zap.Error(err))
	}

	sessionTTL, err := time.ParseDuration(cf.SessionTTL)
	if err != nil {
		log.Fatal("invalid SESSION_TTL", zap.Error(err))
	}
	tokenDuration, err := time.ParseDuration(cf.TokenDuration)
	if err != nil {
		log.Fatal("invalid AUTH_TOKEN_DURATION", zap.Error(err))
	}

	userRepo := db.NewUserRepo(dbDao)
	productRepo := db.NewProductRepo(dbDao)
	cartRepo := db.NewCartRepo(dbDao)
	orderRepo := db.NewOrderRepo(dbDao)
	sessionRepo := redis_repo.NewSessionRepo(redisClient, sessionTTL)
	tokenMaker := token.NewJWTMaker(cf.TokenKey, tokenDuration)

	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(dbDao, orderRepo, productRepo, cartRepo, userRepo)

	server := api.NewServer(":"+cf.ServerPort, cf.Environment, api.Handlers{
		Auth:    handlers.NewAuthHandler(userService, sessionRepo, tokenMaker),
		Product: handlers.NewProductHandler(productService),
		Cart:    handlers.NewCartHandler(cartService),
		Order:   handlers.NewOrderHandler(orderService),
	}, sessionRepo, tokenMaker, log)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	log.Info("server shutdown complete")
}
