package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Web-Master-pro-max/ecommerce-project/api/handlers"
	"github.com/Web-Master-pro-max/ecommerce-project/api/middleware"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/infra/repository/redis_repo"
	"github.com/Web-Master-pro-max/ecommerce-project/internal/token"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

type Handlers struct {
	Auth    *handlers.AuthHandler
	Product *handlers.ProductHandler
	Cart    *handlers.CartHandler
	Order   *handlers.OrderHandler
}

func NewServer(addr string, env string, h Handlers, sessionRepo *redis_repo.SessionRepo, tokenMaker *token.JWTMaker, logger *zap.Logger) *Server {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.ResolveActor(sessionRepo, tokenMaker))

	setupRoutes(router, h)

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

func setupRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", middleware.RequireAuth(), h.Auth.Me)
		}

		users := api.Group("/users")
		{
			users.GET("/", middleware.RequireAdmin(), h.Auth.ListUsers)
			users.PUT("/profile", middleware.RequireAuth(), h.Auth.UpdateProfile)
		}

		products := api.Group("/products")
		{
			products.GET("/", h.Product.ListProducts)
			products.GET("/:id", h.Product.GetProduct)
			products.GET("/categories/all", h.Product.GetCategories)
			products.POST("/", middleware.RequireAdmin(), h.Product.CreateProduct)
			products.PUT("/:id", middleware.RequireAdmin(), h.Product.UpdateProduct)
			products.DELETE("/:id", middleware.RequireAdmin(), h.Product.DeleteProduct)
		}

		cart := api.Group("/cart", middleware.RequireAuth())
		{
			cart.GET("/", h.Cart.GetCart)
			cart.POST("/", h.Cart.AddToCart)
			cart.PUT("/:id", h.Cart.UpdateCartItem)
			cart.DELETE("/:id", h.Cart.RemoveFromCart)
			cart.DELETE("/", h.Cart.ClearCart)
		}

		orders := api.Group("/orders")
		{
			// 下單允許訪客，身份由ResolveActor決定
			orders.POST("/", h.Order.CreateOrder)
			orders.GET("/", middleware.RequireAuth(), h.Order.ListOrders)
			orders.GET("/:id", middleware.RequireAuth(), h.Order.GetOrder)
			orders.PUT("/:id/status", middleware.RequireAdmin(), h.Order.UpdateOrderStatus)
			orders.GET("/reports/sales", middleware.RequireAdmin(), h.Order.GetSalesReport)
		}

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}
}

func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.httpServer.Shutdown(ctx)
}
