package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/furnimart/furnimart-backend/config"
	"github.com/furnimart/furnimart-backend/internal/app/controller"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/app/service"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/furnimart/furnimart-backend/internal/router"
	"github.com/furnimart/furnimart-backend/internal/scheduler"
	"github.com/furnimart/furnimart-backend/internal/storage"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"github.com/furnimart/furnimart-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting FURNIMART Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize Redis for token blacklisting. The server runs without it;
	// logout then relies on token expiry alone.
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Failed to connect to Redis - token blacklisting disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	wishlistRepo := repository.NewWishlistRepository(db.GetDB())
	addressRepo := repository.NewAddressRepository(db.GetDB())
	settingsRepo := repository.NewSettingsRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(userRepo, &cfg.JWT)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo)
	reviewService := service.NewReviewService(reviewRepo, orderRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo)
	addressService := service.NewAddressService(addressRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize S3 storage
	s3Storage := storage.NewS3Storage(&cfg.S3)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService)
	orderController := controller.NewOrderController(orderService)
	reviewController := controller.NewReviewController(reviewService)
	wishlistController := controller.NewWishlistController(wishlistService)
	addressController := controller.NewAddressController(addressService)
	settingsController := controller.NewSettingsController(settingsService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Start order completion scheduler
	completionScheduler := scheduler.NewOrderCompletionScheduler(orderService)
	if err := completionScheduler.Start(); err != nil {
		logger.Fatal("Failed to start order completion scheduler", err)
	}
	defer completionScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		orderController,
		reviewController,
		wishlistController,
		addressController,
		settingsController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
