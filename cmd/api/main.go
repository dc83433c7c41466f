package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/georgekarlr/beauty-salon-sub000/internal/application/service"
	"github.com/georgekarlr/beauty-salon-sub000/internal/config"
	"github.com/georgekarlr/beauty-salon-sub000/internal/infrastructure/gateway"
	"github.com/georgekarlr/beauty-salon-sub000/internal/presentation/http/handler"
	"github.com/georgekarlr/beauty-salon-sub000/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize logger
	var logger *zap.Logger
	var err error
	if cfg.App.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize the commerce gateway client
	commerceGateway := gateway.NewHTTPGateway(&cfg.Gateway, logger)
	defer commerceGateway.Close()

	// Initialize services
	checkoutService := service.NewCheckoutService(commerceGateway, logger, cfg.Checkout.DefaultTaxRatePercent)
	salesService := service.NewSalesService(commerceGateway, logger)

	// Initialize handlers
	handlers := &routes.Handlers{
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Sales:    handler.NewSalesHandler(salesService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:    cfg,
		Logger: logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logger.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
	)

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
