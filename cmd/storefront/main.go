package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/asshop/storefront/internal/api"
	"github.com/asshop/storefront/internal/api/handlers"
	"github.com/asshop/storefront/internal/cart"
	"github.com/asshop/storefront/internal/catalog"
	"github.com/asshop/storefront/internal/config"
	"github.com/asshop/storefront/internal/i18n"
	"github.com/asshop/storefront/internal/kvstore"
	"github.com/asshop/storefront/internal/metrics"
	"github.com/asshop/storefront/internal/orders"
	"github.com/asshop/storefront/internal/pricing"
	"github.com/asshop/storefront/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Open the local store file
	kv, err := kvstore.OpenBolt(cfg.Store.DataPath)
	if err != nil {
		logger.Fatal("Failed to open store file", zap.Error(err))
	}
	defer kv.Close()

	// Build the stores and the pricing engine
	configStore := store.NewConfigStore(kv, logger)
	productCatalog := catalog.New(kv, logger)
	orderRepo := orders.NewRepository(kv, logger)
	shoppingCart := cart.New(cfg.Checkout.DefaultItemWeight)

	pricer := pricing.NewDeliveryPricer(configStore)
	validator := pricing.NewDiscountValidator(configStore)
	calculator := pricing.NewCalculator(configStore, pricer)

	deps := &handlers.Deps{
		Config:     cfg,
		Logger:     logger,
		Store:      configStore,
		Catalog:    productCatalog,
		Cart:       shoppingCart,
		Orders:     orderRepo,
		Validator:  validator,
		Calculator: calculator,
		Metrics:    metrics.NewStoreMetrics(),
		Translator: i18n.New("en"),
		Session:    handlers.NewCheckoutSession(),
	}

	router := api.NewRouter(cfg, deps, logger)

	logger.Info("Starting storefront",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("data_path", cfg.Store.DataPath),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
