package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/asshop/storefront/internal/api/handlers"
	"github.com/asshop/storefront/internal/config"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, deps *handlers.Deps, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Shop routes
		v1.GET("/store", handlers.HandleGetStoreInfo(deps))
		v1.GET("/products", handlers.HandleListProducts(deps))
		v1.GET("/products/:id", handlers.HandleGetProduct(deps))
		v1.GET("/orders", handlers.HandleListOrders(deps))

		// Cart routes
		v1.GET("/cart", handlers.HandleGetCart(deps))
		v1.POST("/cart/items", handlers.HandleAddCartItem(deps))
		v1.PATCH("/cart/items/:id", handlers.HandleUpdateCartItem(deps))
		v1.DELETE("/cart/items/:id", handlers.HandleRemoveCartItem(deps))
		v1.DELETE("/cart", handlers.HandleClearCart(deps))

		// Checkout routes
		v1.POST("/checkout", handlers.HandleBeginCheckout(deps))
		v1.GET("/checkout", handlers.HandleGetCheckout(deps))
		v1.PUT("/checkout/shipping", handlers.HandleSetShipping(deps))
		v1.PUT("/checkout/payment", handlers.HandleSetPayment(deps))
		v1.POST("/checkout/advance", handlers.HandleAdvance(deps))
		v1.POST("/checkout/back", handlers.HandleBack(deps))
		v1.POST("/checkout/discount", handlers.HandleApplyDiscount(deps))
		v1.DELETE("/checkout/discount", handlers.HandleRemoveDiscount(deps))
		v1.POST("/checkout/place", handlers.HandlePlaceOrder(deps))

		// Admin routes (back office)
		adminRoutes := v1.Group("/admin")
		{
			adminRoutes.GET("/settings", handlers.HandleGetSettings(deps))
			adminRoutes.PATCH("/settings", handlers.HandleUpdateSettings(deps))
			adminRoutes.GET("/delivery-prices", handlers.HandleGetDeliveryPrices(deps))
			adminRoutes.PUT("/delivery-prices", handlers.HandleReplaceDeliveryPrices(deps))
			adminRoutes.GET("/discount-codes", handlers.HandleListDiscountCodes(deps))
			adminRoutes.POST("/discount-codes", handlers.HandleAddDiscountCode(deps))
			adminRoutes.PATCH("/discount-codes/:id", handlers.HandleUpdateDiscountCode(deps))
			adminRoutes.DELETE("/discount-codes/:id", handlers.HandleDeleteDiscountCode(deps))
			adminRoutes.GET("/orders", handlers.HandleAdminListOrders(deps))
			adminRoutes.POST("/products", handlers.HandleAddProduct(deps))
			adminRoutes.PUT("/products/:id", handlers.HandleUpdateProduct(deps))
			adminRoutes.DELETE("/products/:id", handlers.HandleDeleteProduct(deps))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
