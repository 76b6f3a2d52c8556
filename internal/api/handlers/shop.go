package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HandleListProducts handles GET /v1/products
func HandleListProducts(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"products": deps.Catalog.List()})
	}
}

// HandleGetProduct handles GET /v1/products/:id
func HandleGetProduct(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		product, err := deps.Catalog.GetByID(id)
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// HandleGetStoreInfo handles GET /v1/store
func HandleGetStoreInfo(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings := deps.Store.Settings()
		c.JSON(http.StatusOK, gin.H{
			"name":        settings.StoreName,
			"description": settings.StoreDescription,
			"currency":    settings.Currency,
			"language":    deps.Translator.Language(),
			"rtl":         deps.Translator.IsRTL(),
		})
	}
}

// HandleListOrders handles GET /v1/orders (the buyer's order history)
func HandleListOrders(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"orders": deps.Orders.List()})
	}
}
