package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asshop/storefront/internal/domain"
	"github.com/asshop/storefront/internal/store"
)

// HandleGetSettings handles GET /v1/admin/settings
func HandleGetSettings(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Store.Settings())
	}
}

// HandleUpdateSettings handles PATCH /v1/admin/settings
func HandleUpdateSettings(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch store.SettingsPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		settings, err := deps.Store.UpdateSettings(patch)
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
			return
		}

		c.JSON(http.StatusOK, settings)
	}
}

// HandleGetDeliveryPrices handles GET /v1/admin/delivery-prices
func HandleGetDeliveryPrices(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"delivery_prices": deps.Store.DeliveryTable()})
	}
}

// ReplaceDeliveryPricesRequest represents the wholesale table replacement
type ReplaceDeliveryPricesRequest struct {
	DeliveryPrices []domain.DeliveryPrice `json:"delivery_prices" binding:"required,min=1"`
}

// HandleReplaceDeliveryPrices handles PUT /v1/admin/delivery-prices
func HandleReplaceDeliveryPrices(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReplaceDeliveryPricesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := deps.Store.ReplaceDeliveryTable(req.DeliveryPrices); err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"delivery_prices": deps.Store.DeliveryTable()})
	}
}

// HandleListDiscountCodes handles GET /v1/admin/discount-codes
func HandleListDiscountCodes(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"discount_codes": deps.Store.ListDiscountCodes()})
	}
}

// HandleAddDiscountCode handles POST /v1/admin/discount-codes
func HandleAddDiscountCode(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var code domain.DiscountCode
		if err := c.ShouldBindJSON(&code); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		created, err := deps.Store.AddDiscountCode(code)
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// HandleUpdateDiscountCode handles PATCH /v1/admin/discount-codes/:id
func HandleUpdateDiscountCode(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch store.DiscountCodePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		updated, err := deps.Store.UpdateDiscountCode(c.Param("id"), patch)
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// HandleDeleteDiscountCode handles DELETE /v1/admin/discount-codes/:id
func HandleDeleteDiscountCode(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Store.DeleteDiscountCode(c.Param("id")); err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// HandleAdminListOrders handles GET /v1/admin/orders
func HandleAdminListOrders(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"orders": deps.Orders.List()})
	}
}

// HandleAddProduct handles POST /v1/admin/products
func HandleAddProduct(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product domain.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		created, err := deps.Catalog.Add(product)
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// HandleUpdateProduct handles PUT /v1/admin/products/:id
func HandleUpdateProduct(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		var product domain.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		updated, err := deps.Catalog.Update(id, product)
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// HandleDeleteProduct handles DELETE /v1/admin/products/:id
func HandleDeleteProduct(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		if err := deps.Catalog.Delete(id); err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
