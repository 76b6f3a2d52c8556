package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest represents the add-to-cart payload
type AddCartItemRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// UpdateCartItemRequest represents the quantity change payload
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

func cartView(deps *Deps) gin.H {
	return gin.H{
		"items":        deps.Cart.Items(),
		"subtotal":     deps.Cart.Subtotal(),
		"total_weight": deps.Cart.TotalWeight(),
	}
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(deps))
	}
}

// HandleAddCartItem handles POST /v1/cart/items
func HandleAddCartItem(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product, err := deps.Catalog.GetByID(req.ProductID)
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
			return
		}

		settings := deps.Store.Settings()
		if !settings.EnableSizeSelection {
			req.Size = ""
		}
		if !settings.EnableColorSelection {
			req.Color = ""
		}

		if err := deps.Cart.Add(product, req.Quantity, req.Size, req.Color); err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
			return
		}

		c.JSON(http.StatusOK, cartView(deps))
	}
}

// HandleUpdateCartItem handles PATCH /v1/cart/items/:id
func HandleUpdateCartItem(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := deps.Cart.UpdateQuantity(productID, req.Quantity); err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
			return
		}

		c.JSON(http.StatusOK, cartView(deps))
	}
}

// HandleRemoveCartItem handles DELETE /v1/cart/items/:id
func HandleRemoveCartItem(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		if err := deps.Cart.Remove(productID); err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
			return
		}

		c.JSON(http.StatusOK, cartView(deps))
	}
}

// HandleClearCart handles DELETE /v1/cart
func HandleClearCart(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Cart.Clear()
		c.JSON(http.StatusOK, cartView(deps))
	}
}
