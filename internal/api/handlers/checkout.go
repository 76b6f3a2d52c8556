package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/asshop/storefront/internal/checkout"
	"github.com/asshop/storefront/internal/domain"
	"github.com/asshop/storefront/pkg/errors"
)

// ApplyDiscountRequest represents the discount application payload
type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

func flowView(flow *checkout.Flow) gin.H {
	view := gin.H{
		"step":     flow.Step(),
		"shipping": flow.Shipping(),
		"quote":    flow.Quote(),
	}
	if discount := flow.Discount(); discount != nil {
		view["discount"] = gin.H{
			"code":  discount.Code,
			"type":  discount.Type,
			"value": discount.Value,
		}
	}
	return view
}

// HandleBeginCheckout handles POST /v1/checkout. Beginning checkout replaces
// any previous session.
func HandleBeginCheckout(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(deps.Cart.Items()) == 0 {
			respondError(c, deps.Logger, deps.Translator, &errors.ErrEmptyCart{})
			return
		}

		flow, err := checkout.NewFlow(
			deps.Cart,
			deps.Store,
			deps.Validator,
			deps.Calculator,
			deps.Orders,
			deps.Logger,
			deps.Config.Checkout.ConfirmationDelay,
		)
		if err != nil {
			deps.Logger.Error("Failed to begin checkout", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		deps.Session.Replace(flow)
		c.JSON(http.StatusOK, flowView(flow))
	}
}

// HandleGetCheckout handles GET /v1/checkout
func HandleGetCheckout(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := deps.Session.With(func(flow *checkout.Flow) error {
			if flow == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout session"})
				return nil
			}
			c.JSON(http.StatusOK, flowView(flow))
			return nil
		})
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
		}
	}
}

// HandleSetShipping handles PUT /v1/checkout/shipping
func HandleSetShipping(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var details domain.ShippingDetails
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		err := deps.Session.With(func(flow *checkout.Flow) error {
			if flow == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout session"})
				return nil
			}
			if err := flow.SetShipping(details); err != nil {
				return err
			}
			c.JSON(http.StatusOK, flowView(flow))
			return nil
		})
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
		}
	}
}

// HandleSetPayment handles PUT /v1/checkout/payment
func HandleSetPayment(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var details domain.PaymentDetails
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		err := deps.Session.With(func(flow *checkout.Flow) error {
			if flow == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout session"})
				return nil
			}
			if err := flow.SetPayment(details); err != nil {
				return err
			}
			c.JSON(http.StatusOK, flowView(flow))
			return nil
		})
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
		}
	}
}

// HandleAdvance handles POST /v1/checkout/advance
func HandleAdvance(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := deps.Session.With(func(flow *checkout.Flow) error {
			if flow == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout session"})
				return nil
			}
			from := flow.Step()
			if err := flow.Advance(); err != nil {
				return err
			}
			deps.Metrics.RecordTransition(string(from), string(flow.Step()))
			c.JSON(http.StatusOK, flowView(flow))
			return nil
		})
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
		}
	}
}

// HandleBack handles POST /v1/checkout/back
func HandleBack(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := deps.Session.With(func(flow *checkout.Flow) error {
			if flow == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout session"})
				return nil
			}
			from := flow.Step()
			if err := flow.Back(); err != nil {
				return err
			}
			deps.Metrics.RecordTransition(string(from), string(flow.Step()))
			c.JSON(http.StatusOK, flowView(flow))
			return nil
		})
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
		}
	}
}

// HandleApplyDiscount handles POST /v1/checkout/discount
func HandleApplyDiscount(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ApplyDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		err := deps.Session.With(func(flow *checkout.Flow) error {
			if flow == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout session"})
				return nil
			}
			_, err := flow.ApplyDiscount(req.Code)
			deps.Metrics.RecordDiscountValidation(err == nil)
			if err != nil {
				return err
			}
			c.JSON(http.StatusOK, flowView(flow))
			return nil
		})
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
		}
	}
}

// HandleRemoveDiscount handles DELETE /v1/checkout/discount
func HandleRemoveDiscount(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := deps.Session.With(func(flow *checkout.Flow) error {
			if flow == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout session"})
				return nil
			}
			if err := flow.RemoveDiscount(); err != nil {
				return err
			}
			c.JSON(http.StatusOK, flowView(flow))
			return nil
		})
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
		}
	}
}

// HandlePlaceOrder handles POST /v1/checkout/place
func HandlePlaceOrder(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := deps.Session.With(func(flow *checkout.Flow) error {
			if flow == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "no active checkout session"})
				return nil
			}

			from := flow.Step()
			order, err := flow.PlaceOrder(c.Request.Context())
			if err != nil {
				return err
			}

			deps.Metrics.RecordTransition(string(from), string(flow.Step()))
			deps.Metrics.RecordOrderPlaced(order.Currency, order.Totals.Total)

			c.JSON(http.StatusOK, gin.H{
				"message": deps.Translator.Translate("checkout.orderPlaced"),
				"order": gin.H{
					"id":        order.ID.String(),
					"number":    order.Number,
					"placed_at": order.PlacedAt,
					"totals":    order.Totals,
					"currency":  order.Currency,
				},
			})
			return nil
		})
		if err != nil {
			respondError(c, deps.Logger, deps.Translator, err)
		}
	}
}
