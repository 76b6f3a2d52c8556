package pricing

import "github.com/asshop/storefront/internal/domain"

// Calculator composes subtotal, discount, shipping and tax into a final
// total. It holds no state of its own: every quote is recomputed from the
// cart, the chosen region/mode and the live settings.
type Calculator struct {
	config ConfigSource
	pricer *DeliveryPricer
}

// NewCalculator creates a new price calculator
func NewCalculator(config ConfigSource, pricer *DeliveryPricer) *Calculator {
	return &Calculator{config: config, pricer: pricer}
}

// Quote prices the cart. discount may be nil. The step order below fixes the
// numeric result:
//
//	subtotal -> total weight -> shipping -> discount -> tax -> total
//
// Tax applies to the post-discount, pre-shipping amount; shipping is not
// taxed. Only the final total is rounded.
func (c *Calculator) Quote(items []domain.CartItem, state string, mode domain.DeliveryMode, discount *domain.DiscountCode) domain.PriceBreakdown {
	settings := c.config.Settings()

	var subtotal, totalWeight float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
		totalWeight += item.Weight * float64(item.Quantity)
	}

	shipping := settings.DefaultShippingPrice
	if state != "" {
		shipping = c.pricer.Price(state, mode, totalWeight)
	}

	var discountAmount float64
	if discount != nil {
		switch discount.Type {
		case domain.DiscountTypePercentage:
			discountAmount = subtotal * (discount.Value / 100)
		case domain.DiscountTypeFixed:
			discountAmount = discount.Value
		}
		// A fixed discount larger than the subtotal would drive the
		// discounted subtotal negative; clamp it.
		if discountAmount > subtotal {
			discountAmount = subtotal
		}
	}

	discountedSubtotal := subtotal - discountAmount
	tax := discountedSubtotal * (settings.TaxRate / 100)

	return domain.PriceBreakdown{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		ShippingCost:   shipping,
		TaxAmount:      tax,
		Total:          roundHalfUp(discountedSubtotal + shipping + tax),
	}
}
