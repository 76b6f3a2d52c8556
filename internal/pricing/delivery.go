// Package pricing holds the order pricing engine: delivery pricing, discount
// validation and the final price calculator. Everything here is a pure
// function of the live store configuration and its inputs; nothing caches.
package pricing

import (
	"math"

	"github.com/asshop/storefront/internal/domain"
)

// ConfigSource exposes the slices of store configuration the pricing engine
// reads. *store.ConfigStore satisfies it.
type ConfigSource interface {
	Settings() domain.StoreSettings
	DeliveryTable() []domain.DeliveryPrice
	ListDiscountCodes() []domain.DiscountCode
}

// DeliveryPricer computes the shipping cost for a region, mode and cargo weight
type DeliveryPricer struct {
	config ConfigSource
}

// NewDeliveryPricer creates a new delivery pricer
func NewDeliveryPricer(config ConfigSource) *DeliveryPricer {
	return &DeliveryPricer{config: config}
}

// Price returns the shipping cost. weight is the total cargo weight, already
// aggregated over the cart by the caller. Unknown regions fall back to the
// default shipping price; this never fails.
func (p *DeliveryPricer) Price(state string, mode domain.DeliveryMode, weight float64) float64 {
	settings := p.config.Settings()

	var entry domain.DeliveryPrice
	found := false
	for _, e := range p.config.DeliveryTable() {
		if e.State == state {
			entry = e
			found = true
			break
		}
	}
	if !found {
		return settings.DefaultShippingPrice
	}

	base := entry.HomeDelivery
	if mode == domain.DeliveryModeStopDesk {
		base = entry.StopDesk
	}

	if settings.EnableWeightBasedShipping && entry.WeightMultiplier > 0 {
		return roundHalfUp(base * weight * entry.WeightMultiplier)
	}

	// Weight-based shipping disabled: the base price stands, weight ignored
	return base
}

// roundHalfUp rounds to the nearest whole currency unit; there is no
// fractional currency in this domain.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
