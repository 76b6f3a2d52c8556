package pricing

import (
	"github.com/asshop/storefront/internal/domain"
)

// fakeConfig is an in-memory ConfigSource for the pricing tests
type fakeConfig struct {
	settings domain.StoreSettings
	table    []domain.DeliveryPrice
	codes    []domain.DiscountCode
}

func (f *fakeConfig) Settings() domain.StoreSettings           { return f.settings }
func (f *fakeConfig) DeliveryTable() []domain.DeliveryPrice    { return f.table }
func (f *fakeConfig) ListDiscountCodes() []domain.DiscountCode { return f.codes }

func testConfig() *fakeConfig {
	return &fakeConfig{
		settings: domain.StoreSettings{
			StoreName:                 "AS",
			Currency:                  "DA",
			TaxRate:                   19,
			DefaultShippingPrice:      500,
			EnableWeightBasedShipping: true,
			EnableDiscountCodes:       true,
		},
		table: []domain.DeliveryPrice{
			{State: "Alger", HomeDelivery: 750, StopDesk: 350, WeightMultiplier: 0.7},
			{State: "Oran", HomeDelivery: 900, StopDesk: 350, WeightMultiplier: 0.9},
			{State: "Adrar", HomeDelivery: 1600, StopDesk: 800, WeightMultiplier: 1.2},
		},
		codes: []domain.DiscountCode{
			{ID: "1", Code: "WELCOME10", Type: domain.DiscountTypePercentage, Value: 10, IsActive: true, MinOrderAmount: 5000},
			{ID: "2", Code: "SAVE500", Type: domain.DiscountTypeFixed, Value: 500, IsActive: true, MinOrderAmount: 2000},
		},
	}
}
