package domain

import (
	"time"

	"github.com/google/uuid"
)

// StoreSettings is the singleton store-wide configuration
type StoreSettings struct {
	StoreName                 string  `json:"storeName"`
	StoreDescription          string  `json:"storeDescription"`
	Currency                  string  `json:"currency"`
	TaxRate                   float64 `json:"taxRate"`
	DefaultShippingPrice      float64 `json:"defaultShippingPrice"`
	EnableWeightBasedShipping bool    `json:"enableWeightBasedShipping"`
	EnableDiscountCodes       bool    `json:"enableDiscountCodes"`
	EnableSizeSelection       bool    `json:"enableSizeSelection"`
	EnableColorSelection      bool    `json:"enableColorSelection"`
}

// DeliveryPrice is the shipping price entry for one delivery region (wilaya).
// WeightMultiplier scales the cargo weight when weight-based shipping is on.
type DeliveryPrice struct {
	State            string  `json:"state"`
	HomeDelivery     float64 `json:"homeDelivery"`
	StopDesk         float64 `json:"stopDesk"`
	WeightMultiplier float64 `json:"weightMultiplier,omitempty"`
}

// DiscountCode is a redeemable code entitling the buyer to a reduction
type DiscountCode struct {
	ID             string       `json:"id"`
	Code           string       `json:"code"`
	Type           DiscountType `json:"type"`
	Value          float64      `json:"value"`
	IsActive       bool         `json:"isActive"`
	MinOrderAmount float64      `json:"minOrderAmount,omitempty"`
	ExpiryDate     *time.Time   `json:"expiryDate,omitempty"`
}

// Product is a purchasable catalog entry
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	Image       string   `json:"image,omitempty"`
	Status      string   `json:"status"`
	Description string   `json:"description,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Weight      float64  `json:"weight,omitempty"`
}

// CartItem is a chosen product with quantity. Weight is the unit weight; items
// whose product carries no weight get the configured nominal weight when added.
type CartItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Weight    float64 `json:"weight"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// ShippingDetails holds the buyer contact fields collected at the shipping step
type ShippingDetails struct {
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	City         string       `json:"city"`
	PostalCode   string       `json:"postal_code"`
	State        string       `json:"state"`
	DeliveryMode DeliveryMode `json:"delivery_mode"`
}

// PaymentDetails is opaque to pricing; no algorithmic card validation
type PaymentDetails struct {
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// PriceBreakdown is the calculator output. All amounts except Total are kept
// at full precision; Total is rounded half-up to the whole currency unit.
type PriceBreakdown struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	ShippingCost   float64 `json:"shipping_cost"`
	TaxAmount      float64 `json:"tax_amount"`
	Total          float64 `json:"total"`
}

// Order is the finalized record emitted at the Placed transition
type Order struct {
	ID           uuid.UUID       `json:"id"`
	Number       string          `json:"number"`
	PlacedAt     time.Time       `json:"placed_at"`
	Items        []CartItem      `json:"items"`
	Shipping     ShippingDetails `json:"shipping"`
	DiscountCode string          `json:"discount_code,omitempty"`
	Totals       PriceBreakdown  `json:"totals"`
	Currency     string          `json:"currency"`
}
