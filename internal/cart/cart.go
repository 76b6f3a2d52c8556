// Package cart implements the shopping cart consumed by the checkout flow.
// The cart is per browser context and lives in memory; the checkout engine
// only ever reads Items and calls Clear at order placement.
package cart

import (
	"strconv"

	"github.com/asshop/storefront/internal/domain"
	"github.com/asshop/storefront/pkg/errors"
)

// Cart is an ordered list of chosen items with quantities
type Cart struct {
	// defaultWeight is the nominal unit weight assumed for products that
	// carry none
	defaultWeight float64
	items         []domain.CartItem
}

// New creates an empty cart
func New(defaultWeight float64) *Cart {
	return &Cart{defaultWeight: defaultWeight}
}

// Items returns a snapshot of the cart contents in insertion order
func (c *Cart) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Add puts qty units of the product into the cart. An existing line with the
// same product, size and color is incremented instead of duplicated.
func (c *Cart) Add(product domain.Product, qty int, size, color string) error {
	if qty < 1 {
		return &errors.ErrValidation{Field: "quantity", Message: "must be at least 1"}
	}

	for i := range c.items {
		it := &c.items[i]
		if it.ProductID == product.ID && it.Size == size && it.Color == color {
			it.Quantity += qty
			return nil
		}
	}

	weight := product.Weight
	if weight <= 0 {
		weight = c.defaultWeight
	}

	c.items = append(c.items, domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  qty,
		Weight:    weight,
		Size:      size,
		Color:     color,
	})
	return nil
}

// UpdateQuantity sets the quantity of the line for the given product
func (c *Cart) UpdateQuantity(productID, qty int) error {
	if qty < 1 {
		return &errors.ErrValidation{Field: "quantity", Message: "must be at least 1"}
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = qty
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "cart item", ID: strconv.Itoa(productID)}
}

// Remove deletes the line for the given product
func (c *Cart) Remove(productID int) error {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "cart item", ID: strconv.Itoa(productID)}
}

// Clear empties the cart. Safe to call repeatedly.
func (c *Cart) Clear() {
	c.items = nil
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal sums unit price times quantity over all lines
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, it := range c.items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

// TotalWeight sums unit weight times quantity over all lines
func (c *Cart) TotalWeight() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Weight * float64(it.Quantity)
	}
	return total
}
