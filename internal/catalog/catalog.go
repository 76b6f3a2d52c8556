// Package catalog manages the product inventory. The shop reads it; the
// admin back office mutates it. The whole product list persists as one
// record, seeded with a default inventory on first start.
package catalog

import (
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"github.com/asshop/storefront/internal/domain"
	"github.com/asshop/storefront/internal/kvstore"
	"github.com/asshop/storefront/pkg/errors"
)

const keyProducts = "products"

// Catalog is the persisted product registry
type Catalog struct {
	kv     kvstore.Store
	logger *zap.Logger

	products []domain.Product
	nextID   int
}

// New loads the product record, falling back to the seeded defaults when it
// is missing or unreadable
func New(kv kvstore.Store, logger *zap.Logger) *Catalog {
	c := &Catalog{
		kv:     kv,
		logger: logger,
	}

	c.products = defaultProducts()
	raw, ok, err := kv.Get(keyProducts)
	if err != nil {
		logger.Warn("Failed to read product record, using defaults", zap.Error(err))
	} else if ok {
		if err := json.Unmarshal(raw, &c.products); err != nil {
			logger.Warn("Corrupt product record, replacing with defaults", zap.Error(err))
			c.products = defaultProducts()
			c.persist()
		}
	}

	for _, p := range c.products {
		if p.ID >= c.nextID {
			c.nextID = p.ID + 1
		}
	}

	return c
}

func (c *Catalog) persist() {
	raw, err := json.Marshal(c.products)
	if err != nil {
		c.logger.Error("Failed to encode product record", zap.Error(err))
		return
	}
	if err := c.kv.Put(keyProducts, raw); err != nil {
		c.logger.Error("Failed to persist product record", zap.Error(err))
	}
}

// List returns all products in registration order
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// GetByID returns the product with the given id
func (c *Catalog) GetByID(id int) (domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, &errors.ErrNotFound{Resource: "product", ID: strconv.Itoa(id)}
}

// Add registers a new product and assigns its id
func (c *Catalog) Add(product domain.Product) (domain.Product, error) {
	if product.Name == "" {
		return domain.Product{}, &errors.ErrValidation{Field: "name", Message: "must not be empty"}
	}
	if product.Price < 0 {
		return domain.Product{}, &errors.ErrValidation{Field: "price", Message: "must be a number >= 0"}
	}

	product.ID = c.nextID
	c.nextID++
	if product.Status == "" {
		product.Status = "active"
	}

	c.products = append(c.products, product)
	c.persist()
	return product, nil
}

// Update replaces the stored product with the given id
func (c *Catalog) Update(id int, product domain.Product) (domain.Product, error) {
	if product.Price < 0 {
		return domain.Product{}, &errors.ErrValidation{Field: "price", Message: "must be a number >= 0"}
	}
	for i := range c.products {
		if c.products[i].ID == id {
			product.ID = id
			c.products[i] = product
			c.persist()
			return product, nil
		}
	}
	return domain.Product{}, &errors.ErrNotFound{Resource: "product", ID: strconv.Itoa(id)}
}

// Delete removes the product with the given id
func (c *Catalog) Delete(id int) error {
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			c.persist()
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "product", ID: strconv.Itoa(id)}
}
