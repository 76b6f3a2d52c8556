// Package orders is the sink for finalized orders. The checkout flow hands
// an order record over at the Placed transition and never hears back.
package orders

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asshop/storefront/internal/domain"
	"github.com/asshop/storefront/internal/kvstore"
)

const keyOrders = "orders"

// Repository persists placed orders under their own record
type Repository struct {
	kv     kvstore.Store
	logger *zap.Logger

	orders []domain.Order
}

// NewRepository loads the order history; a missing or corrupt record starts
// the history empty
func NewRepository(kv kvstore.Store, logger *zap.Logger) *Repository {
	r := &Repository{
		kv:     kv,
		logger: logger,
	}

	raw, ok, err := kv.Get(keyOrders)
	if err != nil {
		logger.Warn("Failed to read order record, starting empty", zap.Error(err))
	} else if ok {
		if err := json.Unmarshal(raw, &r.orders); err != nil {
			logger.Warn("Corrupt order record, starting empty", zap.Error(err))
			r.orders = nil
		}
	}

	return r
}

// Create stores a finalized order
func (r *Repository) Create(ctx context.Context, order *domain.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.PlacedAt.IsZero() {
		order.PlacedAt = time.Now()
	}

	r.orders = append(r.orders, *order)
	r.persist()

	r.logger.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("number", order.Number),
		zap.Float64("total", order.Totals.Total),
		zap.String("currency", order.Currency),
	)
	return nil
}

// List returns all placed orders, most recent last
func (r *Repository) List() []domain.Order {
	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *Repository) persist() {
	raw, err := json.Marshal(r.orders)
	if err != nil {
		r.logger.Error("Failed to encode order record", zap.Error(err))
		return
	}
	if err := r.kv.Put(keyOrders, raw); err != nil {
		r.logger.Error("Failed to persist order record", zap.Error(err))
	}
}
