package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StoreMetrics holds the storefront counters
type StoreMetrics struct {
	OrdersPlacedTotal        prometheus.CounterVec
	OrdersPlacedAmountTotal  prometheus.CounterVec
	DiscountValidationsTotal prometheus.CounterVec
	CheckoutTransitionsTotal prometheus.CounterVec
}

// NewStoreMetrics registers and returns the storefront metrics
func NewStoreMetrics() *StoreMetrics {
	return &StoreMetrics{
		OrdersPlacedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_placed_total",
				Help: "Total number of placed orders",
			},
			[]string{"currency"},
		),

		OrdersPlacedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_placed_amount_total",
				Help: "Total charged amount of placed orders",
			},
			[]string{"currency"},
		),

		DiscountValidationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "discount_validations_total",
				Help: "Discount code validation attempts by result",
			},
			[]string{"result"},
		),

		CheckoutTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_transitions_total",
				Help: "Checkout step transitions by origin and destination",
			},
			[]string{"from", "to"},
		),
	}
}

// RecordOrderPlaced records a placed order
func (m *StoreMetrics) RecordOrderPlaced(currency string, amount float64) {
	m.OrdersPlacedTotal.WithLabelValues(currency).Inc()
	m.OrdersPlacedAmountTotal.WithLabelValues(currency).Add(amount)
}

// RecordDiscountValidation records one validation attempt
func (m *StoreMetrics) RecordDiscountValidation(accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	m.DiscountValidationsTotal.WithLabelValues(result).Inc()
}

// RecordTransition records a checkout step change
func (m *StoreMetrics) RecordTransition(from, to string) {
	m.CheckoutTransitionsTotal.WithLabelValues(from, to).Inc()
}
