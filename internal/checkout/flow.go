// Package checkout drives the multi-step checkout: Shipping -> Payment ->
// Review -> Placed. Each forward transition is guarded; backward transitions
// keep everything the buyer already entered.
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"go.uber.org/zap"

	"github.com/asshop/storefront/internal/domain"
	"github.com/asshop/storefront/internal/pricing"
	"github.com/asshop/storefront/pkg/errors"
)

// Cart is the external cart the flow consumes. The flow reads items and
// clears the cart at placement; it never mutates individual lines.
type Cart interface {
	Items() []domain.CartItem
	Clear()
}

// OrderSink receives the finalized order record at the Placed transition
type OrderSink interface {
	Create(ctx context.Context, order *domain.Order) error
}

// Flow is one checkout session. It is created when checkout begins and
// discarded after placement or navigation away. Not safe for concurrent use;
// the caller serializes access (one active session per browser context).
type Flow struct {
	cart      Cart
	config    pricing.ConfigSource
	validator *pricing.DiscountValidator
	calc      *pricing.Calculator
	sink      OrderSink
	logger    *zap.Logger

	confirmDelay time.Duration
	orderNumber  func() string

	step     domain.CheckoutStep
	shipping domain.ShippingDetails
	payment  domain.PaymentDetails
	discount *domain.DiscountCode

	confirmation *Confirmation
}

// Alphabet and length for human-readable order reference numbers
const orderNumberAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// NewFlow begins a checkout session at the Shipping step
func NewFlow(cart Cart, config pricing.ConfigSource, validator *pricing.DiscountValidator, calc *pricing.Calculator, sink OrderSink, logger *zap.Logger, confirmDelay time.Duration) (*Flow, error) {
	gen, err := nanoid.CustomASCII(orderNumberAlphabet, 10)
	if err != nil {
		return nil, fmt.Errorf("create order number generator: %w", err)
	}

	return &Flow{
		cart:         cart,
		config:       config,
		validator:    validator,
		calc:         calc,
		sink:         sink,
		logger:       logger,
		confirmDelay: confirmDelay,
		orderNumber:  gen,
		step:         domain.StepShipping,
	}, nil
}

// Step returns the current checkout step
func (f *Flow) Step() domain.CheckoutStep {
	return f.step
}

// Shipping returns the collected shipping details
func (f *Flow) Shipping() domain.ShippingDetails {
	return f.shipping
}

// SetShipping stores the buyer's shipping details. Values may be edited at
// any step before placement; the guards only run on transition.
func (f *Flow) SetShipping(details domain.ShippingDetails) error {
	if f.step == domain.StepPlaced {
		return &errors.ErrInvalidStateTransition{From: string(f.step), To: string(f.step)}
	}
	f.shipping = details
	return nil
}

// Payment returns the collected payment details
func (f *Flow) Payment() domain.PaymentDetails {
	return f.payment
}

// SetPayment stores the buyer's payment details. They are opaque here; no
// card-number validation happens anywhere in the flow.
func (f *Flow) SetPayment(details domain.PaymentDetails) error {
	if f.step == domain.StepPlaced {
		return &errors.ErrInvalidStateTransition{From: string(f.step), To: string(f.step)}
	}
	f.payment = details
	return nil
}

// Discount returns the currently applied discount, or nil
func (f *Flow) Discount() *domain.DiscountCode {
	if f.discount == nil {
		return nil
	}
	d := *f.discount
	return &d
}

// ApplyDiscount validates the code against the live subtotal and applies it.
// Allowed only in the Shipping and Payment steps. A stale validation result
// is never reused: every call re-runs the validator.
func (f *Flow) ApplyDiscount(code string) (domain.DiscountCode, error) {
	if f.step != domain.StepShipping && f.step != domain.StepPayment {
		return domain.DiscountCode{}, &errors.ErrInvalidStateTransition{From: string(f.step), To: string(f.step)}
	}
	if !f.config.Settings().EnableDiscountCodes {
		return domain.DiscountCode{}, &errors.ErrInvalidDiscount{}
	}

	subtotal := subtotalOf(f.cart.Items())
	discount, ok := f.validator.Validate(code, subtotal)
	if !ok {
		return domain.DiscountCode{}, &errors.ErrInvalidDiscount{}
	}

	f.discount = &discount
	return discount, nil
}

// RemoveDiscount drops the applied discount
func (f *Flow) RemoveDiscount() error {
	if f.step != domain.StepShipping && f.step != domain.StepPayment {
		return &errors.ErrInvalidStateTransition{From: string(f.step), To: string(f.step)}
	}
	f.discount = nil
	return nil
}

// Quote prices the current cart with the session's region, mode and discount.
// Nothing is cached; call it again after any change.
func (f *Flow) Quote() domain.PriceBreakdown {
	return f.calc.Quote(f.cart.Items(), f.shipping.State, f.shipping.DeliveryMode, f.discount)
}

// Advance moves one step forward, running the guard for the current step.
// Review -> Placed is not reachable this way; that transition requires the
// explicit confirmation of PlaceOrder.
func (f *Flow) Advance() error {
	switch f.step {
	case domain.StepShipping:
		if len(f.cart.Items()) == 0 {
			return &errors.ErrEmptyCart{}
		}
		if missing := f.missingShippingFields(); len(missing) > 0 {
			return &errors.ErrMissingFields{Fields: missing}
		}
		f.step = domain.StepPayment
		return nil

	case domain.StepPayment:
		if len(f.cart.Items()) == 0 {
			return &errors.ErrEmptyCart{}
		}
		if missing := f.missingPaymentFields(); len(missing) > 0 {
			return &errors.ErrMissingFields{Fields: missing}
		}
		f.step = domain.StepReview
		return nil

	default:
		return &errors.ErrInvalidStateTransition{From: string(f.step), To: string(domain.StepPlaced)}
	}
}

// Back moves one step backward, preserving all entered values
func (f *Flow) Back() error {
	switch f.step {
	case domain.StepPayment:
		f.step = domain.StepShipping
		return nil
	case domain.StepReview:
		f.step = domain.StepPayment
		return nil
	default:
		return &errors.ErrInvalidStateTransition{From: string(f.step), To: string(f.step)}
	}
}

// PlaceOrder finalizes the session: the quote is snapshotted as the charged
// amounts, the order goes to the sink, the flow becomes Placed, and the cart
// clear is scheduled as a single idempotent confirmation task.
func (f *Flow) PlaceOrder(ctx context.Context) (*domain.Order, error) {
	if f.step != domain.StepReview {
		return nil, &errors.ErrInvalidStateTransition{From: string(f.step), To: string(domain.StepPlaced)}
	}

	items := f.cart.Items()
	if len(items) == 0 {
		return nil, &errors.ErrEmptyCart{}
	}

	// The applied discount may have gone stale since application (cart
	// mutations, deactivation, expiry). Re-run the validator; a discount
	// that no longer holds is dropped rather than charged.
	if f.discount != nil {
		if revalidated, ok := f.validator.Validate(f.discount.Code, subtotalOf(items)); ok {
			f.discount = &revalidated
		} else {
			f.logger.Info("Dropping stale discount at placement", zap.String("code", f.discount.Code))
			f.discount = nil
		}
	}

	settings := f.config.Settings()
	order := &domain.Order{
		ID:       uuid.New(),
		Number:   "AS-" + f.orderNumber(),
		PlacedAt: time.Now(),
		Items:    items,
		Shipping: f.shipping,
		Totals:   f.Quote(),
		Currency: settings.Currency,
	}
	if f.discount != nil {
		order.DiscountCode = f.discount.Code
	}

	if err := f.sink.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("emit order: %w", err)
	}

	f.step = domain.StepPlaced
	f.confirmation = newConfirmation(f.cart, f.confirmDelay)

	return order, nil
}

// Confirmation returns the pending post-placement task, or nil before
// placement
func (f *Flow) Confirmation() *Confirmation {
	return f.confirmation
}

func (f *Flow) missingShippingFields() []string {
	var missing []string
	if f.shipping.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if f.shipping.LastName == "" {
		missing = append(missing, "last_name")
	}
	if f.shipping.Email == "" {
		missing = append(missing, "email")
	}
	if f.shipping.Phone == "" {
		missing = append(missing, "phone")
	}
	if f.shipping.Address == "" {
		missing = append(missing, "address")
	}
	if f.shipping.City == "" {
		missing = append(missing, "city")
	}
	if f.shipping.State == "" {
		missing = append(missing, "state")
	}
	if !f.shipping.DeliveryMode.IsValid() {
		missing = append(missing, "delivery_mode")
	}
	return missing
}

func (f *Flow) missingPaymentFields() []string {
	var missing []string
	if f.payment.CardNumber == "" {
		missing = append(missing, "card_number")
	}
	if f.payment.CardName == "" {
		missing = append(missing, "card_name")
	}
	if f.payment.ExpiryDate == "" {
		missing = append(missing, "expiry_date")
	}
	if f.payment.CVV == "" {
		missing = append(missing, "cvv")
	}
	return missing
}

func subtotalOf(items []domain.CartItem) float64 {
	var subtotal float64
	for _, it := range items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}
	return subtotal
}
