package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asshop/storefront/internal/cart"
	"github.com/asshop/storefront/internal/domain"
	"github.com/asshop/storefront/internal/pricing"
	"github.com/asshop/storefront/pkg/errors"
)

type stubConfig struct {
	settings domain.StoreSettings
	table    []domain.DeliveryPrice
	codes    []domain.DiscountCode
}

func (s *stubConfig) Settings() domain.StoreSettings           { return s.settings }
func (s *stubConfig) DeliveryTable() []domain.DeliveryPrice    { return s.table }
func (s *stubConfig) ListDiscountCodes() []domain.DiscountCode { return s.codes }

type captureSink struct {
	orders []*domain.Order
	err    error
}

func (s *captureSink) Create(ctx context.Context, order *domain.Order) error {
	if s.err != nil {
		return s.err
	}
	s.orders = append(s.orders, order)
	return nil
}

func newStubConfig() *stubConfig {
	return &stubConfig{
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
		},
		codes: []domain.DiscountCode{
			{ID: "1", Code: "WELCOME10", Type: domain.DiscountTypePercentage, Value: 10, IsActive: true, MinOrderAmount: 5000},
		},
	}
}

func newTestFlow(t *testing.T, c Cart, config *stubConfig, sink OrderSink, delay time.Duration) *Flow {
	t.Helper()
	validator := pricing.NewDiscountValidator(config)
	calc := pricing.NewCalculator(config, pricing.NewDeliveryPricer(config))
	flow, err := NewFlow(c, config, validator, calc, sink, zap.NewNop(), delay)
	require.NoError(t, err)
	return flow
}

func filledCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New(0.5)
	require.NoError(t, c.Add(domain.Product{ID: 1, Name: "T-shirt", Price: 3000, Weight: 0.5}, 2, "M", "black"), "seed cart")
	return c
}

func validShipping() domain.ShippingDetails {
	return domain.ShippingDetails{
		FirstName:    "Amine",
		LastName:     "B",
		Email:        "amine@example.com",
		Phone:        "0550000000",
		Address:      "12 Rue Didouche",
		City:         "Alger Centre",
		State:        "Alger",
		DeliveryMode: domain.DeliveryModeHome,
	}
}

func validPayment() domain.PaymentDetails {
	return domain.PaymentDetails{
		CardNumber: "4111111111111111",
		CardName:   "AMINE B",
		ExpiryDate: "12/27",
		CVV:        "123",
	}
}

func advanceToReview(t *testing.T, flow *Flow) {
	t.Helper()
	require.NoError(t, flow.SetShipping(validShipping()))
	require.NoError(t, flow.Advance())
	require.NoError(t, flow.SetPayment(validPayment()))
	require.NoError(t, flow.Advance())
	require.Equal(t, domain.StepReview, flow.Step())
}

func TestFlow_StartsAtShipping(t *testing.T) {
	flow := newTestFlow(t, filledCart(t), newStubConfig(), &captureSink{}, time.Hour)
	assert.Equal(t, domain.StepShipping, flow.Step())
	assert.Nil(t, flow.Confirmation())
}

func TestAdvance_EmptyCartBlocked(t *testing.T) {
	flow := newTestFlow(t, cart.New(0.5), newStubConfig(), &captureSink{}, time.Hour)
	require.NoError(t, flow.SetShipping(validShipping()))

	err := flow.Advance()
	var empty *errors.ErrEmptyCart
	assert.ErrorAs(t, err, &empty)
	assert.Equal(t, domain.StepShipping, flow.Step())
}

func TestAdvance_MissingShippingFields(t *testing.T) {
	flow := newTestFlow(t, filledCart(t), newStubConfig(), &captureSink{}, time.Hour)

	details := validShipping()
	details.State = ""
	details.Phone = ""
	require.NoError(t, flow.SetShipping(details))

	err := flow.Advance()
	var missing *errors.ErrMissingFields
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Fields, "state")
	assert.Contains(t, missing.Fields, "phone")
	assert.Equal(t, domain.StepShipping, flow.Step())
}

func TestAdvance_MissingPaymentFields(t *testing.T) {
	flow := newTestFlow(t, filledCart(t), newStubConfig(), &captureSink{}, time.Hour)
	require.NoError(t, flow.SetShipping(validShipping()))
	require.NoError(t, flow.Advance())

	err := flow.Advance()
	var missing *errors.ErrMissingFields
	require.ErrorAs(t, err, &missing)
	assert.Contains(t, missing.Fields, "card_number")
	assert.Equal(t, domain.StepPayment, flow.Step())
}

func TestAdvance_ReviewRequiresPlaceOrder(t *testing.T) {
	flow := newTestFlow(t, filledCart(t), newStubConfig(), &captureSink{}, time.Hour)
	advanceToReview(t, flow)

	err := flow.Advance()
	var transition *errors.ErrInvalidStateTransition
	assert.ErrorAs(t, err, &transition)
	assert.Equal(t, domain.StepReview, flow.Step())
}

func TestBack_PreservesEnteredValues(t *testing.T) {
	flow := newTestFlow(t, filledCart(t), newStubConfig(), &captureSink{}, time.Hour)
	advanceToReview(t, flow)

	require.NoError(t, flow.Back())
	assert.Equal(t, domain.StepPayment, flow.Step())
	assert.Equal(t, validPayment(), flow.Payment())

	require.NoError(t, flow.Back())
	assert.Equal(t, domain.StepShipping, flow.Step())
	assert.Equal(t, validShipping(), flow.Shipping())

	err := flow.Back()
	var transition *errors.ErrInvalidStateTransition
	assert.ErrorAs(t, err, &transition)
}

func TestApplyDiscount(t *testing.T) {
	flow := newTestFlow(t, filledCart(t), newStubConfig(), &captureSink{}, time.Hour)

	// Subtotal 6000 clears the 5000 minimum
	discount, err := flow.ApplyDiscount("welcome10")
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", discount.Code)

	quote := flow.Quote()
	assert.Equal(t, 600.0, quote.DiscountAmount)
}

func TestApplyDiscount_BelowMinimumRejected(t *testing.T) {
	c := cart.New(0.5)
	require.NoError(t, c.Add(domain.Product{ID: 1, Price: 1000, Weight: 0.5}, 1, "", ""))
	flow := newTestFlow(t, c, newStubConfig(), &captureSink{}, time.Hour)

	_, err := flow.ApplyDiscount("WELCOME10")
	var invalid *errors.ErrInvalidDiscount
	assert.ErrorAs(t, err, &invalid)
	assert.Nil(t, flow.Discount())
}

func TestApplyDiscount_DisabledBySettings(t *testing.T) {
	config := newStubConfig()
	config.settings.EnableDiscountCodes = false
	flow := newTestFlow(t, filledCart(t), config, &captureSink{}, time.Hour)

	_, err := flow.ApplyDiscount("WELCOME10")
	var invalid *errors.ErrInvalidDiscount
	assert.ErrorAs(t, err, &invalid)
}

func TestApplyDiscount_OnlyBeforeReview(t *testing.T) {
	flow := newTestFlow(t, filledCart(t), newStubConfig(), &captureSink{}, time.Hour)
	advanceToReview(t, flow)

	_, err := flow.ApplyDiscount("WELCOME10")
	var transition *errors.ErrInvalidStateTransition
	assert.ErrorAs(t, err, &transition)

	err = flow.RemoveDiscount()
	assert.ErrorAs(t, err, &transition)
}

func TestRemoveDiscount(t *testing.T) {
	flow := newTestFlow(t, filledCart(t), newStubConfig(), &captureSink{}, time.Hour)

	_, err := flow.ApplyDiscount("WELCOME10")
	require.NoError(t, err)
	require.NotNil(t, flow.Discount())

	require.NoError(t, flow.RemoveDiscount())
	assert.Nil(t, flow.Discount())
	assert.Equal(t, 0.0, flow.Quote().DiscountAmount)
}

func TestPlaceOrder(t *testing.T) {
	c := filledCart(t)
	sink := &captureSink{}
	flow := newTestFlow(t, c, newStubConfig(), sink, 20*time.Millisecond)
	advanceToReview(t, flow)

	order, err := flow.PlaceOrder(context.Background())
	require.NoError(t, err)
	require.Len(t, sink.orders, 1)

	assert.Equal(t, domain.StepPlaced, flow.Step())
	assert.Regexp(t, `^AS-[0-9A-Z]{10}$`, order.Number)
	assert.Equal(t, "DA", order.Currency)
	assert.Len(t, order.Items, 1)

	// subtotal 6000, shipping round(750*1*0.7)=525, tax 1140, total 7665
	assert.Equal(t, 6000.0, order.Totals.Subtotal)
	assert.Equal(t, 525.0, order.Totals.ShippingCost)
	assert.Equal(t, 7665.0, order.Totals.Total)

	// The cart clear is delayed, then runs exactly once
	assert.False(t, c.IsEmpty())
	confirmation := flow.Confirmation()
	require.NotNil(t, confirmation)
	select {
	case <-confirmation.Done():
	case <-time.After(time.Second):
		t.Fatal("confirmation never completed")
	}
	assert.True(t, c.IsEmpty())
}

func TestPlaceOrder_OnlyFromReview(t *testing.T) {
	flow := newTestFlow(t, filledCart(t), newStubConfig(), &captureSink{}, time.Hour)

	_, err := flow.PlaceOrder(context.Background())
	var transition *errors.ErrInvalidStateTransition
	assert.ErrorAs(t, err, &transition)
}

func TestPlaceOrder_DropsStaleDiscount(t *testing.T) {
	config := newStubConfig()
	sink := &captureSink{}
	flow := newTestFlow(t, filledCart(t), config, sink, time.Hour)

	_, err := flow.ApplyDiscount("WELCOME10")
	require.NoError(t, err)
	advanceToReview(t, flow)

	// The code is deactivated between application and placement
	config.codes[0].IsActive = false

	order, err := flow.PlaceOrder(context.Background())
	require.NoError(t, err)
	assert.Empty(t, order.DiscountCode)
	assert.Equal(t, 0.0, order.Totals.DiscountAmount)
}

func TestPlaceOrder_SinkFailureKeepsStep(t *testing.T) {
	sink := &captureSink{err: context.DeadlineExceeded}
	c := filledCart(t)
	flow := newTestFlow(t, c, newStubConfig(), sink, time.Hour)
	advanceToReview(t, flow)

	_, err := flow.PlaceOrder(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.StepReview, flow.Step())
	assert.Nil(t, flow.Confirmation())
	assert.False(t, c.IsEmpty())
}

func TestSetShipping_BlockedAfterPlacement(t *testing.T) {
	flow := newTestFlow(t, filledCart(t), newStubConfig(), &captureSink{}, time.Hour)
	advanceToReview(t, flow)
	_, err := flow.PlaceOrder(context.Background())
	require.NoError(t, err)

	var transition *errors.ErrInvalidStateTransition
	assert.ErrorAs(t, flow.SetShipping(validShipping()), &transition)
	assert.ErrorAs(t, flow.SetPayment(validPayment()), &transition)
}

func TestConfirmation_FinishIsIdempotent(t *testing.T) {
	c := filledCart(t)
	flow := newTestFlow(t, c, newStubConfig(), &captureSink{}, time.Hour)
	advanceToReview(t, flow)

	_, err := flow.PlaceOrder(context.Background())
	require.NoError(t, err)

	confirmation := flow.Confirmation()
	confirmation.Finish()
	assert.True(t, c.IsEmpty())

	// A second Finish must not clear a cart refilled afterwards
	require.NoError(t, c.Add(domain.Product{ID: 2, Price: 100, Weight: 0.5}, 1, "", ""))
	confirmation.Finish()
	assert.False(t, c.IsEmpty())

	select {
	case <-confirmation.Done():
	default:
		t.Fatal("done channel should be closed after Finish")
	}
}
