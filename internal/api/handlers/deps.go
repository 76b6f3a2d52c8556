package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/asshop/storefront/internal/cart"
	"github.com/asshop/storefront/internal/catalog"
	"github.com/asshop/storefront/internal/checkout"
	"github.com/asshop/storefront/internal/config"
	"github.com/asshop/storefront/internal/i18n"
	"github.com/asshop/storefront/internal/metrics"
	"github.com/asshop/storefront/internal/orders"
	"github.com/asshop/storefront/internal/pricing"
	"github.com/asshop/storefront/internal/store"
	"github.com/asshop/storefront/pkg/errors"
)

// Deps bundles everything the handlers close over
type Deps struct {
	Config     *config.Config
	Logger     *zap.Logger
	Store      *store.ConfigStore
	Catalog    *catalog.Catalog
	Cart       *cart.Cart
	Orders     *orders.Repository
	Validator  *pricing.DiscountValidator
	Calculator *pricing.Calculator
	Metrics    *metrics.StoreMetrics
	Translator *i18n.Translator
	Session    *CheckoutSession
}

// CheckoutSession holds the one active checkout flow per browser context.
// The flow itself is not concurrency-safe; all handler access goes through
// the mutex here.
type CheckoutSession struct {
	mu   sync.Mutex
	flow *checkout.Flow
}

// NewCheckoutSession creates an empty session holder
func NewCheckoutSession() *CheckoutSession {
	return &CheckoutSession{}
}

// With runs fn while holding the session lock
func (s *CheckoutSession) With(fn func(flow *checkout.Flow) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.flow)
}

// Replace installs a new flow, finishing any confirmation still pending on
// the previous one so an abandoned session cannot double-clear the cart
func (s *CheckoutSession) Replace(flow *checkout.Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flow != nil {
		if confirmation := s.flow.Confirmation(); confirmation != nil {
			confirmation.Finish()
		}
	}
	s.flow = flow
}

// respondError maps typed errors to HTTP status codes
func respondError(c *gin.Context, logger *zap.Logger, translator *i18n.Translator, err error) {
	switch e := err.(type) {
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrConflict:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error()})
	case *errors.ErrValidation:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": e.Error()})
	case *errors.ErrMissingFields:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  translator.Translate("checkout.missingFields"),
			"fields": e.Fields,
		})
	case *errors.ErrInvalidStateTransition:
		c.JSON(http.StatusBadRequest, gin.H{"error": e.Error()})
	case *errors.ErrInvalidDiscount:
		c.JSON(http.StatusBadRequest, gin.H{"error": translator.Translate("checkout.invalidCode")})
	case *errors.ErrEmptyCart:
		c.JSON(http.StatusBadRequest, gin.H{"error": translator.Translate("cart.empty")})
	default:
		logger.Error("Unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
