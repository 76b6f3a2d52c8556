package pricing

import (
	"strings"
	"time"

	"github.com/asshop/storefront/internal/domain"
)

// DiscountValidator matches a submitted code against the registry. The caller
// only learns match-or-no-match; which rule rejected the code is never
// disclosed.
type DiscountValidator struct {
	config ConfigSource
	now    func() time.Time
}

// NewDiscountValidator creates a validator using the wall clock
func NewDiscountValidator(config ConfigSource) *DiscountValidator {
	return &DiscountValidator{config: config, now: time.Now}
}

// NewDiscountValidatorAt creates a validator with an injected clock
func NewDiscountValidatorAt(config ConfigSource, now func() time.Time) *DiscountValidator {
	return &DiscountValidator{config: config, now: now}
}

// Validate returns the matching discount for the code and subtotal. A code
// matches when it compares equal case-insensitively, is active, the subtotal
// meets the minimum order amount, and the code has not yet expired.
func (v *DiscountValidator) Validate(code string, subtotal float64) (domain.DiscountCode, bool) {
	now := v.now()
	for _, d := range v.config.ListDiscountCodes() {
		if !strings.EqualFold(d.Code, code) {
			continue
		}
		if !d.IsActive {
			continue
		}
		if d.MinOrderAmount > 0 && subtotal < d.MinOrderAmount {
			continue
		}
		if d.ExpiryDate != nil && now.After(*d.ExpiryDate) {
			continue
		}
		return d, true
	}
	return domain.DiscountCode{}, false
}
