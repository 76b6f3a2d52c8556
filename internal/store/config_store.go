package store

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asshop/storefront/internal/domain"
	"github.com/asshop/storefront/internal/kvstore"
	"github.com/asshop/storefront/pkg/errors"
)

// Record keys, one per independently persisted collection
const (
	keySettings       = "storeSettings"
	keyDeliveryPrices = "deliveryPrices"
	keyDiscountCodes  = "discountCodes"
)

// ConfigStore owns store settings, the regional delivery price table and the
// discount-code registry. Records are loaded once at construction and written
// back wholesale after every mutation. In-memory state is updated first; a
// failed write is logged and never unwinds the mutation.
type ConfigStore struct {
	kv     kvstore.Store
	logger *zap.Logger

	settings       domain.StoreSettings
	deliveryPrices []domain.DeliveryPrice
	discountCodes  []domain.DiscountCode
}

// NewConfigStore loads all three records, falling back to the documented
// defaults when a record is missing or unreadable
func NewConfigStore(kv kvstore.Store, logger *zap.Logger) *ConfigStore {
	s := &ConfigStore{
		kv:     kv,
		logger: logger,
	}

	s.settings = defaultSettings()
	s.loadRecord(keySettings, &s.settings, func() { s.settings = defaultSettings() })

	s.deliveryPrices = defaultDeliveryPrices()
	s.loadRecord(keyDeliveryPrices, &s.deliveryPrices, func() { s.deliveryPrices = defaultDeliveryPrices() })

	s.discountCodes = defaultDiscountCodes()
	s.loadRecord(keyDiscountCodes, &s.discountCodes, func() { s.discountCodes = defaultDiscountCodes() })

	return s
}

// loadRecord decodes one persisted record into out. Missing records keep the
// preloaded default; corrupt records are reset to it and logged.
func (s *ConfigStore) loadRecord(key string, out interface{}, reset func()) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.logger.Warn("Failed to read persisted record, using defaults",
			zap.String("key", key), zap.Error(err))
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("Corrupt persisted record, replacing with defaults",
			zap.String("key", key), zap.Error(err))
		reset()
		s.persist(key, out)
	}
}

// persist writes one record back. Failures are logged, not returned: the
// in-memory mutation already happened and stays authoritative.
func (s *ConfigStore) persist(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("Failed to encode record", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.kv.Put(key, raw); err != nil {
		s.logger.Error("Failed to persist record", zap.String("key", key), zap.Error(err))
	}
}

// Settings returns a copy of the current store settings
func (s *ConfigStore) Settings() domain.StoreSettings {
	return s.settings
}

// SettingsPatch carries the fields to merge into the store settings. Nil
// fields are left untouched.
type SettingsPatch struct {
	StoreName                 *string  `json:"storeName,omitempty"`
	StoreDescription          *string  `json:"storeDescription,omitempty"`
	Currency                  *string  `json:"currency,omitempty"`
	TaxRate                   *float64 `json:"taxRate,omitempty"`
	DefaultShippingPrice      *float64 `json:"defaultShippingPrice,omitempty"`
	EnableWeightBasedShipping *bool    `json:"enableWeightBasedShipping,omitempty"`
	EnableDiscountCodes       *bool    `json:"enableDiscountCodes,omitempty"`
	EnableSizeSelection       *bool    `json:"enableSizeSelection,omitempty"`
	EnableColorSelection      *bool    `json:"enableColorSelection,omitempty"`
}

// UpdateSettings merges the patch into the current settings and persists the
// result. Numeric fields that are negative or not a number are rejected and
// the prior value stays in place.
func (s *ConfigStore) UpdateSettings(patch SettingsPatch) (domain.StoreSettings, error) {
	if patch.TaxRate != nil && !validAmount(*patch.TaxRate) {
		return s.settings, &errors.ErrValidation{Field: "taxRate", Message: "must be a number >= 0"}
	}
	if patch.DefaultShippingPrice != nil && !validAmount(*patch.DefaultShippingPrice) {
		return s.settings, &errors.ErrValidation{Field: "defaultShippingPrice", Message: "must be a number >= 0"}
	}

	if patch.StoreName != nil {
		s.settings.StoreName = *patch.StoreName
	}
	if patch.StoreDescription != nil {
		s.settings.StoreDescription = *patch.StoreDescription
	}
	if patch.Currency != nil {
		s.settings.Currency = *patch.Currency
	}
	if patch.TaxRate != nil {
		s.settings.TaxRate = *patch.TaxRate
	}
	if patch.DefaultShippingPrice != nil {
		s.settings.DefaultShippingPrice = *patch.DefaultShippingPrice
	}
	if patch.EnableWeightBasedShipping != nil {
		s.settings.EnableWeightBasedShipping = *patch.EnableWeightBasedShipping
	}
	if patch.EnableDiscountCodes != nil {
		s.settings.EnableDiscountCodes = *patch.EnableDiscountCodes
	}
	if patch.EnableSizeSelection != nil {
		s.settings.EnableSizeSelection = *patch.EnableSizeSelection
	}
	if patch.EnableColorSelection != nil {
		s.settings.EnableColorSelection = *patch.EnableColorSelection
	}

	s.persist(keySettings, s.settings)
	return s.settings, nil
}

// DeliveryTable returns the delivery price entries in registration order
func (s *ConfigStore) DeliveryTable() []domain.DeliveryPrice {
	out := make([]domain.DeliveryPrice, len(s.deliveryPrices))
	copy(out, s.deliveryPrices)
	return out
}

// ReplaceDeliveryTable swaps the whole table and persists it
func (s *ConfigStore) ReplaceDeliveryTable(entries []domain.DeliveryPrice) error {
	for _, e := range entries {
		if e.State == "" {
			return &errors.ErrValidation{Field: "state", Message: "must not be empty"}
		}
		if !validAmount(e.HomeDelivery) || !validAmount(e.StopDesk) {
			return &errors.ErrValidation{Field: "price", Message: "must be a number >= 0"}
		}
	}

	s.deliveryPrices = make([]domain.DeliveryPrice, len(entries))
	copy(s.deliveryPrices, entries)
	s.persist(keyDeliveryPrices, s.deliveryPrices)
	return nil
}

// ListDiscountCodes returns all registered discount codes
func (s *ConfigStore) ListDiscountCodes() []domain.DiscountCode {
	out := make([]domain.DiscountCode, len(s.discountCodes))
	copy(out, s.discountCodes)
	return out
}

// AddDiscountCode registers a new code. The code string must be unique,
// compared case-insensitively.
func (s *ConfigStore) AddDiscountCode(code domain.DiscountCode) (domain.DiscountCode, error) {
	if code.Code == "" {
		return domain.DiscountCode{}, &errors.ErrValidation{Field: "code", Message: "must not be empty"}
	}
	if !code.Type.IsValid() {
		return domain.DiscountCode{}, &errors.ErrValidation{Field: "type", Message: "must be percentage or fixed"}
	}
	if !(code.Value > 0) {
		return domain.DiscountCode{}, &errors.ErrValidation{Field: "value", Message: "must be a number > 0"}
	}
	if !validAmount(code.MinOrderAmount) {
		return domain.DiscountCode{}, &errors.ErrValidation{Field: "minOrderAmount", Message: "must be a number >= 0"}
	}

	for _, existing := range s.discountCodes {
		if strings.EqualFold(existing.Code, code.Code) {
			return domain.DiscountCode{}, &errors.ErrConflict{Resource: "discount code", Key: code.Code}
		}
	}

	if code.ID == "" {
		code.ID = uuid.NewString()
	}

	s.discountCodes = append(s.discountCodes, code)
	s.persist(keyDiscountCodes, s.discountCodes)
	return code, nil
}

// DiscountCodePatch carries the fields to merge into an existing code
type DiscountCodePatch struct {
	Code           *string              `json:"code,omitempty"`
	Type           *domain.DiscountType `json:"type,omitempty"`
	Value          *float64             `json:"value,omitempty"`
	IsActive       *bool                `json:"isActive,omitempty"`
	MinOrderAmount *float64             `json:"minOrderAmount,omitempty"`
	ExpiryDate     *time.Time           `json:"expiryDate,omitempty"`
	ClearExpiry    bool                 `json:"clearExpiry,omitempty"`
}

// UpdateDiscountCode merges the patch into the code with the given id
func (s *ConfigStore) UpdateDiscountCode(id string, patch DiscountCodePatch) (domain.DiscountCode, error) {
	idx := -1
	for i := range s.discountCodes {
		if s.discountCodes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.DiscountCode{}, &errors.ErrNotFound{Resource: "discount code", ID: id}
	}

	if patch.Type != nil && !patch.Type.IsValid() {
		return domain.DiscountCode{}, &errors.ErrValidation{Field: "type", Message: "must be percentage or fixed"}
	}
	if patch.Value != nil && !(*patch.Value > 0) {
		return domain.DiscountCode{}, &errors.ErrValidation{Field: "value", Message: "must be a number > 0"}
	}
	if patch.MinOrderAmount != nil && !validAmount(*patch.MinOrderAmount) {
		return domain.DiscountCode{}, &errors.ErrValidation{Field: "minOrderAmount", Message: "must be a number >= 0"}
	}
	if patch.Code != nil {
		for i, existing := range s.discountCodes {
			if i != idx && strings.EqualFold(existing.Code, *patch.Code) {
				return domain.DiscountCode{}, &errors.ErrConflict{Resource: "discount code", Key: *patch.Code}
			}
		}
	}

	code := &s.discountCodes[idx]
	if patch.Code != nil {
		code.Code = *patch.Code
	}
	if patch.Type != nil {
		code.Type = *patch.Type
	}
	if patch.Value != nil {
		code.Value = *patch.Value
	}
	if patch.IsActive != nil {
		code.IsActive = *patch.IsActive
	}
	if patch.MinOrderAmount != nil {
		code.MinOrderAmount = *patch.MinOrderAmount
	}
	if patch.ClearExpiry {
		code.ExpiryDate = nil
	} else if patch.ExpiryDate != nil {
		code.ExpiryDate = patch.ExpiryDate
	}

	s.persist(keyDiscountCodes, s.discountCodes)
	return *code, nil
}

// DeleteDiscountCode removes the code with the given id
func (s *ConfigStore) DeleteDiscountCode(id string) error {
	for i := range s.discountCodes {
		if s.discountCodes[i].ID == id {
			s.discountCodes = append(s.discountCodes[:i], s.discountCodes[i+1:]...)
			s.persist(keyDiscountCodes, s.discountCodes)
			return nil
		}
	}
	return &errors.ErrNotFound{Resource: "discount code", ID: id}
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
