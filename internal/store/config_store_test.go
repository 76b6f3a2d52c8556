package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/asshop/storefront/internal/domain"
	"github.com/asshop/storefront/internal/kvstore"
	"github.com/asshop/storefront/pkg/errors"
)

func newTestStore(t *testing.T) (*ConfigStore, kvstore.Store) {
	t.Helper()
	kv := kvstore.NewMemory()
	return NewConfigStore(kv, zap.NewNop()), kv
}

func ptr[T any](v T) *T { return &v }

func TestNewConfigStore_DefaultsOnEmptyStore(t *testing.T) {
	s, _ := newTestStore(t)

	settings := s.Settings()
	assert.Equal(t, "AS", settings.StoreName)
	assert.Equal(t, "DA", settings.Currency)
	assert.Equal(t, 19.0, settings.TaxRate)
	assert.Equal(t, 500.0, settings.DefaultShippingPrice)
	assert.True(t, settings.EnableWeightBasedShipping)
	assert.True(t, settings.EnableDiscountCodes)
	assert.True(t, settings.EnableSizeSelection)
	assert.True(t, settings.EnableColorSelection)

	assert.Len(t, s.DeliveryTable(), 48)
	assert.Len(t, s.ListDiscountCodes(), 3)
}

func TestUpdateSettings_PersistsAcrossRestart(t *testing.T) {
	s, kv := newTestStore(t)

	_, err := s.UpdateSettings(SettingsPatch{TaxRate: ptr(20.0)})
	require.NoError(t, err)

	// A fresh store over the same file sees the saved value
	reopened := NewConfigStore(kv, zap.NewNop())
	assert.Equal(t, 20.0, reopened.Settings().TaxRate)
}

func TestUpdateSettings_RejectsNegativeAmounts(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.UpdateSettings(SettingsPatch{TaxRate: ptr(-1.0)})
	var verr *errors.ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "taxRate", verr.Field)

	// The prior value is untouched
	assert.Equal(t, 19.0, s.Settings().TaxRate)
}

func TestUpdateSettings_PartialPatch(t *testing.T) {
	s, _ := newTestStore(t)

	updated, err := s.UpdateSettings(SettingsPatch{StoreName: ptr("New Name")})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.StoreName)
	assert.Equal(t, 19.0, updated.TaxRate)
	assert.Equal(t, "DA", updated.Currency)
}

func TestNewConfigStore_CorruptRecordResetsToDefaults(t *testing.T) {
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Put("storeSettings", []byte("{not json")))

	s := NewConfigStore(kv, zap.NewNop())
	assert.Equal(t, "AS", s.Settings().StoreName)

	// The reset record is written back in valid form
	raw, ok, err := kv.Get("storeSettings")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"storeName":"AS"`)
}

func TestReplaceDeliveryTable(t *testing.T) {
	s, kv := newTestStore(t)

	entries := []domain.DeliveryPrice{
		{State: "Alger", HomeDelivery: 800, StopDesk: 400, WeightMultiplier: 0.7},
	}
	require.NoError(t, s.ReplaceDeliveryTable(entries))

	reopened := NewConfigStore(kv, zap.NewNop())
	table := reopened.DeliveryTable()
	require.Len(t, table, 1)
	assert.Equal(t, 800.0, table[0].HomeDelivery)
}

func TestReplaceDeliveryTable_RejectsBadEntries(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.ReplaceDeliveryTable([]domain.DeliveryPrice{{State: "", HomeDelivery: 800}})
	var verr *errors.ErrValidation
	assert.ErrorAs(t, err, &verr)

	err = s.ReplaceDeliveryTable([]domain.DeliveryPrice{{State: "Alger", HomeDelivery: -5}})
	assert.ErrorAs(t, err, &verr)

	// The default table survives both rejections
	assert.Len(t, s.DeliveryTable(), 48)
}

func TestAddDiscountCode(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.AddDiscountCode(domain.DiscountCode{
		Code:     "SUMMER20",
		Type:     domain.DiscountTypePercentage,
		Value:    20,
		IsActive: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, s.ListDiscountCodes(), 4)
}

func TestAddDiscountCode_DuplicateCaseInsensitive(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddDiscountCode(domain.DiscountCode{
		Code:  "welcome10",
		Type:  domain.DiscountTypeFixed,
		Value: 100,
	})
	var conflict *errors.ErrConflict
	require.ErrorAs(t, err, &conflict)
	assert.Len(t, s.ListDiscountCodes(), 3)
}

func TestAddDiscountCode_Validation(t *testing.T) {
	s, _ := newTestStore(t)

	var verr *errors.ErrValidation

	_, err := s.AddDiscountCode(domain.DiscountCode{Type: domain.DiscountTypeFixed, Value: 100})
	assert.ErrorAs(t, err, &verr)

	_, err = s.AddDiscountCode(domain.DiscountCode{Code: "X", Type: "bogus", Value: 100})
	assert.ErrorAs(t, err, &verr)

	_, err = s.AddDiscountCode(domain.DiscountCode{Code: "X", Type: domain.DiscountTypeFixed, Value: 0})
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateDiscountCode(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.ListDiscountCodes()[0].ID

	updated, err := s.UpdateDiscountCode(id, DiscountCodePatch{IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = s.UpdateDiscountCode("no-such-id", DiscountCodePatch{})
	var nf *errors.ErrNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestDeleteDiscountCode(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.ListDiscountCodes()[0].ID

	require.NoError(t, s.DeleteDiscountCode(id))
	assert.Len(t, s.ListDiscountCodes(), 2)

	err := s.DeleteDiscountCode(id)
	var nf *errors.ErrNotFound
	assert.ErrorAs(t, err, &nf)
}
