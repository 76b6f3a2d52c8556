package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asshop/storefront/internal/domain"
	"github.com/asshop/storefront/pkg/errors"
)

func testProduct(id int, price, weight float64) domain.Product {
	return domain.Product{ID: id, Name: "Product", Price: price, Weight: weight}
}

func TestAdd_MergesMatchingLines(t *testing.T) {
	c := New(0.5)

	require.NoError(t, c.Add(testProduct(1, 1000, 0.3), 1, "M", "black"))
	require.NoError(t, c.Add(testProduct(1, 1000, 0.3), 2, "M", "black"))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAdd_DifferentVariantsStaySeparate(t *testing.T) {
	c := New(0.5)

	require.NoError(t, c.Add(testProduct(1, 1000, 0.3), 1, "M", "black"))
	require.NoError(t, c.Add(testProduct(1, 1000, 0.3), 1, "L", "black"))

	assert.Len(t, c.Items(), 2)
}

func TestAdd_DefaultWeightForWeightlessProduct(t *testing.T) {
	c := New(0.5)

	require.NoError(t, c.Add(testProduct(1, 1000, 0), 2, "", ""))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 0.5, items[0].Weight)
	assert.Equal(t, 1.0, c.TotalWeight())
}

func TestAdd_RejectsNonPositiveQuantity(t *testing.T) {
	c := New(0.5)

	err := c.Add(testProduct(1, 1000, 0.3), 0, "", "")
	var verr *errors.ErrValidation
	assert.ErrorAs(t, err, &verr)
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantity(t *testing.T) {
	c := New(0.5)
	require.NoError(t, c.Add(testProduct(1, 1000, 0.3), 1, "", ""))

	require.NoError(t, c.UpdateQuantity(1, 5))
	assert.Equal(t, 5, c.Items()[0].Quantity)

	err := c.UpdateQuantity(99, 1)
	var nf *errors.ErrNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestRemove(t *testing.T) {
	c := New(0.5)
	require.NoError(t, c.Add(testProduct(1, 1000, 0.3), 1, "", ""))
	require.NoError(t, c.Add(testProduct(2, 2000, 0.3), 1, "", ""))

	require.NoError(t, c.Remove(1))
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ProductID)

	err := c.Remove(1)
	var nf *errors.ErrNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestSubtotalAndClear(t *testing.T) {
	c := New(0.5)
	require.NoError(t, c.Add(testProduct(1, 1000, 0.3), 2, "", ""))
	require.NoError(t, c.Add(testProduct(2, 500, 0.3), 1, "", ""))

	assert.Equal(t, 2500.0, c.Subtotal())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0.0, c.Subtotal())

	// Clearing an empty cart is a no-op
	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestItems_ReturnsSnapshot(t *testing.T) {
	c := New(0.5)
	require.NoError(t, c.Add(testProduct(1, 1000, 0.3), 1, "", ""))

	items := c.Items()
	items[0].Quantity = 42

	assert.Equal(t, 1, c.Items()[0].Quantity)
}
