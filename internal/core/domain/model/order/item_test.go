package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodorder/internal/pkg/errs"
)

func Test_NewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := NewItem("i1", "p1", "Beef Noodles", 2, 50)
		require.NoError(t, err)

		assert.Equal(t, "i1", item.ID())
		assert.Equal(t, "p1", item.ProductID())
		assert.Equal(t, "Beef Noodles", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, 50.0, item.Price())
		assert.NoError(t, item.Validate())
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		item, err := NewItem("i1", "p1", "Tap Water", 1, 0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, item.TotalPrice())
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := NewItem("", "p1", "Beef Noodles", 2, 50)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty product id", func(t *testing.T) {
		_, err := NewItem("i1", "", "Beef Noodles", 2, 50)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewItem("i1", "p1", "", 2, 50)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := NewItem("i1", "p1", "Beef Noodles", 0, 50)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := NewItem("i1", "p1", "Beef Noodles", -1, 50)
		assert.Error(t, err)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := NewItem("i1", "p1", "Beef Noodles", 2, -0.01)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("joins multiple validation errors", func(t *testing.T) {
		_, err := NewItem("", "", "", 0, -1)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func Test_Item_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var item Item
		assert.ErrorIs(t, item.Validate(), ErrItemIsNotConstructed)
	})
}

func Test_Item_TotalPrice(t *testing.T) {
	item, err := NewItem("i1", "p1", "Beef Noodles", 2, 50)
	require.NoError(t, err)
	assert.Equal(t, 100.0, item.TotalPrice())

	item, err = NewItem("i2", "p2", "Iced Tea", 3, 30.5)
	require.NoError(t, err)
	assert.Equal(t, 91.5, item.TotalPrice())
}

func Test_Item_IsEqual(t *testing.T) {
	a, err := NewItem("i1", "p1", "Beef Noodles", 2, 50)
	require.NoError(t, err)
	b, err := NewItem("i1", "p1", "Beef Noodles", 2, 50)
	require.NoError(t, err)
	c, err := NewItem("i1", "p1", "Beef Noodles", 3, 50)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func Test_Item_WithQuantity(t *testing.T) {
	original, err := NewItem("i1", "p1", "Beef Noodles", 2, 50)
	require.NoError(t, err)

	t.Run("returns updated copy", func(t *testing.T) {
		updated, err := original.WithQuantity(5)
		require.NoError(t, err)

		assert.Equal(t, 5, updated.Quantity())
		assert.Equal(t, 2, original.Quantity())
		assert.Equal(t, original.ID(), updated.ID())
	})

	t.Run("rejects invalid quantity", func(t *testing.T) {
		_, err := original.WithQuantity(0)
		assert.Error(t, err)
	})
}
