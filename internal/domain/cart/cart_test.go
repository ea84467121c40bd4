package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodiejunction/backend/internal/domain/shared/valueobject"
)

func TestNewCart(t *testing.T) {
	c := NewCart()
	assert.Contains(t, c.ID, IDPrefix+"_")
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.ItemCount())
}

func TestCartAddLine(t *testing.T) {
	t.Run("adds a new line with snapshot", func(t *testing.T) {
		c := NewCart()
		c.AddLine("item_1", "Classic Cheeseburger", valueobject.NewMoneyUSDFromFloat(8.99))

		require.Len(t, c.Lines, 1)
		assert.Equal(t, "item_1", c.Lines[0].ItemID)
		assert.Equal(t, "Classic Cheeseburger", c.Lines[0].Name)
		assert.Equal(t, 1, c.Lines[0].Quantity)
	})

	t.Run("increments quantity on repeat add", func(t *testing.T) {
		c := NewCart()
		c.AddLine("item_1", "Burger", valueobject.NewMoneyUSDFromFloat(8.99))
		c.AddLine("item_1", "Burger", valueobject.NewMoneyUSDFromFloat(8.99))

		require.Len(t, c.Lines, 1)
		assert.Equal(t, 2, c.Lines[0].Quantity)
		assert.Equal(t, 2, c.ItemCount())
	})

	t.Run("repeat add keeps the original snapshot", func(t *testing.T) {
		c := NewCart()
		c.AddLine("item_1", "Burger", valueobject.NewMoneyUSDFromFloat(8.99))
		c.AddLine("item_1", "Renamed Burger", valueobject.NewMoneyUSDFromFloat(99.99))

		require.Len(t, c.Lines, 1)
		assert.Equal(t, "Burger", c.Lines[0].Name)
		assert.Equal(t, "8.99", c.Lines[0].UnitPrice.StringFixed(2))
	})
}

func TestCartChangeQuantity(t *testing.T) {
	t.Run("increments and decrements", func(t *testing.T) {
		c := NewCart()
		c.AddLine("item_1", "Burger", valueobject.NewMoneyUSDFromFloat(8.99))

		c.ChangeQuantity("item_1", 2)
		assert.Equal(t, 3, c.Lines[0].Quantity)

		c.ChangeQuantity("item_1", -1)
		assert.Equal(t, 2, c.Lines[0].Quantity)
	})

	t.Run("dropping to zero removes the line", func(t *testing.T) {
		c := NewCart()
		c.AddLine("item_1", "Burger", valueobject.NewMoneyUSDFromFloat(8.99))

		c.ChangeQuantity("item_1", -1)
		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown item is ignored", func(t *testing.T) {
		c := NewCart()
		c.ChangeQuantity("item_missing", 1)
		assert.True(t, c.IsEmpty())
	})
}

func TestCartRemoveLine(t *testing.T) {
	c := NewCart()
	c.AddLine("item_1", "Burger", valueobject.NewMoneyUSDFromFloat(8.99))
	c.AddLine("item_2", "Pizza", valueobject.NewMoneyUSDFromFloat(11.50))

	c.RemoveLine("item_1")
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "item_2", c.Lines[0].ItemID)
}

func TestCartEvictItem(t *testing.T) {
	c := NewCart()
	c.AddLine("item_1", "Burger", valueobject.NewMoneyUSDFromFloat(8.99))

	assert.True(t, c.EvictItem("item_1"))
	assert.True(t, c.IsEmpty())
	assert.False(t, c.EvictItem("item_1"))
}

func TestCartClear(t *testing.T) {
	c := NewCart()
	c.AddLine("item_1", "Burger", valueobject.NewMoneyUSDFromFloat(8.99))

	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestCartTotals(t *testing.T) {
	t.Run("empty cart totals are zero", func(t *testing.T) {
		totals := NewCart().Totals()
		assert.Equal(t, "0.00", totals.Subtotal.StringFixed(2))
		assert.Equal(t, "0.00", totals.Tax.StringFixed(2))
		assert.Equal(t, "0.00", totals.Total.StringFixed(2))
	})

	t.Run("applies eight percent tax with cent rounding", func(t *testing.T) {
		c := NewCart()
		c.AddLine("item_a", "Classic Cheeseburger", valueobject.NewMoneyUSDFromFloat(8.99))
		c.AddLine("item_a", "Classic Cheeseburger", valueobject.NewMoneyUSDFromFloat(8.99))
		c.AddLine("item_b", "Margherita Pizza", valueobject.NewMoneyUSDFromFloat(11.50))

		totals := c.Totals()
		assert.Equal(t, "29.48", totals.Subtotal.StringFixed(2))
		assert.Equal(t, "2.36", totals.Tax.StringFixed(2))
		assert.Equal(t, "31.84", totals.Total.StringFixed(2))
	})
}
