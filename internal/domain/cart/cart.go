package cart

import (
	"github.com/shopspring/decimal"

	"github.com/foodiejunction/backend/internal/domain/shared"
	"github.com/foodiejunction/backend/internal/domain/shared/valueobject"
)

// IDPrefix is the prefix used for cart identifiers
const IDPrefix = "cart"

// TaxRate is the flat sales tax applied at display and checkout time
var TaxRate = decimal.NewFromFloat(0.08)

// Line is a cart entry keyed by the menu item it references.
// Name and unit price are snapshots taken when the line was added,
// so later menu edits do not retroactively change the cart.
type Line struct {
	ItemID    string            `json:"item_id"`
	Name      string            `json:"name"`
	UnitPrice valueobject.Money `json:"unit_price"`
	Quantity  int               `json:"quantity"`
}

// LineTotal returns unit price times quantity, unrounded
func (l Line) LineTotal() valueobject.Money {
	return l.UnitPrice.MultiplyByInt(int64(l.Quantity))
}

// Totals is the computed cart summary
type Totals struct {
	Subtotal valueobject.Money
	Tax      valueobject.Money
	Total    valueobject.Money
}

// Cart is the shopping cart aggregate root
type Cart struct {
	shared.BaseAggregateRoot
	Lines []Line
}

// NewCart creates a new empty cart
func NewCart() *Cart {
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(IDPrefix),
		Lines:             make([]Line, 0),
	}
}

// AddLine adds one unit of a menu item, snapshotting its name and price.
// If a line for the item already exists its quantity is incremented and
// the original snapshot stays in place.
func (c *Cart) AddLine(itemID, name string, unitPrice valueobject.Money) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, Line{
		ItemID:    itemID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// ChangeQuantity adjusts a line's quantity by delta. A resulting
// quantity of zero or less removes the line. Unknown items are ignored.
func (c *Cart) ChangeQuantity(itemID string, delta int) {
	for i := range c.Lines {
		if c.Lines[i].ItemID != itemID {
			continue
		}
		c.Lines[i].Quantity += delta
		if c.Lines[i].Quantity <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return
	}
}

// RemoveLine drops the line for the given menu item, if present
func (c *Cart) RemoveLine(itemID string) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// EvictItem removes any line referencing the given menu item and
// reports whether the cart changed. Used when an item is deleted or
// disabled on the admin side.
func (c *Cart) EvictItem(itemID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Lines = make([]Line, 0)
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount returns the total number of units across all lines
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// Totals computes subtotal, tax, and total. Each figure is rounded to
// cents independently, matching what the storefront displays.
func (c *Cart) Totals() Totals {
	subtotal := valueobject.ZeroUSD()
	for _, l := range c.Lines {
		subtotal = subtotal.MustAdd(l.LineTotal())
	}
	tax := subtotal.Multiply(TaxRate)
	total := subtotal.MustAdd(tax)
	return Totals{
		Subtotal: subtotal.Round(2),
		Tax:      tax.Round(2),
		Total:    total.Round(2),
	}
}
