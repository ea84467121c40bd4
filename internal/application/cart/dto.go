package cart

import (
	"github.com/shopspring/decimal"

	"github.com/foodiejunction/backend/internal/domain/cart"
)

// LineResponse represents a cart line in API responses
type LineResponse struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartResponse represents the cart and its computed totals
type CartResponse struct {
	Lines     []LineResponse  `json:"lines"`
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}

// ChangeQuantityRequest adjusts a line's quantity by a signed delta
type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ToCartResponse converts the domain cart to a response DTO
func ToCartResponse(c *cart.Cart) CartResponse {
	lines := make([]LineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, LineResponse{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.Amount(),
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal().Round(2).Amount(),
		})
	}

	totals := c.Totals()
	return CartResponse{
		Lines:     lines,
		ItemCount: c.ItemCount(),
		Subtotal:  totals.Subtotal.Amount(),
		Tax:       totals.Tax.Amount(),
		Total:     totals.Total.Amount(),
	}
}
