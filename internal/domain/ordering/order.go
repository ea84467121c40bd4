package ordering

import (
	"time"

	"github.com/foodiejunction/backend/internal/domain/cart"
	"github.com/foodiejunction/backend/internal/domain/shared"
	"github.com/foodiejunction/backend/internal/domain/shared/valueobject"
)

// IDPrefix is the prefix used for order identifiers
const IDPrefix = "order"

// Status represents the fulfillment state of an order
type Status string

const (
	StatusPlaced         Status = "Placed"
	StatusPreparing      Status = "Preparing"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

// AllStatuses lists every order status in display order
func AllStatuses() []Status {
	return []Status{StatusPlaced, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled}
}

// IsValid checks if the status is a known value
func (s Status) IsValid() bool {
	switch s {
	case StatusPlaced, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Line is an order line snapshotted from the cart at checkout
type Line struct {
	Name      string            `json:"name"`
	UnitPrice valueobject.Money `json:"unit_price"`
	Quantity  int               `json:"quantity"`
}

// Order is the placed order aggregate root. Customer details and line
// items are copies taken at checkout; later profile or menu edits do
// not touch existing orders.
type Order struct {
	shared.BaseAggregateRoot
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Lines           []Line
	Subtotal        valueobject.Money
	Tax             valueobject.Money
	Total           valueobject.Money
	Status          Status
	PlacedAt        time.Time
}

// NewOrder fills an order from the given cart and customer details.
// The cart must have at least one line.
func NewOrder(c *cart.Cart, customerName, customerPhone, customerAddress string) (*Order, error) {
	if c == nil || c.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}
	if customerName == "" {
		customerName = "Guest User"
	}

	lines := make([]Line, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, Line{
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}

	totals := c.Totals()
	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(IDPrefix),
		CustomerName:      customerName,
		CustomerPhone:     customerPhone,
		CustomerAddress:   customerAddress,
		Lines:             lines,
		Subtotal:          totals.Subtotal,
		Tax:               totals.Tax,
		Total:             totals.Total,
		Status:            StatusPlaced,
		PlacedAt:          time.Now(),
	}

	order.AddDomainEvent(NewOrderPlacedEvent(order))
	return order, nil
}

// ChangeStatus sets the order status. Any valid status may follow any
// other, same as the admin dropdown allows.
func (o *Order) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return shared.NewDomainError("VALIDATION_ERROR", "Unknown order status: "+string(next))
	}
	if o.Status == next {
		return nil
	}
	old := o.Status
	o.Status = next
	o.AddDomainEvent(NewOrderStatusChangedEvent(o, old, next))
	return nil
}

// ItemCount returns the total number of units in the order
func (o *Order) ItemCount() int {
	count := 0
	for _, l := range o.Lines {
		count += l.Quantity
	}
	return count
}
