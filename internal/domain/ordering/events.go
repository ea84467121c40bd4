package ordering

import (
	"github.com/foodiejunction/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderPlaced        = "OrderPlaced"
	EventTypeOrderStatusChanged = "OrderStatusChanged"
)

// OrderPlacedEvent is published when checkout completes
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID      string `json:"order_id"`
	CustomerName string `json:"customer_name"`
	Total        string `json:"total"`
	ItemCount    int    `json:"item_count"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(order *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		CustomerName:    order.CustomerName,
		Total:           order.Total.StringFixed(2),
		ItemCount:       order.ItemCount(),
	}
}

// OrderStatusChangedEvent is published when an admin moves an order
// to a different status
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID   string `json:"order_id"`
	OldStatus Status `json:"old_status"`
	NewStatus Status `json:"new_status"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(order *Order, oldStatus, newStatus Status) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}
