package ordering

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/foodiejunction/backend/internal/domain/ordering"
)

// UpdateStatusRequest changes an order's status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderLineResponse represents a purchased line in API responses
type OrderLineResponse struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerAddress string              `json:"customer_address"`
	Lines           []OrderLineResponse `json:"lines"`
	ItemCount       int                 `json:"item_count"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Tax             decimal.Decimal     `json:"tax"`
	Total           decimal.Decimal     `json:"total"`
	Status          string              `json:"status"`
	PlacedAt        time.Time           `json:"placed_at"`
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(order *ordering.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, OrderLineResponse{
			Name:      l.Name,
			UnitPrice: l.UnitPrice.Amount(),
			Quantity:  l.Quantity,
		})
	}

	return OrderResponse{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		Lines:           lines,
		ItemCount:       order.ItemCount(),
		Subtotal:        order.Subtotal.Amount(),
		Tax:             order.Tax.Amount(),
		Total:           order.Total.Amount(),
		Status:          string(order.Status),
		PlacedAt:        order.PlacedAt,
	}
}

// ToOrderResponses converts a slice of domain orders to response DTOs
func ToOrderResponses(orders []ordering.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}
	return responses
}
