package ordering

import "context"

// Repository defines the interface for order persistence
type Repository interface {
	// FindByID finds an order by its ID
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindAll returns every order, most recent first
	FindAll(ctx context.Context) ([]Order, error)

	// FindByCustomerName returns orders for an exact customer name,
	// most recent first
	FindByCustomerName(ctx context.Context, customerName string) ([]Order, error)

	// Save creates or updates an order
	Save(ctx context.Context, order *Order) error

	// DeleteAll wipes the ledger, used for demo reset
	DeleteAll(ctx context.Context) error
}
