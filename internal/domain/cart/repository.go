package cart

import "context"

// Repository defines the interface for cart persistence.
// The storefront keeps a single active cart.
type Repository interface {
	// Load returns the current cart, creating an empty one if none exists
	Load(ctx context.Context) (*Cart, error)

	// Save persists the cart
	Save(ctx context.Context, c *Cart) error
}
