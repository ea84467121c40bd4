package menu

import "context"

// Repository defines the interface for menu item persistence
type Repository interface {
	// FindByID finds a menu item by its ID
	FindByID(ctx context.Context, id string) (*Item, error)

	// FindAll returns every menu item, available or not
	FindAll(ctx context.Context) ([]Item, error)

	// Save creates or updates a menu item
	Save(ctx context.Context, item *Item) error

	// Delete removes a menu item
	Delete(ctx context.Context, id string) error

	// Replace overwrites the whole menu, used for seeding and demo reset
	Replace(ctx context.Context, items []Item) error
}
