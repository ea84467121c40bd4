package persistence

import (
	"context"

	"go.uber.org/zap"

	"github.com/foodiejunction/backend/internal/domain/cart"
	"github.com/foodiejunction/backend/internal/domain/shared/valueobject"
	"github.com/foodiejunction/backend/internal/infrastructure/store"
)

// cartLineRecord is the stored form of a cart line
type cartLineRecord struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"qty"`
}

// StoreCartRepository persists the single active cart as one JSON
// array of lines, mirroring how the storefront stores it.
type StoreCartRepository struct {
	store  store.Store
	logger *zap.Logger
}

// NewStoreCartRepository creates a cart repository over the given store
func NewStoreCartRepository(s store.Store, logger *zap.Logger) *StoreCartRepository {
	return &StoreCartRepository{store: s, logger: logger}
}

// Load implements cart.Repository. A missing or corrupt payload yields
// an empty cart.
func (r *StoreCartRepository) Load(ctx context.Context) (*cart.Cart, error) {
	records, err := store.LoadOrDefault(ctx, r.store, store.KeyCart, []cartLineRecord{}, r.logger)
	if err != nil {
		return nil, err
	}

	c := cart.NewCart()
	for _, rec := range records {
		price, err := valueobject.NewMoneyUSDFromString(rec.Price)
		if err != nil {
			// Skip lines with unreadable prices rather than losing the
			// whole cart.
			continue
		}
		c.Lines = append(c.Lines, cart.Line{
			ItemID:    rec.ItemID,
			Name:      rec.Name,
			UnitPrice: price,
			Quantity:  rec.Quantity,
		})
	}
	return c, nil
}

// Save implements cart.Repository
func (r *StoreCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	records := make([]cartLineRecord, 0, len(c.Lines))
	for _, l := range c.Lines {
		records = append(records, cartLineRecord{
			ItemID:   l.ItemID,
			Name:     l.Name,
			Price:    l.UnitPrice.StringFixed(2),
			Quantity: l.Quantity,
		})
	}
	return r.store.Put(ctx, store.KeyCart, records)
}

// Ensure interface compliance
var _ cart.Repository = (*StoreCartRepository)(nil)
