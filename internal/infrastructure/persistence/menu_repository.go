package persistence

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/foodiejunction/backend/internal/domain/menu"
	"github.com/foodiejunction/backend/internal/domain/shared"
	"github.com/foodiejunction/backend/internal/domain/shared/valueobject"
	"github.com/foodiejunction/backend/internal/infrastructure/store"
)

// menuItemRecord is the stored form of a menu item. Prices are kept as
// decimal strings so payloads stay exact across backends.
type menuItemRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     string    `json:"price"`
	Rating    float64   `json:"rating"`
	Available bool      `json:"available"`
	Emoji     string    `json:"emoji"`
	Desc      string    `json:"desc"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreMenuRepository persists the whole menu as one JSON document,
// rewriting it on every mutation.
type StoreMenuRepository struct {
	store  store.Store
	logger *zap.Logger
}

// NewStoreMenuRepository creates a menu repository over the given store
func NewStoreMenuRepository(s store.Store, logger *zap.Logger) *StoreMenuRepository {
	return &StoreMenuRepository{store: s, logger: logger}
}

// FindByID implements menu.Repository
func (r *StoreMenuRepository) FindByID(ctx context.Context, id string) (*menu.Item, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			item, err := recordToItem(rec)
			if err != nil {
				return nil, err
			}
			return item, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll implements menu.Repository
func (r *StoreMenuRepository) FindAll(ctx context.Context) ([]menu.Item, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]menu.Item, 0, len(records))
	for _, rec := range records {
		item, err := recordToItem(rec)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

// Save implements menu.Repository
func (r *StoreMenuRepository) Save(ctx context.Context, item *menu.Item) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	updated := false
	for i, rec := range records {
		if rec.ID == item.ID {
			records[i] = itemToRecord(item)
			updated = true
			break
		}
	}
	if !updated {
		records = append(records, itemToRecord(item))
	}
	return r.store.Put(ctx, store.KeyMenu, records)
}

// Delete implements menu.Repository
func (r *StoreMenuRepository) Delete(ctx context.Context, id string) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return r.store.Put(ctx, store.KeyMenu, kept)
}

// Replace implements menu.Repository
func (r *StoreMenuRepository) Replace(ctx context.Context, items []menu.Item) error {
	records := make([]menuItemRecord, 0, len(items))
	for i := range items {
		records = append(records, itemToRecord(&items[i]))
	}
	return r.store.Put(ctx, store.KeyMenu, records)
}

func (r *StoreMenuRepository) load(ctx context.Context) ([]menuItemRecord, error) {
	return store.LoadOrDefault(ctx, r.store, store.KeyMenu, []menuItemRecord{}, r.logger)
}

func itemToRecord(item *menu.Item) menuItemRecord {
	return menuItemRecord{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		Price:     item.Price.StringFixed(2),
		Rating:    item.Rating,
		Available: item.Available,
		Emoji:     item.Emoji,
		Desc:      item.Description,
		Featured:  item.Featured,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func recordToItem(rec menuItemRecord) (*menu.Item, error) {
	price, err := valueobject.NewMoneyUSDFromString(rec.Price)
	if err != nil {
		return nil, err
	}
	return &menu.Item{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        rec.ID,
				CreatedAt: rec.CreatedAt,
				UpdatedAt: rec.UpdatedAt,
			},
		},
		Name:        rec.Name,
		Category:    rec.Category,
		Description: rec.Desc,
		Emoji:       rec.Emoji,
		Price:       price,
		Rating:      rec.Rating,
		Featured:    rec.Featured,
		Available:   rec.Available,
	}, nil
}

// Ensure interface compliance
var _ menu.Repository = (*StoreMenuRepository)(nil)
