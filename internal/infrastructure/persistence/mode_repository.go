package persistence

import (
	"context"

	"go.uber.org/zap"

	"github.com/foodiejunction/backend/internal/domain/identity"
	"github.com/foodiejunction/backend/internal/infrastructure/store"
)

// StoreModeRepository persists the active storefront mode
type StoreModeRepository struct {
	store  store.Store
	logger *zap.Logger
}

// NewStoreModeRepository creates a mode repository over the given store
func NewStoreModeRepository(s store.Store, logger *zap.Logger) *StoreModeRepository {
	return &StoreModeRepository{store: s, logger: logger}
}

// Load implements identity.ModeRepository
func (r *StoreModeRepository) Load(ctx context.Context) (identity.Mode, error) {
	mode, err := store.LoadOrDefault(ctx, r.store, store.KeyMode, identity.ModeCustomer, r.logger)
	if err != nil {
		return identity.ModeCustomer, err
	}
	if !mode.IsValid() {
		return identity.ModeCustomer, nil
	}
	return mode, nil
}

// Save implements identity.ModeRepository
func (r *StoreModeRepository) Save(ctx context.Context, mode identity.Mode) error {
	return r.store.Put(ctx, store.KeyMode, mode)
}

// Ensure interface compliance
var _ identity.ModeRepository = (*StoreModeRepository)(nil)
