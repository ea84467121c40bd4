package persistence

import (
	"context"

	"go.uber.org/zap"

	"github.com/foodiejunction/backend/internal/domain/identity"
	"github.com/foodiejunction/backend/internal/infrastructure/store"
)

// StoreProfileRepository persists the storefront's delivery profile
type StoreProfileRepository struct {
	store  store.Store
	logger *zap.Logger
}

// NewStoreProfileRepository creates a profile repository over the given store
func NewStoreProfileRepository(s store.Store, logger *zap.Logger) *StoreProfileRepository {
	return &StoreProfileRepository{store: s, logger: logger}
}

// Load implements identity.ProfileRepository
func (r *StoreProfileRepository) Load(ctx context.Context) (identity.Profile, error) {
	return store.LoadOrDefault(ctx, r.store, store.KeyProfile, identity.DefaultProfile(), r.logger)
}

// Save implements identity.ProfileRepository
func (r *StoreProfileRepository) Save(ctx context.Context, profile identity.Profile) error {
	return r.store.Put(ctx, store.KeyProfile, profile)
}

// Ensure interface compliance
var _ identity.ProfileRepository = (*StoreProfileRepository)(nil)
