package persistence

import (
	"context"

	"go.uber.org/zap"

	"github.com/foodiejunction/backend/internal/domain/identity"
	"github.com/foodiejunction/backend/internal/infrastructure/store"
)

// sessionRecord is the stored form of the signed-in user: a snapshot
// of the identity fields the storefront shows, not just the id.
type sessionRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// StoreSessionRepository tracks the signed-in user in the store
type StoreSessionRepository struct {
	store  store.Store
	logger *zap.Logger
}

// NewStoreSessionRepository creates a session repository over the given store
func NewStoreSessionRepository(s store.Store, logger *zap.Logger) *StoreSessionRepository {
	return &StoreSessionRepository{store: s, logger: logger}
}

// CurrentUserID implements identity.SessionRepository
func (r *StoreSessionRepository) CurrentUserID(ctx context.Context) (string, error) {
	rec, err := store.LoadOrDefault(ctx, r.store, store.KeyCurrentUser, sessionRecord{}, r.logger)
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// SetCurrentUser implements identity.SessionRepository
func (r *StoreSessionRepository) SetCurrentUser(ctx context.Context, user *identity.User) error {
	rec := sessionRecord{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
	return r.store.Put(ctx, store.KeyCurrentUser, rec)
}

// ClearCurrentUser implements identity.SessionRepository
func (r *StoreSessionRepository) ClearCurrentUser(ctx context.Context) error {
	return r.store.Delete(ctx, store.KeyCurrentUser)
}

// Ensure interface compliance
var _ identity.SessionRepository = (*StoreSessionRepository)(nil)
