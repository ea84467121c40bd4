package persistence

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/foodiejunction/backend/internal/domain/identity"
	"github.com/foodiejunction/backend/internal/domain/shared"
	"github.com/foodiejunction/backend/internal/infrastructure/store"
)

// userRecord is the stored form of a user account
type userRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StoreUserRepository persists accounts as one JSON document
type StoreUserRepository struct {
	store  store.Store
	logger *zap.Logger
}

// NewStoreUserRepository creates a user repository over the given store
func NewStoreUserRepository(s store.Store, logger *zap.Logger) *StoreUserRepository {
	return &StoreUserRepository{store: s, logger: logger}
}

// FindByID implements identity.UserRepository
func (r *StoreUserRepository) FindByID(ctx context.Context, id string) (*identity.User, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return recordToUser(rec), nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindByEmail implements identity.UserRepository
func (r *StoreUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Email == email {
			return recordToUser(rec), nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll implements identity.UserRepository
func (r *StoreUserRepository) FindAll(ctx context.Context) ([]identity.User, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]identity.User, 0, len(records))
	for _, rec := range records {
		users = append(users, *recordToUser(rec))
	}
	return users, nil
}

// Save implements identity.UserRepository
func (r *StoreUserRepository) Save(ctx context.Context, user *identity.User) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	updated := false
	for i, rec := range records {
		if rec.ID == user.ID {
			records[i] = userToRecord(user)
			updated = true
			break
		}
	}
	if !updated {
		records = append(records, userToRecord(user))
	}
	return r.store.Put(ctx, store.KeyUsers, records)
}

func (r *StoreUserRepository) load(ctx context.Context) ([]userRecord, error) {
	return store.LoadOrDefault(ctx, r.store, store.KeyUsers, []userRecord{}, r.logger)
}

func userToRecord(user *identity.User) userRecord {
	return userRecord{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func recordToUser(rec userRecord) *identity.User {
	return &identity.User{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        rec.ID,
				CreatedAt: rec.CreatedAt,
				UpdatedAt: rec.UpdatedAt,
			},
		},
		Name:         rec.Name,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		Role:         identity.Role(rec.Role),
	}
}

// Ensure interface compliance
var _ identity.UserRepository = (*StoreUserRepository)(nil)
