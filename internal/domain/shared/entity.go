package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() string
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// NewID generates a prefixed identifier such as "item_5f3a..." so that
// raw IDs remain self-describing in logs and stored payloads.
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() string {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with a generated prefixed ID
func NewBaseEntity(idPrefix string) BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        NewID(idPrefix),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
