package identity

import (
	"github.com/foodiejunction/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeUser = "User"

// Event type constants
const (
	EventTypeUserRegistered = "UserRegistered"
	EventTypeUserLoggedIn   = "UserLoggedIn"
	EventTypeUserLoggedOut  = "UserLoggedOut"
)

// UserRegisteredEvent is published when a new account is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent
func NewUserRegisteredEvent(user *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, AggregateTypeUser, user.ID),
		UserID:          user.ID,
		Email:           user.Email,
		Role:            user.Role,
	}
}

// UserLoggedInEvent is published on successful login
type UserLoggedInEvent struct {
	shared.BaseDomainEvent
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// NewUserLoggedInEvent creates a new UserLoggedInEvent
func NewUserLoggedInEvent(user *User) *UserLoggedInEvent {
	return &UserLoggedInEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserLoggedIn, AggregateTypeUser, user.ID),
		UserID:          user.ID,
		Email:           user.Email,
	}
}

// UserLoggedOutEvent is published when the session ends
type UserLoggedOutEvent struct {
	shared.BaseDomainEvent
	UserID string `json:"user_id"`
}

// NewUserLoggedOutEvent creates a new UserLoggedOutEvent
func NewUserLoggedOutEvent(userID string) *UserLoggedOutEvent {
	return &UserLoggedOutEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserLoggedOut, AggregateTypeUser, userID),
		UserID:          userID,
	}
}
