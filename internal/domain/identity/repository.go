package identity

import "context"

// UserRepository defines the interface for account persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail finds a user by email, case-insensitive
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll returns every registered user
	FindAll(ctx context.Context) ([]User, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error
}

// ProfileRepository persists the storefront's delivery profile
type ProfileRepository interface {
	// Load returns the current profile, falling back to the guest default
	Load(ctx context.Context) (Profile, error)

	// Save persists the profile
	Save(ctx context.Context, profile Profile) error
}

// SessionRepository tracks which user is currently signed in
type SessionRepository interface {
	// CurrentUserID returns the signed-in user's ID, or "" when signed out
	CurrentUserID(ctx context.Context) (string, error)

	// SetCurrentUser records the signed-in user
	SetCurrentUser(ctx context.Context, user *User) error

	// ClearCurrentUser signs the session out
	ClearCurrentUser(ctx context.Context) error
}

// Mode is the storefront view the UI is showing
type Mode string

const (
	ModeCustomer Mode = "customer"
	ModeAdmin    Mode = "admin"
)

// IsValid checks if the mode is a known value
func (m Mode) IsValid() bool {
	return m == ModeCustomer || m == ModeAdmin
}

// ModeRepository persists the active storefront mode
type ModeRepository interface {
	// Load returns the active mode, defaulting to customer
	Load(ctx context.Context) (Mode, error)

	// Save persists the active mode
	Save(ctx context.Context, mode Mode) error
}
