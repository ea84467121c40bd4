package identity

import (
	"time"

	"github.com/foodiejunction/backend/internal/domain/identity"
)

// RegisterRequest creates a new customer account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4,max=72"`
}

// LoginRequest signs a user in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest replaces the delivery profile
type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"max=100"`
	Phone   string `json:"phone" binding:"max=40"`
	Address string `json:"address" binding:"max=300"`
}

// SwitchModeRequest changes the storefront view
type SwitchModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// UserResponse represents an account in API responses.
// The password hash never leaves the server.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is the result of a successful register or login
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// ProfileResponse represents the delivery profile
type ProfileResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ModeResponse reports the active storefront mode
type ModeResponse struct {
	Mode string `json:"mode"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// ToProfileResponse converts the domain profile to a response DTO
func ToProfileResponse(profile identity.Profile) ProfileResponse {
	return ProfileResponse{
		Name:    profile.Name,
		Phone:   profile.Phone,
		Address: profile.Address,
	}
}
