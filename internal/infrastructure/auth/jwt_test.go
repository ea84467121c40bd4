package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodiejunction/backend/internal/domain/identity"
	"github.com/foodiejunction/backend/internal/infrastructure/config"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-that-is-long-enough-0123",
		TokenExpiration: expiration,
		Issuer:          "foodiejunction-test",
	})
}

func newTestUser(t *testing.T, role identity.Role) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Jane Doe", "jane@demo.com", "demo1234", role)
	require.NoError(t, err)
	return user
}

func TestGenerateToken(t *testing.T) {
	svc := newTestService(time.Hour)
	user := newTestUser(t, identity.RoleCustomer)

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	assert.NotEmpty(t, token.Value)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)
}

func TestValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	t.Run("accepts a token it issued", func(t *testing.T) {
		user := newTestUser(t, identity.RoleAdmin)
		token, err := svc.GenerateToken(user)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token.Value)
		require.NoError(t, err)

		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, user.Name, claims.Name)
		assert.True(t, claims.IsAdmin())
		assert.Greater(t, claims.GetRemainingTTL(), time.Duration(0))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:          "a-completely-different-secret-456789",
			TokenExpiration: time.Hour,
			Issuer:          "foodiejunction-test",
		})
		user := newTestUser(t, identity.RoleCustomer)
		token, err := other.GenerateToken(user)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token.Value)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := newTestService(-time.Minute)
		user := newTestUser(t, identity.RoleCustomer)
		token, err := expired.GenerateToken(user)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token.Value)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("customer claims are not admin", func(t *testing.T) {
		user := newTestUser(t, identity.RoleCustomer)
		token, err := svc.GenerateToken(user)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token.Value)
		require.NoError(t, err)
		assert.False(t, claims.IsAdmin())
	})
}
