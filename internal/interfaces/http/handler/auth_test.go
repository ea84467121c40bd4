package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodiejunction/backend/internal/infrastructure/persistence"
)

type authBody struct {
	Data struct {
		User struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
		Token string `json:"token"`
	} `json:"data"`
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("registers and signs in", func(t *testing.T) {
		stack := newTestStack(t)

		w := stack.do(t, http.MethodPost, "/api/v1/auth/register", gin.H{
			"name":     "Sam Rivera",
			"email":    "sam@example.com",
			"password": "hunter2",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp authBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Sam Rivera", resp.Data.User.Name)
		assert.Equal(t, "sam@example.com", resp.Data.User.Email)
		assert.Equal(t, "customer", resp.Data.User.Role)
		assert.NotEmpty(t, resp.Data.Token)

		// Registration signs the user in
		me := stack.do(t, http.MethodGet, "/api/v1/auth/me", nil)
		require.Equal(t, http.StatusOK, me.Code)
		assert.Contains(t, me.Body.String(), "sam@example.com")

		// And the profile adopts the new name
		profile := stack.do(t, http.MethodGet, "/api/v1/profile", nil)
		assert.Contains(t, profile.Body.String(), "Sam Rivera")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		stack := newTestStack(t)

		w := stack.do(t, http.MethodPost, "/api/v1/auth/register", gin.H{
			"name":     "First",
			"email":    persistence.SeedDemoEmail,
			"password": "hunter2",
		})
		assert.Equal(t, http.StatusConflict, w.Code)

		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("seeded demo account can sign in", func(t *testing.T) {
		stack := newTestStack(t)

		w := stack.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email":    persistence.SeedDemoEmail,
			"password": "demo",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp authBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Jane Demo", resp.Data.User.Name)
		assert.NotEmpty(t, resp.Data.Token)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		stack := newTestStack(t)

		w := stack.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email":    persistence.SeedDemoEmail,
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		stack := newTestStack(t)

		w := stack.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email":    "nobody@example.com",
			"password": "whatever",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout ends the session", func(t *testing.T) {
		stack := newTestStack(t)

		stack.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email":    persistence.SeedDemoEmail,
			"password": "demo",
		})

		w := stack.do(t, http.MethodPost, "/api/v1/auth/logout", nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		me := stack.do(t, http.MethodGet, "/api/v1/auth/me", nil)
		require.Equal(t, http.StatusOK, me.Code)
		var resp struct {
			Data any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(me.Body.Bytes(), &resp))
		assert.Nil(t, resp.Data)
	})
}

func TestProfileEndpoints(t *testing.T) {
	t.Run("defaults to the guest profile", func(t *testing.T) {
		stack := newTestStack(t)

		w := stack.do(t, http.MethodGet, "/api/v1/profile", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Guest User")
	})

	t.Run("updates stick and blank names fall back", func(t *testing.T) {
		stack := newTestStack(t)

		w := stack.do(t, http.MethodPut, "/api/v1/profile", gin.H{
			"name":    "Alex Chen",
			"phone":   "555-0101",
			"address": "12 Main St",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Alex Chen")
		assert.Contains(t, w.Body.String(), "555-0101")

		w = stack.do(t, http.MethodPut, "/api/v1/profile", gin.H{
			"name":    "",
			"phone":   "555-0101",
			"address": "12 Main St",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Guest User")
	})
}

func TestModeEndpoints(t *testing.T) {
	t.Run("starts in customer mode", func(t *testing.T) {
		stack := newTestStack(t)

		w := stack.do(t, http.MethodGet, "/api/v1/mode", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "customer")
	})

	t.Run("admin mode needs a signed-in admin", func(t *testing.T) {
		stack := newTestStack(t)

		w := stack.do(t, http.MethodPut, "/api/v1/mode", gin.H{"mode": "admin"})
		assert.Equal(t, http.StatusForbidden, w.Code)

		stack.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email":    persistence.SeedDemoEmail,
			"password": "demo",
		})
		w = stack.do(t, http.MethodPut, "/api/v1/mode", gin.H{"mode": "admin"})
		assert.Equal(t, http.StatusForbidden, w.Code)

		stack.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
			"email":    persistence.SeedAdminEmail,
			"password": "adminpass",
		})
		w = stack.do(t, http.MethodPut, "/api/v1/mode", gin.H{"mode": "admin"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "admin")
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		stack := newTestStack(t)

		w := stack.do(t, http.MethodPut, "/api/v1/mode", gin.H{"mode": "root"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSystemEndpoints(t *testing.T) {
	t.Run("health reports ok", func(t *testing.T) {
		stack := newTestStack(t)

		w := stack.do(t, http.MethodGet, "/api/v1/health", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ok")
	})

	t.Run("demo reset restores the seed data", func(t *testing.T) {
		stack := newTestStack(t)
		token := stack.loginAdmin(t)

		// Drop an item and fill the cart, then reset
		burgerID := stack.findItemID(t, "cheeseburger")
		w := stack.do(t, http.MethodDelete, "/api/v1/admin/menu/items/"+burgerID, nil, "Authorization", token)
		require.Equal(t, http.StatusNoContent, w.Code)

		pizzaID := stack.findItemID(t, "margherita")
		stack.do(t, http.MethodPost, "/api/v1/cart/items/"+pizzaID, nil)

		w = stack.do(t, http.MethodPost, "/api/v1/system/reset", nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		menu := stack.do(t, http.MethodGet, "/api/v1/menu/items", nil)
		resp := decodeResponse(t, menu)
		assert.Equal(t, 6, resp.Meta.Total)

		cart := stack.do(t, http.MethodGet, "/api/v1/cart", nil)
		decoded := decodeCart(t, cart.Body.Bytes())
		assert.Empty(t, decoded.Data.Lines)
	})
}
