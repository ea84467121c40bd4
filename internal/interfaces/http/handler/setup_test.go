package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cartapp "github.com/foodiejunction/backend/internal/application/cart"
	identityapp "github.com/foodiejunction/backend/internal/application/identity"
	menuapp "github.com/foodiejunction/backend/internal/application/menu"
	orderapp "github.com/foodiejunction/backend/internal/application/ordering"
	systemapp "github.com/foodiejunction/backend/internal/application/system"
	"github.com/foodiejunction/backend/internal/infrastructure/auth"
	"github.com/foodiejunction/backend/internal/infrastructure/config"
	"github.com/foodiejunction/backend/internal/infrastructure/event"
	"github.com/foodiejunction/backend/internal/infrastructure/persistence"
	"github.com/foodiejunction/backend/internal/infrastructure/store"
	"github.com/foodiejunction/backend/internal/interfaces/http/dto"
	"github.com/foodiejunction/backend/internal/interfaces/http/middleware"
)

// testStack wires the full storefront over an in-memory store
type testStack struct {
	engine     *gin.Engine
	jwtService *auth.JWTService
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	kv := store.NewMemoryStore()
	menuRepo := persistence.NewStoreMenuRepository(kv, logger)
	cartRepo := persistence.NewStoreCartRepository(kv, logger)
	orderRepo := persistence.NewStoreOrderRepository(kv, logger)
	userRepo := persistence.NewStoreUserRepository(kv, logger)
	profileRepo := persistence.NewStoreProfileRepository(kv, logger)
	sessionRepo := persistence.NewStoreSessionRepository(kv, logger)
	modeRepo := persistence.NewStoreModeRepository(kv, logger)

	seeder := persistence.NewSeeder(kv, menuRepo, userRepo, profileRepo, logger)
	require.NoError(t, seeder.EnsureSeedData(context.Background()))

	bus := event.NewInMemoryEventBus(logger)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-that-is-long-enough-0123",
		TokenExpiration: time.Hour,
		Issuer:          "foodiejunction-test",
	})

	menuService := menuapp.NewMenuService(menuRepo, bus)
	cartService := cartapp.NewCartService(cartRepo, menuRepo)
	orderService := orderapp.NewOrderService(orderRepo, cartRepo, userRepo, profileRepo, sessionRepo, bus, logger)
	authService := identityapp.NewAuthService(userRepo, profileRepo, sessionRepo, jwtService, bus, logger)
	profileService := identityapp.NewProfileService(profileRepo)
	modeService := identityapp.NewModeService(modeRepo, userRepo, sessionRepo)
	systemService := systemapp.NewSystemService(seeder, logger)

	bus.Subscribe(cartapp.NewEvictionHandler(cartRepo, logger))

	menuHandler := NewMenuHandler(menuService)
	cartHandler := NewCartHandler(cartService)
	orderHandler := NewOrderHandler(orderService)
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService, modeService)
	systemHandler := NewSystemHandler(systemService)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	api := engine.Group("/api/v1")

	api.GET("/menu/items", menuHandler.List)
	api.GET("/menu/categories", menuHandler.Categories)
	api.GET("/menu/items/:id", menuHandler.Get)

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(jwtService), middleware.AdminOnly())
	admin.GET("/menu/items", menuHandler.ListAll)
	admin.POST("/menu/items", menuHandler.Create)
	admin.PUT("/menu/items/:id", menuHandler.Update)
	admin.PATCH("/menu/items/:id/availability", menuHandler.SetAvailability)
	admin.DELETE("/menu/items/:id", menuHandler.Delete)
	admin.GET("/orders", orderHandler.ListAll)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	api.GET("/cart", cartHandler.Get)
	api.POST("/cart/items/:itemId", cartHandler.AddItem)
	api.PATCH("/cart/items/:itemId", cartHandler.ChangeQuantity)
	api.DELETE("/cart/items/:itemId", cartHandler.RemoveItem)
	api.DELETE("/cart", cartHandler.Clear)

	api.POST("/orders/checkout", orderHandler.Checkout)
	api.GET("/orders/mine", orderHandler.ListMine)
	api.GET("/orders/statuses", orderHandler.Statuses)
	api.GET("/orders/:id", orderHandler.Get)
	api.GET("/orders/:id/qr", orderHandler.PickupCode)

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/me", authHandler.Me)

	api.GET("/profile", profileHandler.Get)
	api.PUT("/profile", profileHandler.Update)
	api.GET("/mode", profileHandler.GetMode)
	api.PUT("/mode", profileHandler.SwitchMode)

	api.GET("/health", systemHandler.Health)
	api.POST("/system/reset", systemHandler.ResetDemoData)

	return &testStack{engine: engine, jwtService: jwtService}
}

func (s *testStack) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testStack) loginAdmin(t *testing.T) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    persistence.SeedAdminEmail,
		"password": "adminpass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return "Bearer " + resp.Data.Token
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
