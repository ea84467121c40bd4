package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	cartapp "github.com/foodiejunction/backend/internal/application/cart"
	identityapp "github.com/foodiejunction/backend/internal/application/identity"
	menuapp "github.com/foodiejunction/backend/internal/application/menu"
	orderapp "github.com/foodiejunction/backend/internal/application/ordering"
	systemapp "github.com/foodiejunction/backend/internal/application/system"
	"github.com/foodiejunction/backend/internal/infrastructure/auth"
	"github.com/foodiejunction/backend/internal/infrastructure/config"
	"github.com/foodiejunction/backend/internal/infrastructure/event"
	"github.com/foodiejunction/backend/internal/infrastructure/logger"
	"github.com/foodiejunction/backend/internal/infrastructure/persistence"
	"github.com/foodiejunction/backend/internal/infrastructure/store"
	"github.com/foodiejunction/backend/internal/interfaces/http/handler"
	"github.com/foodiejunction/backend/internal/interfaces/http/middleware"
	"github.com/foodiejunction/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Foodie Junction backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("store_backend", cfg.Store.Backend),
	)

	// Select the key-value store backend
	var kv store.Store
	switch cfg.Store.Backend {
	case "database":
		db, err := persistence.NewDatabase(&cfg.Database, log, cfg.Log.Level)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", zap.Error(err))
			}
		}()

		gormStore, err := store.NewGormStore(db.DB)
		if err != nil {
			log.Fatal("Failed to initialize store", zap.Error(err))
		}
		kv = gormStore
		log.Info("Database store ready", zap.String("driver", cfg.Database.Driver))

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()
		kv = store.NewRedisStore(client)
		log.Info("Redis store ready", zap.String("addr", cfg.Redis.Addr()))

	default: // memory
		kv = store.NewMemoryStore()
		log.Info("In-memory store ready (data is lost on restart)")
	}

	// Initialize repositories over the store
	menuRepo := persistence.NewStoreMenuRepository(kv, log)
	cartRepo := persistence.NewStoreCartRepository(kv, log)
	orderRepo := persistence.NewStoreOrderRepository(kv, log)
	userRepo := persistence.NewStoreUserRepository(kv, log)
	profileRepo := persistence.NewStoreProfileRepository(kv, log)
	sessionRepo := persistence.NewStoreSessionRepository(kv, log)
	modeRepo := persistence.NewStoreModeRepository(kv, log)

	// Seed the menu and demo accounts on first start
	seeder := persistence.NewSeeder(kv, menuRepo, userRepo, profileRepo, log)
	if err := seeder.EnsureSeedData(context.Background()); err != nil {
		log.Fatal("Failed to seed demo data", zap.Error(err))
	}

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)

	// Removing or disabling a menu item evicts it from the cart
	evictionHandler := cartapp.NewEvictionHandler(cartRepo, log)
	eventBus.Subscribe(evictionHandler)

	log.Info("Event handlers registered",
		zap.Strings("cart_eviction_events", evictionHandler.EventTypes()),
	)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	menuService := menuapp.NewMenuService(menuRepo, eventBus)
	cartService := cartapp.NewCartService(cartRepo, menuRepo)
	orderService := orderapp.NewOrderService(orderRepo, cartRepo, userRepo, profileRepo, sessionRepo, eventBus, log)
	authService := identityapp.NewAuthService(userRepo, profileRepo, sessionRepo, jwtService, eventBus, log)
	profileService := identityapp.NewProfileService(profileRepo)
	modeService := identityapp.NewModeService(modeRepo, userRepo, sessionRepo)
	systemService := systemapp.NewSystemService(seeder, log)

	// Initialize HTTP handlers
	menuHandler := handler.NewMenuHandler(menuService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService, modeService)
	systemHandler := handler.NewSystemHandler(systemService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoints (outside API versioning, and versioned for
	// the storefront's fetch helper)
	engine.GET("/health", systemHandler.Health)
	engine.GET("/api/v1/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Storefront routes: the demo keeps browsing, cart, and checkout
	// open so visitors can try it without an account
	menuRoutes := router.NewDomainGroup("/menu")
	menuRoutes.GET("/items", menuHandler.List)
	menuRoutes.GET("/items/:id", menuHandler.Get)
	menuRoutes.GET("/categories", menuHandler.Categories)

	cartRoutes := router.NewDomainGroup("/cart")
	cartRoutes.GET("", cartHandler.Get)
	cartRoutes.DELETE("", cartHandler.Clear)
	cartRoutes.POST("/items/:itemId", cartHandler.AddItem)
	cartRoutes.PATCH("/items/:itemId", cartHandler.ChangeQuantity)
	cartRoutes.DELETE("/items/:itemId", cartHandler.RemoveItem)

	orderRoutes := router.NewDomainGroup("/orders")
	orderRoutes.POST("/checkout", orderHandler.Checkout)
	orderRoutes.GET("/mine", orderHandler.ListMine)
	orderRoutes.GET("/statuses", orderHandler.Statuses)
	orderRoutes.GET("/:id", orderHandler.Get)
	orderRoutes.GET("/:id/qr", orderHandler.PickupCode)

	authRoutes := router.NewDomainGroup("/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.Me)

	profileRoutes := router.NewDomainGroup("/profile")
	profileRoutes.GET("", profileHandler.Get)
	profileRoutes.PUT("", profileHandler.Update)

	modeRoutes := router.NewDomainGroup("/mode")
	modeRoutes.GET("", profileHandler.GetMode)
	modeRoutes.PUT("", profileHandler.SwitchMode)

	// Admin routes require a valid token for an admin account
	adminRoutes := router.NewDomainGroup("/admin")
	adminRoutes.Use(
		middleware.JWTAuthMiddleware(jwtService),
		middleware.AdminOnly(),
	)
	adminRoutes.GET("/menu/items", menuHandler.ListAll)
	adminRoutes.POST("/menu/items", menuHandler.Create)
	adminRoutes.PUT("/menu/items/:id", menuHandler.Update)
	adminRoutes.PATCH("/menu/items/:id/availability", menuHandler.SetAvailability)
	adminRoutes.DELETE("/menu/items/:id", menuHandler.Delete)
	adminRoutes.GET("/orders", orderHandler.ListAll)
	adminRoutes.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	systemRoutes := router.NewDomainGroup("/system")
	systemRoutes.POST("/reset", systemHandler.ResetDemoData)

	r.Register(menuRoutes, cartRoutes, orderRoutes, authRoutes, profileRoutes, modeRoutes, adminRoutes, systemRoutes)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
