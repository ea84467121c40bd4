package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRouterSetup(t *testing.T) {
	t.Run("defaults to v1", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("/menu")
		g.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "items")
		})

		NewRouter(engine).Register(g).Setup()

		w := serve(engine, "GET", "/api/v1/menu/items")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "items", w.Body.String())
	})

	t.Run("honors a version override", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("/menu")
		g.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "items")
		})

		NewRouter(engine, WithAPIVersion("v2")).Register(g).Setup()

		assert.Equal(t, http.StatusOK, serve(engine, "GET", "/api/v2/menu/items").Code)
		assert.Equal(t, http.StatusNotFound, serve(engine, "GET", "/api/v1/menu/items").Code)
	})

	t.Run("mounts several groups", func(t *testing.T) {
		engine := gin.New()

		menu := NewDomainGroup("/menu")
		menu.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "menu")
		})
		orders := NewDomainGroup("/orders")
		orders.GET("", func(c *gin.Context) {
			c.String(http.StatusOK, "orders")
		})

		NewRouter(engine).Register(menu, orders).Setup()

		assert.Equal(t, "menu", serve(engine, "GET", "/api/v1/menu/items").Body.String())
		assert.Equal(t, "orders", serve(engine, "GET", "/api/v1/orders").Body.String())
	})
}

func TestDomainGroup(t *testing.T) {
	t.Run("registers every verb", func(t *testing.T) {
		engine := gin.New()
		ok := func(c *gin.Context) { c.Status(http.StatusOK) }

		g := NewDomainGroup("/cart")
		g.GET("", ok).
			POST("/items/:id", ok).
			PUT("/items/:id", ok).
			PATCH("/items/:id", ok).
			DELETE("/items/:id", ok)

		g.RegisterRoutes(engine.Group("/api/v1"))

		for _, method := range []string{"GET"} {
			assert.Equal(t, http.StatusOK, serve(engine, method, "/api/v1/cart").Code)
		}
		for _, method := range []string{"POST", "PUT", "PATCH", "DELETE"} {
			assert.Equal(t, http.StatusOK, serve(engine, method, "/api/v1/cart/items/x").Code, method)
		}
	})

	t.Run("applies group middleware", func(t *testing.T) {
		engine := gin.New()

		g := NewDomainGroup("/admin")
		g.Use(func(c *gin.Context) {
			c.Header("X-Admin", "yes")
			c.Next()
		})
		g.GET("/orders", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		g.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, "GET", "/api/v1/admin/orders")
		assert.Equal(t, "yes", w.Header().Get("X-Admin"))
	})

	t.Run("nests subgroups", func(t *testing.T) {
		engine := gin.New()

		g := NewDomainGroup("/admin")
		menu := g.Group("/menu")
		menu.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "admin menu")
		})

		g.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, "GET", "/api/v1/admin/menu/items")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "admin menu", w.Body.String())
	})
}
