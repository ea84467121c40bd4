package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newObservedRouter(level zapcore.Level) (*gin.Engine, *observer.ObservedLogs) {
	core, recorded := observer.New(level)
	router := gin.New()
	router.Use(GinMiddleware(zap.New(core)))
	return router, recorded
}

func requestLog(t *testing.T, recorded *observer.ObservedLogs) observer.LoggedEntry {
	t.Helper()
	for _, entry := range recorded.All() {
		if entry.Message == "request" {
			return entry
		}
	}
	t.Fatal("no request log entry recorded")
	return observer.LoggedEntry{}
}

func TestGinMiddleware(t *testing.T) {
	t.Run("logs at info for success", func(t *testing.T) {
		router, recorded := newObservedRouter(zapcore.InfoLevel)
		router.GET("/menu", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/menu", nil)
		router.ServeHTTP(w, req)

		entry := requestLog(t, recorded)
		assert.Equal(t, zapcore.InfoLevel, entry.Level)

		fields := entry.ContextMap()
		assert.Equal(t, "GET", fields["method"])
		assert.Equal(t, "/menu", fields["path"])
		assert.EqualValues(t, http.StatusOK, fields["status"])
	})

	t.Run("logs at warn for client errors", func(t *testing.T) {
		router, recorded := newObservedRouter(zapcore.InfoLevel)
		router.GET("/missing", func(c *gin.Context) {
			c.Status(http.StatusNotFound)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/missing", nil))
		assert.Equal(t, zapcore.WarnLevel, requestLog(t, recorded).Level)
	})

	t.Run("logs at error for server errors", func(t *testing.T) {
		router, recorded := newObservedRouter(zapcore.InfoLevel)
		router.GET("/boom", func(c *gin.Context) {
			c.Status(http.StatusInternalServerError)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/boom", nil))
		assert.Equal(t, zapcore.ErrorLevel, requestLog(t, recorded).Level)
	})

	t.Run("carries the request id", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)
		router := gin.New()
		router.Use(func(c *gin.Context) {
			c.Set("request_id", "req-123")
			c.Next()
		})
		router.Use(GinMiddleware(zap.New(core)))
		router.GET("/menu", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/menu", nil))
		assert.Equal(t, "req-123", requestLog(t, recorded).ContextMap()["request_id"])
	})

	t.Run("includes the query string", func(t *testing.T) {
		router, recorded := newObservedRouter(zapcore.InfoLevel)
		router.GET("/menu", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/menu?search=burger", nil))
		assert.Equal(t, "search=burger", requestLog(t, recorded).ContextMap()["query"])
	})

	t.Run("skips healthy health checks", func(t *testing.T) {
		router, recorded := newObservedRouter(zapcore.InfoLevel)
		router.GET("/health", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))
		assert.Empty(t, recorded.All())
	})

	t.Run("still logs failing health checks", func(t *testing.T) {
		router, recorded := newObservedRouter(zapcore.InfoLevel)
		router.GET("/health", func(c *gin.Context) {
			c.Status(http.StatusServiceUnavailable)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))
		assert.Equal(t, zapcore.ErrorLevel, requestLog(t, recorded).Level)
	})
}

func TestRecovery(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	entries := recorded.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "panic recovered", entries[0].Message)
	assert.Equal(t, "/panic", entries[0].ContextMap()["path"])
}

func TestGetGinLogger(t *testing.T) {
	t.Run("returns the request logger", func(t *testing.T) {
		router, _ := newObservedRouter(zapcore.InfoLevel)

		var got *zap.Logger
		router.GET("/menu", func(c *gin.Context) {
			got = GetGinLogger(c)
			c.Status(http.StatusOK)
		})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/menu", nil))
		require.NotNil(t, got)
		assert.NotEqual(t, zap.NewNop(), got)
	})

	t.Run("falls back to a no-op logger", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.NotNil(t, GetGinLogger(c))
	})
}
