package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func ping(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("firebase_uid", "uid-1")
		c.Next()
	})
	r.Use(RateLimitMiddleware(rate.Limit(0), 2))
	r.GET("/ping", ping)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitSeparateBuckets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("firebase_uid", c.GetHeader("X-User-Id"))
		c.Next()
	})
	r.Use(RateLimitMiddleware(rate.Limit(0), 1))
	r.GET("/ping", ping)

	hit := func(uid string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-User-Id", uid)
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("uid-1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("uid-1"))
	assert.Equal(t, http.StatusOK, hit("uid-2"))
}

func TestAPIKeyMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(expected string) *gin.Engine {
		r := gin.New()
		r.Use(APIKeyMiddleware(expected))
		r.GET("/ping", ping)
		return r
	}

	hit := func(r *gin.Engine, key string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if key != "" {
			req.Header.Set("X-API-Key", key)
		}
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("accepts the configured key", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, hit(newRouter("secret"), "secret"))
	})

	t.Run("rejects a wrong or missing key", func(t *testing.T) {
		r := newRouter("secret")
		assert.Equal(t, http.StatusUnauthorized, hit(r, "wrong"))
		assert.Equal(t, http.StatusUnauthorized, hit(r, ""))
	})

	t.Run("closed when no key is configured", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, hit(newRouter(""), ""))
	})
}
