package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles the AI-backed endpoints per user. Each user
// gets their own token bucket; anonymous requests share one keyed by the
// client IP.
func RateLimitMiddleware(limit rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[key]
		if !ok {
			l = rate.NewLimiter(limit, burst)
			limiters[key] = l
		}
		return l
	}

	return func(c *gin.Context) {
		key := c.GetString("firebase_uid")
		if key == "" {
			key = c.ClientIP()
		}

		if !limiterFor(key).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}
