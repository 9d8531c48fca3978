package middleware

import (
	"sync"
	"time"

	"hrms-http-service/internal/error/code"
	"hrms-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// TokenBucket is a simple per-key token bucket limiter
type TokenBucket struct {
	rate       float64   // tokens added per second
	capacity   int       // bucket capacity
	tokens     float64   // current tokens
	lastRefill time.Time // last refill time
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket limiter
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow tries to take one token from the bucket
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

var (
	ipLimiters   = make(map[string]*TokenBucket)
	ipLimitersMu sync.Mutex
)

// RateLimitByIP limits requests per client IP. Used on the login and
// dropdown-lookup endpoints, which carry no session token.
func RateLimitByIP(rate float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.FullPath()

		ipLimitersMu.Lock()
		limiter, ok := ipLimiters[key]
		if !ok {
			limiter = NewTokenBucket(rate, burst)
			ipLimiters[key] = limiter
		}
		ipLimitersMu.Unlock()

		if !limiter.Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
