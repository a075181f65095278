package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/toolbox/backend/internal/domain/error"
	"github.com/toolbox/backend/internal/integration/entrypoint/dto"
)

const (
	defaultMaxAttempts    = 5
	defaultWindowDuration = time.Minute
)

type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// RateLimiter is a fixed-window limiter keyed by client IP and route.
type RateLimiter struct {
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	maxAttempts    int
	windowDuration time.Duration
	disabled       bool
	now            func() time.Time
}

// NewRateLimiter creates a limiter allowing five attempts per minute.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		entries:        make(map[string]*rateLimitEntry),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		now:            time.Now,
	}
}

// Disable turns the limiter into a pass-through. Used by the test environment.
func (rl *RateLimiter) Disable() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.disabled = true
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + " " + c.FullPath()

		allowed, retryAfter := rl.allow(key)
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: domainerror.AuthMessage(domainerror.ErrCodeRateLimited),
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}
		c.Next()
	}
}

// allow records an attempt for key and reports whether it is within the limit.
// When it is not, the time until the window resets is returned.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.disabled {
		return true, 0
	}

	now := rl.now()
	entry, exists := rl.entries[key]
	if !exists || now.After(entry.resetTime) {
		rl.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(rl.windowDuration),
		}
		return true, 0
	}

	if entry.attempts < rl.maxAttempts {
		entry.attempts++
		return true, 0
	}
	return false, entry.resetTime.Sub(now)
}

// Reset clears the rate limiter state.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.entries = make(map[string]*rateLimitEntry)
}

// Cleanup removes expired entries and returns how many were dropped.
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	removed := 0
	for key, entry := range rl.entries {
		if now.After(entry.resetTime) {
			delete(rl.entries, key)
			removed++
		}
	}
	return removed
}
