package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const idleLimiterTTL = 10 * time.Minute

// RateLimiter applies a token bucket per client.
type RateLimiter struct {
	limiters sync.Map
	rate     int
	burst    int
	now      func() time.Time
}

type limiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

// NewRateLimiter allows requestsPerSecond with bursts up to burst per client.
func NewRateLimiter(requestsPerSecond, burst int) *RateLimiter {
	return &RateLimiter{rate: requestsPerSecond, burst: burst, now: time.Now}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	now := rl.now()
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
		return entry.limiter
	}
	entry := &limiterEntry{limiter: rate.NewLimiter(rate.Limit(rl.rate), rl.burst), lastAccess: now}
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

// Prune drops limiters unused for ten minutes and reports how many it removed.
func (rl *RateLimiter) Prune() int {
	cutoff := rl.now().Add(-idleLimiterTTL)
	removed := 0
	rl.limiters.Range(func(key, value interface{}) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		idle := entry.lastAccess.Before(cutoff)
		entry.mu.Unlock()
		if idle {
			rl.limiters.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// StartPruning prunes on every interval until stop is closed.
func (rl *RateLimiter) StartPruning(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.Prune()
			case <-stop:
				return
			}
		}
	}()
}

// clientKey prefers the caller's user ID and falls back to the client IP.
func clientKey(c *gin.Context) string {
	if userID, ok := UserID(c); ok {
		return "user:" + strconv.FormatInt(userID, 10)
	}
	if id := c.GetHeader(constants.UserIDHeader); id != "" {
		return "user:" + id
	}
	return "ip:" + c.ClientIP()
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientKey(c)
		limiter := rl.limiter(key)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))

		if !limiter.Allow() {
			logger.Log.Warn("Rate limit exceeded",
				zap.String("client", key),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Next()
	}
}
