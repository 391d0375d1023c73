package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window counter keyed by client identifier. Process
// local and best-effort by design: counters are not shared across instances,
// so a horizontally scaled deployment needs an external counter store behind
// the same Allow contract.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	counts    map[string]*windowCount
	lastPrune time.Time
}

type windowCount struct {
	windowStart time.Time
	hits        int
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		limit:     limit,
		window:    window,
		counts:    make(map[string]*windowCount),
		lastPrune: time.Now(),
	}
}

// Allow reads and increments the caller's counter for the current window.
// Counters for clients that went quiet are pruned at most once per window,
// keeping the map bounded by the set of recently active clients.
func (rl *RateLimiter) Allow(key string) bool {
	now := time.Now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastPrune) >= rl.window {
		for k, wc := range rl.counts {
			if now.Sub(wc.windowStart) >= rl.window {
				delete(rl.counts, k)
			}
		}
		rl.lastPrune = now
	}

	wc, ok := rl.counts[key]
	if !ok || now.Sub(wc.windowStart) >= rl.window {
		rl.counts[key] = &windowCount{windowStart: now, hits: 1}
		return true
	}
	if wc.hits >= rl.limit {
		return false
	}
	wc.hits++
	return true
}

// Middleware enforces the limiter per client IP, replying 429 on excess.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				gin.H{"error": "Rate limit exceeded, try again later"})
			return
		}
		c.Next()
	}
}
