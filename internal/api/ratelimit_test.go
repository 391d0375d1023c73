package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		assert.Truef(t, rl.Allow("1.2.3.4"), "request %d within quota", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"), "fourth request exceeds quota")

	// Other clients have independent windows.
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 5*time.Millisecond)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(10 * time.Millisecond)
	assert.True(t, rl.Allow("1.2.3.4"), "fresh window resets the counter")
}

func TestRateLimiter_PrunesStaleClients(t *testing.T) {
	rl := NewRateLimiter(5, 5*time.Millisecond)

	for i := 0; i < 50; i++ {
		rl.Allow(fmt.Sprintf("10.0.0.%d", i))
	}
	time.Sleep(10 * time.Millisecond)

	// The next request sweeps out every expired window.
	assert.True(t, rl.Allow("1.2.3.4"))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Len(t, rl.counts, 1, "stale client counters are evicted")
}

func TestRateLimiter_Middleware429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1, time.Hour)

	router := gin.New()
	router.POST("/plan", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/plan", nil)
		req.RemoteAddr = "9.9.9.9:1234"
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}
