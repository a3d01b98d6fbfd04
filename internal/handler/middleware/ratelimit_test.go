//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type throttleRecorder struct {
	mu     sync.Mutex
	routes []string
}

func (r *throttleRecorder) RecordClaim(string, string)    {}
func (r *throttleRecorder) RecordDispatch(string, string) {}
func (r *throttleRecorder) RecordThrottled(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

func newLimitedRouter(rl *IPRateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/password-reset", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})
	return r
}

func send(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/password-reset", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	rec := &throttleRecorder{}
	limits, err := NewRateLimiterConfig(1, 2)
	require.NoError(t, err)
	rl := NewIPRateLimiter(limits, rec)
	router := newLimitedRouter(rl)

	assert.Equal(t, http.StatusAccepted, send(router, "198.51.100.7:1000").Code)
	assert.Equal(t, http.StatusAccepted, send(router, "198.51.100.7:1001").Code)

	w := send(router, "198.51.100.7:1002")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Too many requests")

	// separate bucket per client
	assert.Equal(t, http.StatusAccepted, send(router, "203.0.113.9:1000").Code)

	assert.Equal(t, []string{"/api/auth/password-reset"}, rec.routes)
	assert.Equal(t, 2, rl.Len())
}

func TestNewRateLimiterConfig(t *testing.T) {
	tests := []struct {
		name      string
		perMinute int
		burst     int
		wantErr   bool
	}{
		{name: "valid", perMinute: 30, burst: 10},
		{name: "zero rate", perMinute: 0, burst: 10, wantErr: true},
		{name: "negative rate", perMinute: -1, burst: 10, wantErr: true},
		{name: "zero burst", perMinute: 30, burst: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewRateLimiterConfig(tt.perMinute, tt.burst)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, rate.Limit(0.5), cfg.Rate)
			assert.Equal(t, 10, cfg.Burst)
		})
	}
}

func TestIPRateLimiter_Cleanup(t *testing.T) {
	rl := NewIPRateLimiter(RateLimiterConfig{
		Rate:            rate.Limit(10),
		Burst:           10,
		CleanupInterval: time.Minute,
	}, &throttleRecorder{})

	rl.limiterFor("198.51.100.7")
	rl.limiterFor("203.0.113.9")
	require.Equal(t, 2, rl.Len())

	rl.cleanup(time.Now().Add(time.Minute))
	assert.Equal(t, 2, rl.Len(), "recently used limiters are kept")

	rl.cleanup(time.Now().Add(3 * time.Minute))
	assert.Equal(t, 0, rl.Len())
}

func TestIPRateLimiter_StartStop(t *testing.T) {
	rl := NewIPRateLimiter(RateLimiterConfig{
		Rate:            rate.Limit(1),
		Burst:           1,
		CleanupInterval: 10 * time.Millisecond,
	}, &throttleRecorder{})

	rl.Start()
	done := make(chan struct{})
	go func() {
		rl.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
