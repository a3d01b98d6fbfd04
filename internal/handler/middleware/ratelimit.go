package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"talent-mailer/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RateLimiterConfig struct {
	Rate            rate.Limit
	Burst           int
	CleanupInterval time.Duration
}

// NewRateLimiterConfig rejects non-positive values; a zero rate would make
// Retry-After undefined.
func NewRateLimiterConfig(perMinute, burst int) (RateLimiterConfig, error) {
	if perMinute <= 0 {
		return RateLimiterConfig{}, fmt.Errorf("rate per minute must be positive, got %d", perMinute)
	}
	if burst <= 0 {
		return RateLimiterConfig{}, fmt.Errorf("burst must be positive, got %d", burst)
	}
	return RateLimiterConfig{
		Rate:            rate.Limit(float64(perMinute) / 60.0),
		Burst:           burst,
		CleanupInterval: 5 * time.Minute,
	}, nil
}

type ipLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// IPRateLimiter is a coarse token bucket per client IP. It only protects the
// process; duplicate suppression lives in the ledger.
type IPRateLimiter struct {
	config  RateLimiterConfig
	metrics metrics.Recorder

	mu       sync.Mutex
	limiters map[string]*ipLimiter

	stopCh chan struct{}
	doneCh chan struct{}
}

func NewIPRateLimiter(config RateLimiterConfig, recorder metrics.Recorder) *IPRateLimiter {
	return &IPRateLimiter{
		config:   config,
		metrics:  recorder,
		limiters: make(map[string]*ipLimiter),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (rl *IPRateLimiter) Start() {
	go rl.cleanupLoop()
}

func (rl *IPRateLimiter) Stop() {
	close(rl.stopCh)
	<-rl.doneCh
}

func (rl *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if rl.limiterFor(ip).Allow() {
			c.Next()
			return
		}

		rl.metrics.RecordThrottled(c.FullPath())
		slog.Warn("rate limit exceeded",
			slog.String("client_ip", ip),
			slog.String("path", c.FullPath()),
		)

		retryAfter := int(math.Ceil(1.0 / float64(rl.config.Rate)))
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": gin.H{"message": "Too many requests. Please try again later."},
		})
	}
}

func (rl *IPRateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *IPRateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if l, ok := rl.limiters[ip]; ok {
		l.lastAccess = time.Now()
		return l.limiter
	}

	l := &ipLimiter{
		limiter:    rate.NewLimiter(rl.config.Rate, rl.config.Burst),
		lastAccess: time.Now(),
	}
	rl.limiters[ip] = l
	return l.limiter
}

func (rl *IPRateLimiter) cleanupLoop() {
	defer close(rl.doneCh)

	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops limiters idle for more than twice the cleanup interval.
func (rl *IPRateLimiter) cleanup(now time.Time) {
	ttl := rl.config.CleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, l := range rl.limiters {
		if now.Sub(l.lastAccess) > ttl {
			delete(rl.limiters, ip)
		}
	}
}
