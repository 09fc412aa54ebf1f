package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "notification-hub/pkg/errors"
	"notification-hub/pkg/log"
	"notification-hub/pkg/response"
)

// RateLimitConfig bounds the requests a single client may make in a
// sliding window. A Limit of zero or less disables limiting.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// DefaultRateLimitConfig returns the limits used for the public inquiry form.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:  10,
		Window: time.Minute,
	}
}

// RateLimitError is returned by Allow when a client is over its limit.
type RateLimitError struct {
	Client     string
	Current    int
	Max        int
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for client %s (current: %d, max: %d)", e.Client, e.Current, e.Max)
}

// RateLimiter keeps request timestamps per client in memory.
type RateLimiter struct {
	mu        sync.Mutex
	hits      map[string][]time.Time
	lastSweep time.Time

	cfg RateLimitConfig
	l   log.Logger
	now func() time.Time
}

// NewRateLimiter returns nil when cfg.Limit disables limiting.
func NewRateLimiter(l log.Logger, cfg RateLimitConfig) *RateLimiter {
	if cfg.Limit <= 0 {
		return nil
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return &RateLimiter{
		hits: make(map[string][]time.Time),
		cfg:  cfg,
		l:    l,
		now:  time.Now,
	}
}

// Allow records a request from client, or returns a *RateLimitError if the
// client already made Limit requests inside the window.
func (rl *RateLimiter) Allow(ctx context.Context, client string) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	windowStart := now.Add(-rl.cfg.Window)
	if now.Sub(rl.lastSweep) >= rl.cfg.Window {
		rl.sweepLocked(windowStart)
		rl.lastSweep = now
	}

	valid := prune(rl.hits[client], windowStart)
	if len(valid) >= rl.cfg.Limit {
		rl.hits[client] = valid
		rl.l.Warnf(ctx, "SECURITY: Rate limit exceeded - client=%s current=%d max=%d", client, len(valid), rl.cfg.Limit)
		return &RateLimitError{
			Client:     client,
			Current:    len(valid),
			Max:        rl.cfg.Limit,
			RetryAfter: valid[0].Sub(windowStart),
		}
	}

	rl.hits[client] = append(valid, now)
	return nil
}

// sweepLocked drops clients with no requests left in the window. Must be
// called with mu held.
func (rl *RateLimiter) sweepLocked(windowStart time.Time) {
	for client, ts := range rl.hits {
		valid := prune(ts, windowStart)
		if len(valid) == 0 {
			delete(rl.hits, client)
			continue
		}
		rl.hits[client] = valid
	}
}

// prune keeps the timestamps after windowStart; ts is in ascending order.
func prune(ts []time.Time, windowStart time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(windowStart) {
		i++
	}
	return ts[i:]
}

// RateLimit rejects clients over the limit with 429 and a Retry-After header.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		err := m.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err == nil {
			c.Next()
			return
		}

		if rlErr, ok := err.(*RateLimitError); ok {
			secs := int(math.Ceil(rlErr.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(secs, 1)))
		}
		response.HttpError(c, pkgErrors.NewHTTPError(http.StatusTooManyRequests, pkgErrors.MessageTooManyRequests, http.StatusTooManyRequests))
		c.Abort()
	}
}
