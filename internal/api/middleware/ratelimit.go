package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agrifarm/farm-management-api/internal/api/metrics"
)

// RateLimiter throttles requests per client IP with a fixed-window
// counter. State is in-memory and process-lifetime only; losing it on
// restart is acceptable, it is a soft brute-force defense.
//
// The window is fixed, not sliding: a burst straddling a window
// boundary can see up to 2*max requests. Known limitation.
// sweepInterval is the number of Allow calls between sweeps of expired
// entries. Sweeping piggybacks on Allow so the map of per-IP windows
// cannot grow unbounded over the process lifetime.
const sweepInterval = 256

type RateLimiter struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	calls   uint64
	entries map[string]*windowEntry
}

type windowEntry struct {
	count       int
	windowStart time.Time
}

// NewRateLimiter builds a limiter admitting max requests per window per IP.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		max:     max,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*windowEntry),
	}
}

// Allow records one attempt for key and reports whether it is admitted.
// The read-check-increment runs under the mutex so that concurrent
// attempts can never both be admitted on the last free slot. Once a
// window is full the count stops incrementing.
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.calls++
	if rl.calls%sweepInterval == 0 {
		rl.sweep(now)
	}

	e, ok := rl.entries[key]
	if !ok || now.Sub(e.windowStart) > rl.window {
		rl.entries[key] = &windowEntry{count: 1, windowStart: now}
		return true
	}

	if e.count >= rl.max {
		return false
	}
	e.count++
	return true
}

// sweep drops every entry whose window has elapsed. Caller holds rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for k, e := range rl.entries {
		if now.Sub(e.windowStart) > rl.window {
			delete(rl.entries, k)
		}
	}
}

// Middleware rejects over-limit requests with 429 before the handler runs.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.Allow(c.RealIP()) {
				metrics.LoginRateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, try again later")
			}
			return next(c)
		}
	}
}
