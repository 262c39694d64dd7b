package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestRateLimiter_AllowsUpToMax(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)

	for i := 0; i < 5; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("6th attempt within the window should be denied")
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	now := time.Now()
	rl.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		rl.Allow("10.0.0.1")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("should be denied while window is full")
	}

	rl.now = func() time.Time { return now.Add(time.Minute + time.Second) }
	if !rl.Allow("10.0.0.1") {
		t.Fatalf("should be allowed after the window elapsed")
	}
}

func TestRateLimiter_PerKeyIsolation(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	if !rl.Allow("10.0.0.1") {
		t.Fatalf("first key should be allowed")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatalf("second key should have its own counter")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("first key should now be denied")
	}
}

func TestRateLimiter_SweepsExpiredEntries(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")

	// Advance past the window and keep the limiter busy with fresh
	// keys until a sweep fires; the stale entries must be dropped even
	// though their keys are never touched again.
	rl.now = func() time.Time { return now.Add(time.Minute + time.Second) }
	for i := 0; i < sweepInterval; i++ {
		rl.Allow("10.0.0.3")
	}

	rl.mu.Lock()
	_, staleA := rl.entries["10.0.0.1"]
	_, staleB := rl.entries["10.0.0.2"]
	_, fresh := rl.entries["10.0.0.3"]
	rl.mu.Unlock()

	if staleA || staleB {
		t.Fatalf("expected expired entries to be swept")
	}
	if !fresh {
		t.Fatalf("expected the active entry to survive the sweep")
	}
}

func TestRateLimiter_NoOverAdmissionUnderConcurrency(t *testing.T) {
	const max = 5
	const attempts = 50

	rl := NewRateLimiter(max, time.Minute)

	var admitted int64
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			if rl.Allow("10.0.0.1") {
				atomic.AddInt64(&admitted, 1)
			}
		}()
	}
	wg.Wait()

	if admitted != max {
		t.Fatalf("expected exactly %d admissions, got %d", max, admitted)
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	e := echo.New()

	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", nil)
		req.RemoteAddr = "10.0.0.1:4242"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := do(); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
}
