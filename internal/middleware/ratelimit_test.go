package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"clinic-management-api/internal/middleware"
)

func TestAllowWithinBurst(t *testing.T) {
	rl := middleware.NewRateLimiter(1, 2)

	if !rl.Allow("1.2.3.4") {
		t.Fatal("first request should pass")
	}
	if !rl.Allow("1.2.3.4") {
		t.Fatal("second request should pass (burst 2)")
	}
	if rl.Allow("1.2.3.4") {
		t.Fatal("third request should be limited")
	}
}

func TestAllowPerIP(t *testing.T) {
	rl := middleware.NewRateLimiter(1, 1)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first ip should pass")
	}
	// a different caller has its own bucket
	if !rl.Allow("10.0.0.2") {
		t.Fatal("second ip should pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("first ip should now be limited")
	}
}

func TestLimitMiddleware(t *testing.T) {
	rl := middleware.NewRateLimiter(1, 1)

	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, middleware.Limit(rl))

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}
}
