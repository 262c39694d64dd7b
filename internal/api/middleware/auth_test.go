package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/agrifarm/farm-management-api/internal/token"
)

func newGate(t *testing.T) (*token.Service, echo.MiddlewareFunc) {
	t.Helper()
	tokens, err := token.New("secret", time.Hour)
	if err != nil {
		t.Fatalf("token.New: %v", err)
	}
	return tokens, RoleGate(tokens, DefaultPolicy())
}

func runGate(t *testing.T, mw echo.MiddlewareFunc, path, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestRoleGate_PublicPathsBypass(t *testing.T) {
	_, mw := newGate(t)
	for _, path := range []string{"/api/user/login", "/api/user/register"} {
		rec, called := runGate(t, mw, path, "")
		if !called {
			t.Fatalf("%s: handler not reached without token", path)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRoleGate_PublicBypassIsExactMatch(t *testing.T) {
	_, mw := newGate(t)
	rec, called := runGate(t, mw, "/api/user/login/extra", "")
	if called {
		t.Fatalf("sub-path of a public path must not bypass auth")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRoleGate_MissingHeader(t *testing.T) {
	_, mw := newGate(t)
	rec, called := runGate(t, mw, "/api/lahan", "")
	if called {
		t.Fatalf("handler reached without authorization header")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRoleGate_MalformedHeader(t *testing.T) {
	_, mw := newGate(t)
	for _, header := range []string{"Token abc", "Bearer", "abc"} {
		rec, called := runGate(t, mw, "/api/lahan", header)
		if called {
			t.Fatalf("header %q: handler reached", header)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestRoleGate_InvalidToken(t *testing.T) {
	_, mw := newGate(t)
	rec, called := runGate(t, mw, "/api/lahan", "Bearer not-a-token")
	if called {
		t.Fatalf("handler reached with invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRoleGate_ExpiredToken(t *testing.T) {
	_, mw := newGate(t)

	// Signed with the right secret but already past its expiry.
	claims := jwt.MapClaims{
		"sub":  "alice",
		"role": "manager",
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	rec, called := runGate(t, mw, "/api/manager/dashboard", "Bearer "+tok)
	if called {
		t.Fatalf("handler reached with expired token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRoleGate_ManagerAllowedOnManagerPrefix(t *testing.T) {
	tokens, mw := newGate(t)
	tok, _ := tokens.Issue("alice", "manager")

	rec, called := runGate(t, mw, "/api/manager/dashboard", "Bearer "+tok)
	if !called {
		t.Fatalf("manager denied on manager prefix")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRoleGate_ManagerDeniedOnAdminPrefix(t *testing.T) {
	tokens, mw := newGate(t)
	tok, _ := tokens.Issue("alice", "manager")

	rec, called := runGate(t, mw, "/api/admin/users", "Bearer "+tok)
	if called {
		t.Fatalf("manager reached admin prefix")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRoleGate_BuyerDeniedOnManagerPrefix(t *testing.T) {
	tokens, mw := newGate(t)
	tok, _ := tokens.Issue("bob", "buyer")

	rec, called := runGate(t, mw, "/api/manager/summary", "Bearer "+tok)
	if called {
		t.Fatalf("buyer reached manager prefix")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRoleGate_AdminBypassesEveryPrefix(t *testing.T) {
	tokens, mw := newGate(t)
	tok, _ := tokens.Issue("root", "admin")

	for _, path := range []string{"/api/admin/users", "/api/manager/dashboard", "/api/pembeli/dashboard", "/api/lahan"} {
		rec, called := runGate(t, mw, path, "Bearer "+tok)
		if !called {
			t.Fatalf("%s: admin denied", path)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRoleGate_RoleComparisonIsCaseInsensitive(t *testing.T) {
	tokens, mw := newGate(t)
	tok, _ := tokens.Issue("alice", "Manager")

	rec, called := runGate(t, mw, "/api/manager/dashboard", "Bearer "+tok)
	if !called {
		t.Fatalf("mixed-case role denied")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRoleGate_UngatedPathAllowsAnyRole(t *testing.T) {
	tokens, mw := newGate(t)
	tok, _ := tokens.Issue("bob", "buyer")

	rec, called := runGate(t, mw, "/api/tanaman", "Bearer "+tok)
	if !called {
		t.Fatalf("valid token denied on ungated path")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRoleGate_InjectsClaims(t *testing.T) {
	tokens, err := token.New("secret", time.Hour)
	if err != nil {
		t.Fatalf("token.New: %v", err)
	}
	mw := RoleGate(tokens, DefaultPolicy())
	tok, _ := tokens.Issue("alice", "manager")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/manager/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		if c.Get("username") != "alice" {
			t.Fatalf("username not injected")
		}
		if c.Get("role") != "manager" {
			t.Fatalf("role not injected")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
