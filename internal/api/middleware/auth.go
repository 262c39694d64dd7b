package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agrifarm/farm-management-api/internal/api/metrics"
	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/token"
)

// PrefixRule gates a path prefix behind a required role.
type PrefixRule struct {
	Prefix string
	Role   string
}

// Policy is the authorization configuration injected at startup.
// PublicPaths is an exact-match set: new unauthenticated endpoints must
// be listed explicitly, never matched by prefix.
type Policy struct {
	PublicPaths map[string]struct{}
	Rules       []PrefixRule
}

// DefaultPolicy returns the production gate table: login and register
// are public, the admin/manager/buyer areas require their role.
func DefaultPolicy() Policy {
	return Policy{
		PublicPaths: map[string]struct{}{
			"/api/user/login":    {},
			"/api/user/register": {},
		},
		Rules: []PrefixRule{
			{Prefix: "/api/admin", Role: domain.RoleAdmin},
			{Prefix: "/api/manager", Role: domain.RoleManager},
			{Prefix: "/api/pembeli", Role: domain.RoleBuyer},
		},
	}
}

// RoleGate authenticates and authorizes every request that reaches it.
// Checks run in order and short-circuit on the first failure:
// public-path bypass, bearer header presence, token verification, then
// role gating by path prefix. The role comes only from the verified
// token's claim. Admins bypass every prefix rule; that branch runs
// before any prefix check so it can never be shadowed by a denial.
// Every denial is terminal; no partial request processing occurs.
func RoleGate(tokens *token.Service, policy Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if _, ok := policy.PublicPaths[path]; ok {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthDenialsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid authorization header")
			}

			tok := parts[1]
			if !tokens.Verify(tok) {
				metrics.AuthDenialsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			claims, err := tokens.Extract(tok)
			if err != nil {
				metrics.AuthDenialsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			if strings.EqualFold(claims.Role, domain.RoleAdmin) {
				return next(c)
			}

			for _, rule := range policy.Rules {
				if strings.HasPrefix(path, rule.Prefix) && !strings.EqualFold(claims.Role, rule.Role) {
					metrics.AuthDenialsTotal.WithLabelValues("role_denied").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "access denied: "+rule.Role+" only")
				}
			}

			return next(c)
		}
	}
}
