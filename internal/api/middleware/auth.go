package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/giftidea/gift-catalog-api/internal/api/metrics"
	"github.com/giftidea/gift-catalog-api/internal/core/domain"
	"github.com/giftidea/gift-catalog-api/internal/core/ports"
)

const identityKey = "identity"

// Authenticate validates the bearer token through the access guard and
// injects the resolved identity into the request context. Every token
// failure mode (missing, malformed, expired, bad signature, unknown
// subject) surfaces as 401.
func Authenticate(guard ports.AccessGuard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := bearerToken(c)
			if err != nil {
				metrics.AuthzDecisionsTotal.WithLabelValues("authenticated", "unauthenticated").Inc()
				return err
			}

			decision, err := guard.Authorize(c.Request().Context(), tokenString, domain.Authenticated())
			if err != nil {
				return err
			}
			if !decision.Allowed {
				metrics.AuthzDecisionsTotal.WithLabelValues("authenticated", "unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			metrics.AuthzDecisionsTotal.WithLabelValues("authenticated", "allow").Inc()
			c.Set(identityKey, decision.Identity)
			return next(c)
		}
	}
}

// RequireRole allows the request only when the authenticated identity
// satisfies the role capability. Admin passes any role check. Must run after
// Authenticate.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	capability := domain.HasRole(role)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := c.Get(identityKey).(*domain.Identity)
			if !capability.SatisfiedBy(identity) {
				metrics.AuthzDecisionsTotal.WithLabelValues(capability.String(), "deny").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			metrics.AuthzDecisionsTotal.WithLabelValues(capability.String(), "allow").Inc()
			return next(c)
		}
	}
}

// Identity returns the identity stored by Authenticate, or nil.
func Identity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(identityKey).(*domain.Identity)
	return identity
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
