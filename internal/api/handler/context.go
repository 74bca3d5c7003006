package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/giftidea/gift-catalog-api/internal/api/middleware"
	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Authenticate middleware
// and fast-fails before any service call when it is missing (the route was
// registered without the middleware, or the middleware was bypassed).
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity := middleware.Identity(c)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return identity, nil
}
