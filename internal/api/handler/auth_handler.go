package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/giftidea/gift-catalog-api/internal/api/metrics"
	"github.com/giftidea/gift-catalog-api/internal/core/domain"
	"github.com/giftidea/gift-catalog-api/internal/core/ports"
)

// loginFailureMessage is returned for both unknown users and wrong passwords
// so responses cannot be used to enumerate accounts.
const loginFailureMessage = "invalid username or password"

type AuthHandler struct {
	authService ports.AuthService
	limiter     ports.LoginLimiter
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, limiter ports.LoginLimiter, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, limiter: limiter, log: log}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string           `json:"token"`
	User  *domain.Identity `json:"user"`
}

// Register creates a new account and returns a token for it.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	tkn, identity, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername), errors.Is(err, domain.ErrDuplicateEmail):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrWeakPassword):
			metrics.RegistrationsTotal.WithLabelValues("weak_password").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return err
		}
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: tkn, User: identity})
}

// Login authenticates an account by username or email and returns a token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials (username or email)"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	allowed, err := h.limiter.Allow(c.Request().Context(), req.Login)
	if err != nil {
		// Limiter outage must not lock everyone out.
		h.log.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
	} else if !allowed {
		metrics.LoginsTotal.WithLabelValues("rate_limited").Inc()
		return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many login attempts"})
	}

	tkn, identity, err := h.authService.Login(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		// Unknown user and bad password render identically on purpose.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": loginFailureMessage})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: tkn, User: identity})
}
