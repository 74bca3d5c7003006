package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

type stubAuthService struct {
	token    string
	identity *domain.Identity
	err      error

	gotUsername string
	gotLogin    string
}

func (s *stubAuthService) Register(_ context.Context, username, _, _ string) (string, *domain.Identity, error) {
	s.gotUsername = username
	return s.token, s.identity, s.err
}

func (s *stubAuthService) Login(_ context.Context, loginIdentifier, _ string) (string, *domain.Identity, error) {
	s.gotLogin = loginIdentifier
	return s.token, s.identity, s.err
}

type stubLimiter struct {
	allowed bool
	err     error
}

func (s *stubLimiter) Allow(context.Context, string) (bool, error) {
	return s.allowed, s.err
}

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{
		token:    "signed-token",
		identity: &domain.Identity{ID: "1", Username: "nur", Roles: []domain.Role{domain.RoleUser}},
	}
	h := NewAuthHandler(svc, &stubLimiter{allowed: true}, zerolog.Nop())

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"nur","email":"nur@example.com","password":"password123"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if svc.gotUsername != "nur" {
		t.Errorf("service received username %q, want %q", svc.gotUsername, "nur")
	}

	var resp struct {
		Token string          `json:"token"`
		User  domain.Identity `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Errorf("token = %q, want %q", resp.Token, "signed-token")
	}
	if resp.User.Username != "nur" {
		t.Errorf("user.username = %q, want %q", resp.User.Username, "nur")
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing username", `{"email":"a@b.com","password":"password123"}`},
		{"short username", `{"username":"ab","email":"a@b.com","password":"password123"}`},
		{"bad email", `{"username":"nur","email":"not-an-email","password":"password123"}`},
		{"missing password", `{"username":"nur","email":"a@b.com"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubAuthService{}
			h := NewAuthHandler(svc, &stubLimiter{allowed: true}, zerolog.Nop())
			c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register", tt.body)

			if err := h.Register(c); err != nil {
				t.Fatalf("Register returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if svc.gotUsername != "" {
				t.Errorf("service should not be called on validation failure")
			}
		})
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	svc := &stubAuthService{err: domain.ErrDuplicateUsername}
	h := NewAuthHandler(svc, &stubLimiter{allowed: true}, zerolog.Nop())
	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"nur","email":"nur@example.com","password":"password123"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestAuthHandler_Register_WeakPassword(t *testing.T) {
	svc := &stubAuthService{err: domain.ErrWeakPassword}
	h := NewAuthHandler(svc, &stubLimiter{allowed: true}, zerolog.Nop())
	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"nur","email":"nur@example.com","password":"short"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		token:    "signed-token",
		identity: &domain.Identity{ID: "1", Username: "nur"},
	}
	h := NewAuthHandler(svc, &stubLimiter{allowed: true}, zerolog.Nop())
	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"login":"nur@example.com","password":"password123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if svc.gotLogin != "nur@example.com" {
		t.Errorf("service received login %q, want %q", svc.gotLogin, "nur@example.com")
	}
}

func TestAuthHandler_Login_GenericFailureMessage(t *testing.T) {
	// Unknown user and wrong password must be indistinguishable in the response.
	for _, cause := range []error{domain.ErrUserNotFound, domain.ErrInvalidCredentials} {
		t.Run(cause.Error(), func(t *testing.T) {
			svc := &stubAuthService{err: cause}
			h := NewAuthHandler(svc, &stubLimiter{allowed: true}, zerolog.Nop())
			c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
				`{"login":"nur","password":"wrong"}`)

			if err := h.Login(c); err != nil {
				t.Fatalf("Login returned error: %v", err)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}

			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if resp["error"] != loginFailureMessage {
				t.Errorf("error message = %q, want %q", resp["error"], loginFailureMessage)
			}
		})
	}
}

func TestAuthHandler_Login_RateLimited(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, &stubLimiter{allowed: false}, zerolog.Nop())
	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"login":"nur","password":"password123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	if svc.gotLogin != "" {
		t.Errorf("service should not be called when rate limited")
	}
}

func TestAuthHandler_Login_LimiterOutageDegradesOpen(t *testing.T) {
	svc := &stubAuthService{
		token:    "signed-token",
		identity: &domain.Identity{ID: "1", Username: "nur"},
	}
	h := NewAuthHandler(svc, &stubLimiter{err: errors.New("redis: connection refused")}, zerolog.Nop())
	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"login":"nur","password":"password123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestAuthHandler_Login_StoreFailurePropagates(t *testing.T) {
	cause := domain.ErrStoreUnavailable
	svc := &stubAuthService{err: cause}
	h := NewAuthHandler(svc, &stubLimiter{allowed: true}, zerolog.Nop())
	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"login":"nur","password":"password123"}`)

	err := h.Login(c)
	if !errors.Is(err, cause) {
		t.Fatalf("Login error = %v, want %v", err, cause)
	}
}
