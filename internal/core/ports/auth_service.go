package ports

import (
	"context"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

// AuthService orchestrates registration and login.
type AuthService interface {
	// Register creates an identity with the baseline user role and returns a
	// freshly issued token for it. No write occurs on failure.
	Register(ctx context.Context, username, email, password string) (string, *domain.Identity, error)
	// Login accepts a username or an email as the identifier.
	Login(ctx context.Context, loginIdentifier, password string) (string, *domain.Identity, error)
}

// TokenCodec issues and verifies signed, expiring bearer tokens. The codec
// owns the signing key; nothing else in the system may mint tokens.
type TokenCodec interface {
	Issue(subject string) (string, error)
	// Verify returns the token subject, or domain.ErrTokenMalformed,
	// domain.ErrTokenExpired, or domain.ErrTokenSignature.
	Verify(tokenString string) (string, error)
}

// PasswordHasher is a one-way salted hash over plaintext passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// AccessGuard turns a bearer token and a required capability into an
// allow/deny decision at the request boundary.
type AccessGuard interface {
	Authorize(ctx context.Context, tokenString string, capability domain.Capability) (domain.AuthDecision, error)
}

// LoginLimiter throttles login attempts per identifier.
type LoginLimiter interface {
	Allow(ctx context.Context, identifier string) (bool, error)
}
