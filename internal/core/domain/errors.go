package domain

import "errors"

// Auth errors. UserNotFound and InvalidCredentials stay distinct internally
// for logging but are rendered to clients with one generic message to avoid
// user enumeration.
var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Token errors returned by the codec.
var (
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("invalid token signature")
)

// Collaborator and infrastructure errors.
var (
	ErrForbidden           = errors.New("access forbidden")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrGiftNotFound        = errors.New("gift not found")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
)
