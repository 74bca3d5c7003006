// Package token implements the signed bearer token codec. Tokens are HS256
// JWTs carrying {sub, iat, exp}; the codec holds the process-wide signing
// key for its whole lifetime. Tokens are stateless and cannot be revoked
// before expiry; revocation would need a server-side denylist and is an
// extension point, not part of this codec.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Codec issues and verifies tokens with a single symmetric key.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec builds a Codec. A non-positive ttl falls back to 24h.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue mints a token for subject with iat = now and exp = now + ttl.
func (c *Codec) Issue(subject string) (string, error) {
	now := c.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature and expiry and returns the subject. Expiry is a
// hard boundary: a token is rejected the instant now reaches exp, with no
// clock-skew leeway.
func (c *Codec) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now() }))

	switch {
	case err == nil && tkn.Valid:
		return claims.Subject, nil
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "", domain.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", domain.ErrTokenExpired
	default:
		return "", domain.ErrTokenSignature
	}
}

// TTL reports the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}
