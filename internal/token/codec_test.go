package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/giftidea/gift-catalog-api/internal/core/domain"
)

func TestCodec_IssueVerify_RoundTrip(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	signed, err := c.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	subject, err := c.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("expected subject alice, got %q", subject)
	}
}

func TestCodec_Verify_Expired(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return issuedAt }

	signed, err := c.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// One second before expiry the token is still good.
	c.now = func() time.Time { return issuedAt.Add(time.Hour - time.Second) }
	if _, err := c.Verify(signed); err != nil {
		t.Fatalf("expected valid before expiry, got %v", err)
	}

	// At exactly issuedAt+ttl the boundary is hard.
	c.now = func() time.Time { return issuedAt.Add(time.Hour) }
	if _, err := c.Verify(signed); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at boundary, got %v", err)
	}

	c.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	if _, err := c.Verify(signed); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestCodec_Verify_WrongKey(t *testing.T) {
	signed, err := NewCodec("secret-a", time.Hour).Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewCodec("secret-b", time.Hour).Verify(signed); !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestCodec_Verify_Tampered(t *testing.T) {
	c := NewCodec("secret", time.Hour)
	signed, err := c.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three segments, got %d", len(parts))
	}

	// Tampering any segment must never verify.
	for i := range parts {
		mutated := make([]string, 3)
		copy(mutated, parts)
		mutated[i] = flipByte(mutated[i])

		_, err := c.Verify(strings.Join(mutated, "."))
		if err == nil {
			t.Fatalf("tampered segment %d verified", i)
		}
		if !errors.Is(err, domain.ErrTokenSignature) && !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("segment %d: expected signature or malformed error, got %v", i, err)
		}
	}
}

func TestCodec_Verify_Malformed(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	for _, tkn := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := c.Verify(tkn); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", tkn, err)
		}
	}
}

func TestCodec_Verify_RejectsUnsignedAlg(t *testing.T) {
	c := NewCodec("secret", time.Hour)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	if _, err := c.Verify(unsigned); !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature for alg=none, got %v", err)
	}
}

func flipByte(segment string) string {
	if segment == "" {
		return "x"
	}
	b := []byte(segment)
	if b[0] == 'A' {
		b[0] = 'B'
	} else {
		b[0] = 'A'
	}
	return string(b)
}
