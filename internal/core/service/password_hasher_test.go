package service

import (
	"strings"
	"testing"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "password123" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("unexpected hash: %q", hash)
	}

	if !hasher.Verify("password123", hash) {
		t.Fatalf("verify must accept the original password")
	}
	if hasher.Verify("password124", hash) {
		t.Fatalf("verify must reject a wrong password")
	}
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	hasher := NewBcryptHasher(4)

	first, err := hasher.Hash("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := hasher.Hash("same-input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatalf("embedded salt must vary the hash across calls")
	}
	if !hasher.Verify("same-input", first) || !hasher.Verify("same-input", second) {
		t.Fatalf("both hashes must verify")
	}
}

func TestBcryptHasher_CostOutOfRange(t *testing.T) {
	// Out-of-range costs must still produce a working hasher.
	hasher := NewBcryptHasher(99)
	hash, err := hasher.Hash("pw-ok")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !hasher.Verify("pw-ok", hash) {
		t.Fatalf("verify failed")
	}
}
