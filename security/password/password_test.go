package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal plaintext")
	}
	if !h.Verify("secret1", hash) {
		t.Fatal("expected matching password to verify")
	}
	if h.Verify("secret2", hash) {
		t.Fatal("expected mismatched password to fail")
	}
}

func TestHash_Salted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash1, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash2, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash1 == hash2 {
		t.Fatal("expected salted hashes to differ")
	}
	if !h.Verify("secret1", hash1) || !h.Verify("secret1", hash2) {
		t.Fatal("expected both salted hashes to verify")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	if h.Verify("secret1", "not-a-bcrypt-hash") {
		t.Fatal("expected malformed hash to fail verification")
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	h := NewHasher(-1)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, h.cost)
	}

	h = NewHasher(bcrypt.MaxCost + 1)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, h.cost)
	}
}
