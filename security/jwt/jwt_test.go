package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGenerateDecode_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)

	token, err := tm.Generate("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	subject, err := tm.Decode(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "42" {
		t.Fatalf("expected subject 42, got %q", subject)
	}
}

func TestDecode_ExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)

	token, err := tm.GenerateWithExpiry("42", -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := tm.Decode(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestDecode_ZeroTTLTokenIsInvalid(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)

	token, err := tm.GenerateWithExpiry("42", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// exp == now; by verification time the instant has elapsed.
	time.Sleep(1100 * time.Millisecond)
	if _, err := tm.Decode(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestDecode_TamperedSignature(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)

	token, err := tm.Generate("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := tm.Decode(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestDecode_WrongKey(t *testing.T) {
	token, err := NewTokenManager("key-one", time.Minute).Generate("42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewTokenManager("key-two", time.Minute).Decode(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong key, got %v", err)
	}
}

func TestDecode_GarbageToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)
	if _, err := tm.Decode("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestGenerate_RequiresKey(t *testing.T) {
	tm := NewTokenManager("", time.Minute)
	if _, err := tm.Generate("42"); !errors.Is(err, ErrNeedSigningKey) {
		t.Fatalf("expected ErrNeedSigningKey, got %v", err)
	}
}

func TestNewTokenManager_DefaultExpire(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)
	if tm.Expire() != DefaultExpire {
		t.Fatalf("expected default expire %v, got %v", DefaultExpire, tm.Expire())
	}
}
