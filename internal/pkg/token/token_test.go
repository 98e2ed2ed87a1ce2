package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestManager_IssueVerify_Roundtrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	signed, err := m.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}

	email, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if email != "alice@example.com" {
		t.Fatalf("expected email claim, got %q", email)
	}
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	m := NewManager("secret", time.Hour)
	signed, err := m.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewManager("rotated", time.Hour)
	if _, err := other.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_Verify_Expired(t *testing.T) {
	claims := jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	m := NewManager("secret", time.Hour)
	if _, err := m.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestManager_Verify_MissingExpiry(t *testing.T) {
	claims := jwt.MapClaims{"email": "alice@example.com"}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	m := NewManager("secret", time.Hour)
	if _, err := m.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for token without exp, got %v", err)
	}
}

func TestManager_Verify_Malformed(t *testing.T) {
	m := NewManager("secret", time.Hour)
	if _, err := m.Verify("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_Verify_WrongSigningMethod(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	m := NewManager("secret", time.Hour)
	if _, err := m.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none token, got %v", err)
	}
}
