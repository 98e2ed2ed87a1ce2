// Package token issues and verifies the signed identity assertions used by
// the API. Tokens are HS256 JWTs carrying the authenticated email and an
// expiry; nothing is persisted, so rotating the secret invalidates every
// outstanding token.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Manager signs and verifies tokens with a single process-wide secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token asserting the given email, expiring exactly
// ttl after now.
func (m *Manager) Issue(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify checks signature and expiry and returns the email claim. Any
// malformed, tampered, or expired token fails with ErrInvalidToken; expiry is
// strict — a token presented at or after its exp instant is rejected.
func (m *Manager) Verify(tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return "", ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}
