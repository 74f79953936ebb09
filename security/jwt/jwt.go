// Package jwt issues and verifies signed stateless access tokens.
package jwt

import (
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
)

// TokenError represents JWT token related errors
type TokenError string

func (e TokenError) Error() string {
	return string(e)
}

const (
	ErrNeedSigningKey = TokenError("cannot sign token without signing key")
	ErrInvalidToken   = TokenError("invalid token")
)

// DefaultExpire is the token lifetime used when none is configured.
const DefaultExpire = 30 * time.Minute

// TokenManager handles access token operations. Tokens carry the subject
// and an absolute expiry; validity is fully determined by signature and
// expiry at verification time.
type TokenManager struct {
	key    string
	expire time.Duration
}

// NewTokenManager creates a new TokenManager instance.
func NewTokenManager(key string, expire time.Duration) *TokenManager {
	if expire <= 0 {
		expire = DefaultExpire
	}
	return &TokenManager{key: key, expire: expire}
}

// Expire returns the configured token lifetime.
func (tm *TokenManager) Expire() time.Duration {
	return tm.expire
}

// Generate signs an access token for the subject using the configured
// lifetime.
func (tm *TokenManager) Generate(subject string) (string, error) {
	return tm.GenerateWithExpiry(subject, tm.expire)
}

// GenerateWithExpiry signs an access token for the subject expiring at
// now + expire.
func (tm *TokenManager) GenerateWithExpiry(subject string, expire time.Duration) (string, error) {
	if tm.key == "" {
		return "", ErrNeedSigningKey
	}

	claims := jwtstd.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(expire).Unix(),
	}

	t := jwtstd.NewWithClaims(jwtstd.SigningMethodHS256, claims)
	return t.SignedString([]byte(tm.key))
}

// Decode verifies signature and expiry and returns the token subject.
// Any failure, including a missing subject, yields ErrInvalidToken.
func (tm *TokenManager) Decode(tokenString string) (string, error) {
	if tm.key == "" {
		return "", ErrNeedSigningKey
	}

	token, err := jwtstd.Parse(tokenString, func(token *jwtstd.Token) (any, error) {
		if _, ok := token.Method.(*jwtstd.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(tm.key), nil
	}, jwtstd.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}

	return subject, nil
}
