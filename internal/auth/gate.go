// Package auth implements the PIN gate in front of settings and destructive
// actions. The PIN is compared against a bcrypt hash and a successful check
// unlocks a short-lived admin session carried as a signed token.
//
// This is a UI speed bump, not an access-control boundary: anyone holding the
// binary and its configuration can bypass it.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nymphhq/nymph/internal/common"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Admin bool
}

// Gate validates PINs and issues admin session tokens.
type Gate struct {
	pinHash    []byte
	secretKey  []byte
	sessionTTL time.Duration
}

// NewGate hashes the configured PIN and keeps the signing key for session
// tokens.
func NewGate(pin string, secretKey []byte, sessionTTL time.Duration) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Gate{pinHash: hash, secretKey: secretKey, sessionTTL: sessionTTL}, nil
}

// Unlock checks the PIN and returns a session token valid for the configured
// TTL. A wrong PIN is common.ErrAccessDenied.
func (g *Gate) Unlock(pin []byte) (string, error) {
	if err := bcrypt.CompareHashAndPassword(g.pinHash, pin); err != nil {
		return "", common.ErrAccessDenied
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(g.sessionTTL)),
		},
		Admin: true,
	})
	return token.SignedString(g.secretKey)
}

// Check validates a session token. Expired sessions return
// common.ErrSessionExpired so callers can prompt for the PIN again.
func (g *Gate) Check(tokenString string) error {
	if tokenString == "" {
		return common.ErrSessionExpired
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return g.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrSessionExpired
		}
		return common.ErrInvalidToken
	}

	if !token.Valid || !claims.Admin {
		return common.ErrInvalidToken
	}
	return nil
}
