// Package auth implements the password gate in front of the API. A single
// shared password is verified against a configured SHA-256 hash; a
// successful login yields a bearer token held in a TTL cache.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrBadPassword is returned for a failed login attempt.
var ErrBadPassword = errors.New("wrong password")

// Gate validates the access password and tracks issued sessions.
type Gate struct {
	passwordHash string
	sessions     *gocache.Cache
	ttl          time.Duration
}

// NewGate creates a gate for the given SHA-256 password hash (hex).
// Sessions expire after ttl of inactivity from issuance.
func NewGate(passwordHash string, ttl time.Duration) *Gate {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Gate{
		passwordHash: passwordHash,
		sessions:     gocache.New(ttl, 10*time.Minute),
		ttl:          ttl,
	}
}

// HashPassword returns the hex SHA-256 of a password, the form stored in
// configuration.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Login checks the password and, on success, issues a session token.
func (g *Gate) Login(password string) (string, error) {
	given := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(given), []byte(g.passwordHash)) != 1 {
		return "", ErrBadPassword
	}
	token, err := newToken()
	if err != nil {
		return "", err
	}
	g.sessions.Set(token, time.Now(), g.ttl)
	return token, nil
}

// Valid reports whether a session token is live.
func (g *Gate) Valid(token string) bool {
	if token == "" {
		return false
	}
	_, ok := g.sessions.Get(token)
	return ok
}

// Revoke ends a session.
func (g *Gate) Revoke(token string) {
	g.sessions.Delete(token)
}

func newToken() (string, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}
