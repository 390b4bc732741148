// Package session manages admin session tokens. A token is created on
// login success, checked on each protected request and cleared on logout.
// Tokens are stateless JWTs; logout is made real by an in-memory set of
// revoked token IDs that is pruned as entries expire.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrTokenRevoked = errors.New("session token revoked")
)

// Claims holds the typed JWT payload.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager issues and verifies admin session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration

	mu      sync.Mutex
	revoked map[string]time.Time // jti -> token expiry
}

// NewManager creates a session manager signing tokens with secret, each
// valid for ttl.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: make(map[string]time.Time),
	}
}

// Issue creates a signed token for the given admin username.
func (m *Manager) Issue(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token string, rejecting revoked tokens.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	m.mu.Lock()
	_, revoked := m.revoked[claims.ID]
	m.mu.Unlock()
	if revoked {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// Revoke invalidates a previously issued token. Verifying it afterwards
// fails with ErrTokenRevoked until the token would have expired anyway.
func (m *Manager) Revoke(tokenString string) error {
	claims, err := m.Verify(tokenString)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked(time.Now())
	m.revoked[claims.ID] = claims.ExpiresAt.Time
	return nil
}

// pruneLocked drops revocation entries for tokens that are already expired.
// Caller must hold mu.
func (m *Manager) pruneLocked(now time.Time) {
	for jti, expiry := range m.revoked {
		if now.After(expiry) {
			delete(m.revoked, jti)
		}
	}
}
