// internal/app/store/tokens/tokenstore.go
package tokenstore

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/dalemusser/datahub/internal/domain/models"
	"github.com/gorilla/securecookie"
)

// DefaultTTL matches the original 24-hour session window.
const DefaultTTL = 24 * time.Hour

var (
	// ErrInvalidToken is returned for values not present in the active set.
	ErrInvalidToken = errors.New("invalid authentication token")
	// ErrExpiredToken is returned for tokens past their expiry. The token is
	// evicted from the active set as a side effect.
	ErrExpiredToken = errors.New("expired authentication token")

	errEntropy = errors.New("token entropy source unavailable")
)

// Store is the bearer-token authority: it issues, validates, and revokes
// opaque tokens. One mutex guards both maps so that issuing a replacement
// token and invalidating the prior one is observed atomically; there is
// never a window where two tokens are live for the same user.
type Store struct {
	mu      sync.Mutex
	byValue map[string]models.Token
	byUser  map[string]string // user ID -> active token value

	ttl time.Duration

	// Now is the clock used for issue/expiry decisions. Tests override it.
	Now func() time.Time
}

// New creates a Store issuing tokens valid for ttl. A non-positive ttl
// falls back to DefaultTTL.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		byValue: make(map[string]models.Token),
		byUser:  make(map[string]string),
		ttl:     ttl,
		Now:     time.Now,
	}
}

// Issue creates a token for userID. Any prior token for the same user is
// revoked in the same locked section (single active session per user).
func (s *Store) Issue(ctx context.Context, userID string) (models.Token, error) {
	raw := securecookie.GenerateRandomKey(32)
	if raw == nil {
		return models.Token{}, errEntropy
	}

	now := s.Now().UTC()
	tok := models.Token{
		Value:     base64.RawURLEncoding.EncodeToString(raw),
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prior, ok := s.byUser[userID]; ok {
		delete(s.byValue, prior)
	}
	s.byValue[tok.Value] = tok
	s.byUser[userID] = tok.Value
	return tok, nil
}

// Validate resolves a token value to its record. Expired tokens are lazily
// evicted and reported as ErrExpiredToken; unknown values as ErrInvalidToken.
func (s *Store) Validate(ctx context.Context, value string) (models.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, ok := s.byValue[value]
	if !ok {
		return models.Token{}, ErrInvalidToken
	}
	if !s.Now().UTC().Before(tok.ExpiresAt) {
		delete(s.byValue, value)
		if s.byUser[tok.UserID] == value {
			delete(s.byUser, tok.UserID)
		}
		return models.Token{}, ErrExpiredToken
	}
	return tok, nil
}

// Revoke removes a token from the active set. Revoking an unknown value is
// a no-op; logout must not fail because the token already lapsed.
func (s *Store) Revoke(ctx context.Context, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, ok := s.byValue[value]
	if !ok {
		return
	}
	delete(s.byValue, value)
	if s.byUser[tok.UserID] == value {
		delete(s.byUser, tok.UserID)
	}
}

// ActiveCount returns the number of live tokens (expired-but-unevicted
// entries included until their next Validate).
func (s *Store) ActiveCount(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byValue)
}
