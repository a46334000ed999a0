// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dalemusser/datahub/internal/domain/models"
	"github.com/google/uuid"
)

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	errBadRole = errors.New(`role must be "admin"|"user"|"viewer"`)
)

// Store holds user identity records in memory. A single RWMutex guards the
// maps so that uniqueness checks and inserts are one atomic step.
type Store struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string // email -> user ID, exact match
}

func New() *Store {
	return &Store{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

// Create inserts a new user after validating the role. The ID is a fresh
// random UUID; email uniqueness is exact (case-sensitive) and checked under
// the same lock as the insert.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	switch u.Role {
	case models.RoleAdmin, models.RoleUser, models.RoleViewer:
		// ok
	default:
		return models.User{}, errBadRole
	}

	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	u.LastLoginAt = nil

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[u.Email]; exists {
		return models.User{}, ErrDuplicateEmail
	}
	s.byID[u.ID] = u
	s.byEmail[u.Email] = u.ID
	return u, nil
}

// GetByID loads a user by ID. Returns ErrNotFound if absent.
func (s *Store) GetByID(ctx context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

// GetByEmail looks up a user by exact email. Returns ErrNotFound if absent.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return s.byID[id], nil
}

// RecordLogin stamps the user's last-login time.
func (s *Store) RecordLogin(ctx context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	at = at.UTC()
	u.LastLoginAt = &at
	s.byID[id] = u
	return nil
}

// Count returns the number of registered users.
func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
