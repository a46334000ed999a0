// internal/app/store/workspaces/workspacestore.go
package workspacestore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dalemusser/datahub/internal/domain/models"
	"github.com/google/uuid"
)

var (
	ErrDuplicateName = errors.New("a workspace with this name already exists")
	ErrNotFound      = errors.New("workspace not found")
)

// Store holds workspaces in memory. Name uniqueness is global and checked
// under the same lock as the insert.
type Store struct {
	mu     sync.RWMutex
	byID   map[string]models.Workspace
	byName map[string]string // name -> workspace ID, exact match
}

func New() *Store {
	return &Store{
		byID:   make(map[string]models.Workspace),
		byName: make(map[string]string),
	}
}

// Create inserts a new workspace. The ID is a fresh random UUID; status
// defaults to active. The owner email is always part of the member set.
func (s *Store) Create(ctx context.Context, ws models.Workspace) (models.Workspace, error) {
	ws.ID = uuid.NewString()
	if ws.Status == "" {
		ws.Status = models.WorkspaceActive
	}
	ws.CreatedAt = time.Now().UTC()
	ws.Members = dedupe(append(ws.Members, ws.OwnerEmail))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[ws.Name]; exists {
		return models.Workspace{}, ErrDuplicateName
	}
	s.byID[ws.ID] = ws
	s.byName[ws.Name] = ws.ID
	return ws, nil
}

// GetByID retrieves a workspace by its ID.
func (s *Store) GetByID(ctx context.Context, id string) (models.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ws, ok := s.byID[id]
	if !ok {
		return models.Workspace{}, ErrNotFound
	}
	return ws, nil
}

// Exists reports whether a workspace with the given ID is present.
func (s *Store) Exists(ctx context.Context, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byID[id]
	return ok
}

// Delete removes a workspace by ID. Dataset cascade is the caller's
// responsibility (the catalog deletes the workspace first, then purges its
// datasets, so listings observe WorkspaceNotFound rather than orphans).
func (s *Store) Delete(ctx context.Context, id string) (models.Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, ok := s.byID[id]
	if !ok {
		return models.Workspace{}, ErrNotFound
	}
	delete(s.byID, id)
	delete(s.byName, ws.Name)
	return ws, nil
}

// Count returns the number of workspaces.
func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func dedupe(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
