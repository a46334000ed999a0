// internal/app/store/datasets/datasetstore.go
package datasetstore

import (
	"context"
	"errors"
	"sync"
	"time"

	workspacestore "github.com/dalemusser/datahub/internal/app/store/workspaces"
	"github.com/dalemusser/datahub/internal/domain/models"
	"github.com/google/uuid"
)

var (
	ErrDuplicateName     = errors.New("a dataset with this name already exists in workspace")
	ErrNotFound          = errors.New("dataset not found")
	ErrWorkspaceNotFound = errors.New("workspace not found")
)

// Store holds datasets in memory. Name uniqueness is scoped to the owning
// workspace; listings preserve creation order so pages are stable.
type Store struct {
	mu          sync.RWMutex
	workspaces  *workspacestore.Store
	byID        map[string]models.Dataset
	byWorkspace map[string][]string          // workspace ID -> dataset IDs, creation order
	names       map[string]map[string]string // workspace ID -> name -> dataset ID
}

func New(workspaces *workspacestore.Store) *Store {
	return &Store{
		workspaces:  workspaces,
		byID:        make(map[string]models.Dataset),
		byWorkspace: make(map[string][]string),
		names:       make(map[string]map[string]string),
	}
}

// Create inserts a new dataset under its workspace. The workspace-existence
// check, the (workspace, name) uniqueness check, and the insert all happen
// under one lock. A workspace delete that wins the race removes the
// workspace row first and then cascades through this same lock, so a
// dataset can never outlive its workspace: either Create sees the workspace
// already gone and fails, or the insert lands before the cascade sweeps it.
func (s *Store) Create(ctx context.Context, ds models.Dataset) (models.Dataset, error) {
	ds.ID = uuid.NewString()
	now := time.Now().UTC()
	ds.CreatedAt = now
	ds.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.workspaces.Exists(ctx, ds.WorkspaceID) {
		return models.Dataset{}, ErrWorkspaceNotFound
	}

	names := s.names[ds.WorkspaceID]
	if names == nil {
		names = make(map[string]string)
		s.names[ds.WorkspaceID] = names
	}
	if _, exists := names[ds.Name]; exists {
		return models.Dataset{}, ErrDuplicateName
	}

	s.byID[ds.ID] = ds
	s.byWorkspace[ds.WorkspaceID] = append(s.byWorkspace[ds.WorkspaceID], ds.ID)
	names[ds.Name] = ds.ID
	return ds, nil
}

// GetByID retrieves a dataset by its ID.
func (s *Store) GetByID(ctx context.Context, id string) (models.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, ok := s.byID[id]
	if !ok {
		return models.Dataset{}, ErrNotFound
	}
	return ds, nil
}

// ListByWorkspace returns the workspace's datasets in creation order,
// windowed by offset and limit. Offsets past the end yield an empty slice.
// The caller validates limit and offset (see system/paging).
func (s *Store) ListByWorkspace(ctx context.Context, workspaceID string, limit, offset int) []models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byWorkspace[workspaceID]
	if offset >= len(ids) {
		return []models.Dataset{}
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}

	out := make([]models.Dataset, 0, end-offset)
	for _, id := range ids[offset:end] {
		out = append(out, s.byID[id])
	}
	return out
}

// CountByWorkspace returns the number of datasets under a workspace.
func (s *Store) CountByWorkspace(ctx context.Context, workspaceID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byWorkspace[workspaceID])
}

// DeleteByWorkspace removes every dataset under the workspace and returns
// how many were deleted. Used by the workspace-deletion cascade.
func (s *Store) DeleteByWorkspace(ctx context.Context, workspaceID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byWorkspace[workspaceID]
	for _, id := range ids {
		delete(s.byID, id)
	}
	delete(s.byWorkspace, workspaceID)
	delete(s.names, workspaceID)
	return len(ids)
}
