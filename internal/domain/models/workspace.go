// internal/domain/models/workspace.go
package models

import "time"

// Workspace statuses.
const (
	WorkspaceActive   = "active"
	WorkspaceInactive = "inactive"
	WorkspaceArchived = "archived"
)

// Workspace is the top-level tenant container. Datasets belong to exactly
// one workspace via their WorkspaceID field.
type Workspace struct {
	ID          string `json:"id"`
	Name        string `json:"name"` // unique across all workspaces
	Description string `json:"description,omitempty"`
	OwnerEmail  string `json:"owner_email"`
	Status      string `json:"status"` // active | inactive | archived

	// Members holds the emails permitted to access the workspace.
	// The owner and the creator are always present.
	Members []string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// IsMember reports whether email belongs to the workspace's member set.
func (w Workspace) IsMember(email string) bool {
	if email == w.OwnerEmail {
		return true
	}
	for _, m := range w.Members {
		if m == email {
			return true
		}
	}
	return false
}
