// internal/domain/models/dataset.go
package models

import "time"

// Dataset lives under a workspace. Its name is unique within the owning
// workspace but not globally.
type Dataset struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	WorkspaceID string         `json:"workspace_id"`
	Schema      map[string]any `json:"data_schema,omitempty"`
	RowCount    *int64         `json:"row_count,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
