// internal/app/features/datasets/handler.go
package datasets

import (
	"time"

	datasetstore "github.com/dalemusser/datahub/internal/app/store/datasets"
	workspacestore "github.com/dalemusser/datahub/internal/app/store/workspaces"
	"github.com/dalemusser/datahub/internal/app/system/auditlog"
	"github.com/dalemusser/datahub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler provides HTTP handlers for datasets within a workspace.
type Handler struct {
	Workspaces *workspacestore.Store
	Datasets   *datasetstore.Store
	AuditLog   *auditlog.Logger
	Log        *zap.Logger
}

// NewHandler creates a new datasets Handler.
func NewHandler(wsStore *workspacestore.Store, dsStore *datasetstore.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Workspaces: wsStore,
		Datasets:   dsStore,
		AuditLog:   audit,
		Log:        logger,
	}
}

// datasetView is the JSON shape returned for a dataset record.
type datasetView struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	WorkspaceID string         `json:"workspace_id"`
	Schema      map[string]any `json:"data_schema,omitempty"`
	RowCount    *int64         `json:"row_count,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func viewOf(ds models.Dataset) datasetView {
	return datasetView{
		ID:          ds.ID,
		Name:        ds.Name,
		WorkspaceID: ds.WorkspaceID,
		Schema:      ds.Schema,
		RowCount:    ds.RowCount,
		CreatedAt:   ds.CreatedAt,
		UpdatedAt:   ds.UpdatedAt,
	}
}
