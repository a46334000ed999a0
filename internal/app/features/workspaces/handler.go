// internal/app/features/workspaces/handler.go
package workspaces

import (
	"time"

	datasetstore "github.com/dalemusser/datahub/internal/app/store/datasets"
	workspacestore "github.com/dalemusser/datahub/internal/app/store/workspaces"
	"github.com/dalemusser/datahub/internal/app/system/auditlog"
	"github.com/dalemusser/datahub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler provides HTTP handlers for workspace management.
type Handler struct {
	Workspaces *workspacestore.Store
	Datasets   *datasetstore.Store
	AuditLog   *auditlog.Logger
	Log        *zap.Logger
}

// NewHandler creates a new workspaces Handler.
func NewHandler(wsStore *workspacestore.Store, dsStore *datasetstore.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Workspaces: wsStore,
		Datasets:   dsStore,
		AuditLog:   audit,
		Log:        logger,
	}
}

// workspaceView is the JSON shape returned for a workspace record.
type workspaceView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerEmail  string    `json:"owner_email"`
	Status      string    `json:"status"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func viewOf(ws models.Workspace) workspaceView {
	return workspaceView{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
		OwnerEmail:  ws.OwnerEmail,
		Status:      ws.Status,
		MemberCount: len(ws.Members),
		CreatedAt:   ws.CreatedAt,
	}
}
