// internal/app/features/workspaces/create.go
package workspaces

import (
	"errors"
	"net/http"

	workspacestore "github.com/dalemusser/datahub/internal/app/store/workspaces"
	"github.com/dalemusser/datahub/internal/app/system/auth"
	"github.com/dalemusser/datahub/internal/app/system/httpjson"
	"github.com/dalemusser/datahub/internal/app/system/sanitize"
	"github.com/dalemusser/datahub/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerEmail  string `json:"owner_email"`
	Status      string `json:"status"`
}

// HandleCreate processes POST /api/v1/workspaces.
//
// Workspace names are unique across the whole catalog. The creator and the
// named owner both become members; when owner_email is omitted the creator
// owns the workspace.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad_request", "malformed JSON body")
		return
	}

	name := sanitize.Text(req.Name)
	if name == "" {
		httpjson.Error(w, http.StatusBadRequest, "bad_request", "name is required")
		return
	}

	owner := req.OwnerEmail
	if owner == "" {
		owner = u.Email
	}

	status := req.Status
	if status == "" {
		status = models.WorkspaceActive
	}
	switch status {
	case models.WorkspaceActive, models.WorkspaceInactive, models.WorkspaceArchived:
	default:
		httpjson.Error(w, http.StatusBadRequest, "bad_request", "unknown status")
		return
	}

	ws, err := h.Workspaces.Create(r.Context(), models.Workspace{
		Name:        name,
		Description: sanitize.Text(req.Description),
		OwnerEmail:  owner,
		Status:      status,
		Members:     []string{u.Email},
	})
	if err != nil {
		if errors.Is(err, workspacestore.ErrDuplicateName) {
			httpjson.Error(w, http.StatusBadRequest, "duplicate_name", "workspace name is already taken")
			return
		}
		h.Log.Error("workspace create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	h.AuditLog.WorkspaceCreated(r.Context(), r, u.ID, ws.ID, ws.Name)

	httpjson.Write(w, http.StatusCreated, viewOf(ws))
}

// ServeGet returns one workspace for GET /api/v1/workspaces/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ws, err := h.Workspaces.GetByID(r.Context(), workspaceID(r))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "not_found", "workspace not found")
		return
	}
	httpjson.Write(w, http.StatusOK, viewOf(ws))
}
