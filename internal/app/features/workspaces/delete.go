// internal/app/features/workspaces/delete.go
package workspaces

import (
	"net/http"

	"github.com/dalemusser/datahub/internal/app/system/auth"
	"github.com/dalemusser/datahub/internal/app/system/authz"
	"github.com/dalemusser/datahub/internal/app/system/httpjson"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete processes DELETE /api/v1/workspaces/{id}.
//
// Only the workspace owner or an admin may delete. Deletion removes the
// workspace first, then its datasets; once it returns, the name is free
// for reuse and the datasets are gone. A successful delete is acknowledged
// with a 200 and a short message.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	id := workspaceID(r)
	ws, err := h.Workspaces.GetByID(r.Context(), id)
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "not_found", "workspace not found")
		return
	}

	if !authz.CanDeleteWorkspace(r, ws) {
		httpjson.Error(w, http.StatusForbidden, "forbidden", "only the owner or an admin can delete a workspace")
		return
	}

	if _, err := h.Workspaces.Delete(r.Context(), id); err != nil {
		// Lost a race with another delete.
		httpjson.Error(w, http.StatusNotFound, "not_found", "workspace not found")
		return
	}
	removed := h.Datasets.DeleteByWorkspace(r.Context(), id)

	h.AuditLog.WorkspaceDeleted(r.Context(), r, u.ID, id, ws.Name, removed)
	h.Log.Info("workspace deleted",
		zap.String("workspace_id", id),
		zap.String("workspace_name", ws.Name),
		zap.Int("datasets_removed", removed),
		zap.String("deleted_by", u.ID))

	httpjson.Write(w, http.StatusOK, map[string]string{
		"message": "workspace " + ws.Name + " deleted successfully",
	})
}

func workspaceID(r *http.Request) string {
	return chi.URLParam(r, "id")
}
