// internal/app/features/datasets/create.go
package datasets

import (
	"errors"
	"net/http"

	datasetstore "github.com/dalemusser/datahub/internal/app/store/datasets"
	"github.com/dalemusser/datahub/internal/app/system/auth"
	"github.com/dalemusser/datahub/internal/app/system/httpjson"
	"github.com/dalemusser/datahub/internal/app/system/sanitize"
	"github.com/dalemusser/datahub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type createRequest struct {
	Name     string         `json:"name"`
	Schema   map[string]any `json:"data_schema"`
	RowCount *int64         `json:"row_count"`
}

// HandleCreate processes POST /api/v1/workspaces/{id}/datasets.
//
// The workspace must exist, and the dataset name must be unique within
// that workspace. The same name in another workspace is fine.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	wsID := chi.URLParam(r, "id")
	if !h.Workspaces.Exists(r.Context(), wsID) {
		httpjson.Error(w, http.StatusNotFound, "workspace_not_found", "workspace not found")
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
	if req.RowCount != nil && *req.RowCount < 0 {
		httpjson.Error(w, http.StatusBadRequest, "bad_request", "row_count cannot be negative")
		return
	}

	ds, err := h.Datasets.Create(r.Context(), models.Dataset{
		Name:        name,
		WorkspaceID: wsID,
		Schema:      req.Schema,
		RowCount:    req.RowCount,
	})
	if err != nil {
		if errors.Is(err, datasetstore.ErrDuplicateName) {
			httpjson.Error(w, http.StatusBadRequest, "duplicate_name", "dataset name is already taken in this workspace")
			return
		}
		if errors.Is(err, datasetstore.ErrWorkspaceNotFound) {
			// The workspace was deleted between the check above and the insert.
			httpjson.Error(w, http.StatusNotFound, "workspace_not_found", "workspace not found")
			return
		}
		h.Log.Error("dataset create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	h.AuditLog.DatasetCreated(r.Context(), r, u.ID, ds.ID, wsID, ds.Name)

	httpjson.Write(w, http.StatusCreated, viewOf(ds))
}
