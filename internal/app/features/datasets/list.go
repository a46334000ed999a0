// internal/app/features/datasets/list.go
package datasets

import (
	"net/http"

	"github.com/dalemusser/datahub/internal/app/system/httpjson"
	"github.com/dalemusser/datahub/internal/app/system/paging"
	"github.com/go-chi/chi/v5"
)

// listResponse carries one page of datasets plus the workspace total, so
// clients can page without a separate count call.
type listResponse struct {
	Datasets []datasetView `json:"datasets"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

// ServeList handles GET /api/v1/workspaces/{id}/datasets.
//
// Pagination is validated before the workspace lookup, so a bad limit on a
// missing workspace reports invalid_pagination, not workspace_not_found.
// An offset past the end returns an empty page, not an error.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page, err := paging.Parse(r)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid_pagination", "limit and offset must be non-negative integers; limit at most 100")
		return
	}

	wsID := chi.URLParam(r, "id")
	if !h.Workspaces.Exists(r.Context(), wsID) {
		httpjson.Error(w, http.StatusNotFound, "workspace_not_found", "workspace not found")
		return
	}

	items := h.Datasets.ListByWorkspace(r.Context(), wsID, page.Limit, page.Offset)
	views := make([]datasetView, 0, len(items))
	for _, ds := range items {
		views = append(views, viewOf(ds))
	}

	httpjson.Write(w, http.StatusOK, listResponse{
		Datasets: views,
		Total:    h.Datasets.CountByWorkspace(r.Context(), wsID),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
}
