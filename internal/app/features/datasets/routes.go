// internal/app/features/datasets/routes.go
package datasets

import (
	"github.com/dalemusser/datahub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the dataset endpoints. These are mounted under
// /workspaces/{id}/datasets and require a bearer token.
func Routes(h *Handler, v *auth.Verifier) chi.Router {
	r := chi.NewRouter()
	r.Use(v.RequireToken)

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)

	return r
}
