// internal/app/features/workspaces/routes.go
package workspaces

import (
	"github.com/dalemusser/datahub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the workspace endpoints. Everything requires a bearer token.
func Routes(h *Handler, v *auth.Verifier) chi.Router {
	r := chi.NewRouter()
	r.Use(v.RequireToken)

	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.ServeGet)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
