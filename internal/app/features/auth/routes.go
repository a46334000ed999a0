// internal/app/features/auth/routes.go
package auth

import (
	sysauth "github.com/dalemusser/datahub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the authentication endpoints. Register and login are open;
// logout and me require a valid bearer token.
func Routes(h *Handler, v *sysauth.Verifier) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(v.RequireToken)
		r.Post("/logout", h.HandleLogout)
		r.Get("/me", h.ServeMe)
	})

	return r
}
