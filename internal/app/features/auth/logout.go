// internal/app/features/auth/logout.go
package auth

import (
	"net/http"

	sysauth "github.com/dalemusser/datahub/internal/app/system/auth"
	"github.com/dalemusser/datahub/internal/app/system/httpjson"
)

// HandleLogout processes POST /api/v1/auth/logout.
//
// The bearer token that authenticated this request is revoked. Revocation
// is idempotent, so a token that raced an expiry sweep still gets a 200.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	u, ok := sysauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	h.Tokens.Revoke(r.Context(), sysauth.BearerToken(r))
	h.AuditLog.Logout(r.Context(), r, u.ID)

	httpjson.Write(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// ServeMe returns the authenticated user's record for GET /api/v1/auth/me.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	u, ok := sysauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	user, err := h.Users.GetByID(r.Context(), u.ID)
	if err != nil {
		httpjson.Error(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	httpjson.Write(w, http.StatusOK, viewOf(user))
}
