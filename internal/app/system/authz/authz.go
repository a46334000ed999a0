// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/datahub/internal/app/system/auth"
	"github.com/dalemusser/datahub/internal/domain/models"
)

// Role returns the current user's role (lowercased) and whether a user is present.
func Role(r *http.Request) (string, bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "", false
	}
	return strings.ToLower(user.Role), true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	role, ok := Role(r)
	return ok && role == models.RoleAdmin
}

// HasAnyRole reports whether the current request's user has any of the given roles.
// Returns false if no user is present.
func HasAnyRole(r *http.Request, roles ...string) bool {
	cur, ok := Role(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if cur == strings.ToLower(strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}

// CanDeleteWorkspace reports whether the current user may delete the given
// workspace. Admins can delete any workspace; otherwise only the owner can.
func CanDeleteWorkspace(r *http.Request, ws models.Workspace) bool {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return false
	}
	if strings.ToLower(user.Role) == models.RoleAdmin {
		return true
	}
	return user.Email == ws.OwnerEmail
}
