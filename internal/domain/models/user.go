// internal/domain/models/user.go
package models

import "time"

// User roles.
const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleViewer = "viewer"
)

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleUser, RoleViewer:
		return true
	}
	return false
}

// User represents a registered identity.
//
// The ID is a random UUID assigned at creation and never derived from any
// user-supplied field. Email uniqueness is enforced by the user store with
// exact (case-sensitive) matching.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"name"`
	Role     string `json:"role"` // admin | user | viewer

	// PasswordHash holds the encoded argon2id hash. Never serialized.
	PasswordHash string `json:"-"`

	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login"`
}
