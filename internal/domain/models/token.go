// internal/domain/models/token.go
package models

import "time"

// Token is an issued bearer credential. The Value is an opaque random
// string; a token is live while it remains in the active set and ExpiresAt
// is in the future.
type Token struct {
	Value     string    `json:"token"`
	UserID    string    `json:"-"`
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}
