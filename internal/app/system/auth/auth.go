// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"net/http"
	"strings"

	tokenstore "github.com/dalemusser/datahub/internal/app/store/tokens"
	userstore "github.com/dalemusser/datahub/internal/app/store/users"
	"github.com/dalemusser/datahub/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// Principal is what the token middleware injects into r.Context().
type Principal struct {
	ID    string
	Name  string
	Email string
	Role  string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the authenticated principal and a "found?" flag.
func CurrentUser(r *http.Request) (*Principal, bool) {
	u, ok := r.Context().Value(currentUserKey).(*Principal)
	return u, ok
}

// BearerToken extracts the token from the Authorization header.
// Returns "" when the header is absent or not a Bearer scheme.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	scheme, value, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(value)
}

// Verifier resolves bearer tokens into principals.
type Verifier struct {
	Tokens *tokenstore.Store
	Users  *userstore.Store
	Log    *zap.Logger
}

// RequireToken ensures the request carries a valid, unexpired bearer token
// and injects the owning user into context. Every failure mode (missing
// header, unknown token, expired token, vanished user) produces the same
// 401 body so callers cannot probe which tokens exist. The distinct
// reasons go to the log only.
func (v *Verifier) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		value := BearerToken(r)
		if value == "" {
			v.unauthorized(w, r, "missing bearer token")
			return
		}

		tok, err := v.Tokens.Validate(r.Context(), value)
		if err != nil {
			v.unauthorized(w, r, err.Error())
			return
		}

		user, err := v.Users.GetByID(r.Context(), tok.UserID)
		if err != nil {
			v.unauthorized(w, r, "token user no longer exists")
			return
		}

		u := &Principal{
			ID:    user.ID,
			Name:  user.FullName,
			Email: user.Email,
			Role:  user.Role,
		}
		next.ServeHTTP(w, withUser(r, u))
	})
}

func (v *Verifier) unauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	v.Log.Debug("request rejected",
		zap.String("path", r.URL.Path),
		zap.String("reason", reason))
	httpjson.Error(w, http.StatusUnauthorized, "unauthorized", "authentication required")
}

func withUser(r *http.Request, u *Principal) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}
