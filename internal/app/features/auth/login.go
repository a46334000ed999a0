// internal/app/features/auth/login.go
package auth

import (
	"errors"
	"net/http"
	"time"

	userstore "github.com/dalemusser/datahub/internal/app/store/users"
	"github.com/dalemusser/datahub/internal/app/system/httpjson"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userView  `json:"user"`
}

// HandleLogin processes POST /api/v1/auth/login.
//
// Unknown email and wrong password take the same code path cost: the
// unknown-email branch still runs a full hash verification against a dummy
// digest before returning the same invalid_credentials response. The two
// causes are distinguished in the audit log only.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad_request", "malformed JSON body")
		return
	}

	user, err := h.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			h.Hasher.VerifyDummy(req.Password)
			h.AuditLog.LoginFailedUserNotFound(r.Context(), r, req.Email)
			httpjson.Error(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
			return
		}
		h.Log.Error("user lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	ok, err := h.Hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		h.Log.Error("password verify failed",
			zap.String("user_id", user.ID),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	if !ok {
		h.AuditLog.LoginFailedWrongPassword(r.Context(), r, user.ID, user.Email)
		httpjson.Error(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
		return
	}

	tok, err := h.Tokens.Issue(r.Context(), user.ID)
	if err != nil {
		h.Log.Error("token issue failed",
			zap.String("user_id", user.ID),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	now := time.Now().UTC()
	if err := h.Users.RecordLogin(r.Context(), user.ID, now); err != nil {
		h.Log.Warn("record login failed",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}
	user.LastLoginAt = &now

	h.AuditLog.LoginSuccess(r.Context(), r, user.ID, user.Email)

	httpjson.Write(w, http.StatusOK, loginResponse{
		Token:     tok.Value,
		ExpiresAt: tok.ExpiresAt,
		User:      viewOf(user),
	})
}
