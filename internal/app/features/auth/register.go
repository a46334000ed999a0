// internal/app/features/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/datahub/internal/app/store/users"
	"github.com/dalemusser/datahub/internal/app/system/httpjson"
	"github.com/dalemusser/datahub/internal/app/system/password"
	"github.com/dalemusser/datahub/internal/app/system/sanitize"
	"github.com/dalemusser/datahub/internal/domain/models"
	"go.uber.org/zap"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// HandleRegister processes POST /api/v1/auth/register.
//
// Password strength is checked before anything is stored; a duplicate email
// leaves no partial state behind. On success the response is 201 with the
// user record (password hash excluded).
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "bad_request", "malformed JSON body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Name = sanitize.Text(req.Name)
	if req.Email == "" || req.Name == "" {
		httpjson.Error(w, http.StatusBadRequest, "bad_request", "email and name are required")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		httpjson.Error(w, http.StatusBadRequest, "bad_request", "unknown role")
		return
	}

	if err := password.ValidateStrength(req.Password); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "weak_password", err.Error())
		return
	}

	hash, err := h.Hasher.Hash(req.Password)
	if err != nil {
		h.Log.Error("password hash failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	user, err := h.Users.Create(r.Context(), models.User{
		Email:        req.Email,
		FullName:     req.Name,
		Role:         role,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			httpjson.Error(w, http.StatusBadRequest, "duplicate_email", "email is already registered")
			return
		}
		h.Log.Error("user create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	h.AuditLog.Register(r.Context(), r, user.ID, user.Email)
	h.Log.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role))

	httpjson.Write(w, http.StatusCreated, viewOf(user))
}
