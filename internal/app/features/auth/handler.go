// internal/app/features/auth/handler.go
package auth

import (
	"time"

	tokenstore "github.com/dalemusser/datahub/internal/app/store/tokens"
	userstore "github.com/dalemusser/datahub/internal/app/store/users"
	"github.com/dalemusser/datahub/internal/app/system/auditlog"
	"github.com/dalemusser/datahub/internal/app/system/password"
	"github.com/dalemusser/datahub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler provides HTTP handlers for registration, login, and logout.
type Handler struct {
	Users    *userstore.Store
	Tokens   *tokenstore.Store
	Hasher   password.Hasher
	AuditLog *auditlog.Logger
	Log      *zap.Logger
}

// NewHandler creates a new auth Handler.
func NewHandler(userStore *userstore.Store, tokenStore *tokenstore.Store, hasher password.Hasher, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userStore,
		Tokens:   tokenStore,
		Hasher:   hasher,
		AuditLog: audit,
		Log:      logger,
	}
}

// userView is the JSON shape returned for a user record.
type userView struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func viewOf(u models.User) userView {
	return userView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLoginAt,
	}
}
