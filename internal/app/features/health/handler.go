// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/datahub/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client // nil when no audit database is configured
	Log    *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	AuditDB   string    `json:"audit_db,omitempty"`
}

// Serve handles GET /health.
//
// The service itself has no hard external dependencies; the audit database
// is pinged only when one is configured, and a failed ping degrades the
// report without taking the status to error.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	}

	if h.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Warn("health-check: mongo ping failed", zap.Error(err))
			resp.AuditDB = "disconnected"
		} else {
			resp.AuditDB = "connected"
		}
	}

	httpjson.Write(w, http.StatusOK, resp)
}
