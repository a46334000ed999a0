// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authfeature "github.com/dalemusser/datahub/internal/app/features/auth"
	datasetsfeature "github.com/dalemusser/datahub/internal/app/features/datasets"
	healthfeature "github.com/dalemusser/datahub/internal/app/features/health"
	workspacesfeature "github.com/dalemusser/datahub/internal/app/features/workspaces"
	sysauth "github.com/dalemusser/datahub/internal/app/system/auth"
	"github.com/dalemusser/datahub/internal/app/system/auditlog"
	"github.com/dalemusser/datahub/internal/app/system/password"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The API surface lives under /api/v1;
// /health stays at the root for load balancers and orchestrators.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	audit := auditlog.New(deps.AuditStore, logger, auditlog.Config{
		Auth:    appCfg.AuditLogAuth,
		Catalog: appCfg.AuditLogCatalog,
	})

	verifier := &sysauth.Verifier{
		Tokens: deps.Tokens,
		Users:  deps.Users,
		Log:    logger,
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.AuditMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api/v1", func(r chi.Router) {
		// Authentication
		authHandler := authfeature.NewHandler(deps.Users, deps.Tokens, password.New(), audit, logger)
		r.Mount("/auth", authfeature.Routes(authHandler, verifier))

		// Workspace catalog
		wsHandler := workspacesfeature.NewHandler(deps.Workspaces, deps.Datasets, audit, logger)
		r.Mount("/workspaces", workspacesfeature.Routes(wsHandler, verifier))

		// Datasets within a workspace
		dsHandler := datasetsfeature.NewHandler(deps.Workspaces, deps.Datasets, audit, logger)
		r.Mount("/workspaces/{id}/datasets", datasetsfeature.Routes(dsHandler, verifier))
	})

	return r, nil
}
