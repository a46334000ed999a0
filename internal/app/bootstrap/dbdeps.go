// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/datahub/internal/app/store/audit"
	datasetstore "github.com/dalemusser/datahub/internal/app/store/datasets"
	tokenstore "github.com/dalemusser/datahub/internal/app/store/tokens"
	userstore "github.com/dalemusser/datahub/internal/app/store/users"
	workspacestore "github.com/dalemusser/datahub/internal/app/store/workspaces"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds backend dependencies for the app.
//
// The catalog and credential state is held in in-memory stores created in
// ConnectDB; the MongoDB client is present only when the audit trail is
// configured to persist events.
type DBDeps struct {
	Users      *userstore.Store
	Tokens     *tokenstore.Store
	Workspaces *workspacestore.Store
	Datasets   *datasetstore.Store

	AuditMongoClient *mongo.Client
	AuditStore       *audit.Store
}
