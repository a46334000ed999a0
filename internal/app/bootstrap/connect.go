// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/datahub/internal/app/store/audit"
	datasetstore "github.com/dalemusser/datahub/internal/app/store/datasets"
	tokenstore "github.com/dalemusser/datahub/internal/app/store/tokens"
	userstore "github.com/dalemusser/datahub/internal/app/store/users"
	workspacestore "github.com/dalemusser/datahub/internal/app/store/workspaces"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB builds the backend dependencies.
//
// The in-memory stores are always created. MongoDB is dialed only when an
// audit category is configured to persist ("all" or "db"); otherwise the
// service runs with no external dependencies at all.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	wsStore := workspacestore.New()
	deps := DBDeps{
		Users:      userstore.New(),
		Tokens:     tokenstore.New(appCfg.TokenTTL),
		Workspaces: wsStore,
		Datasets:   datasetstore.New(wsStore),
	}

	if !appCfg.wantsAuditDB() {
		logger.Info("audit trail persistence disabled; skipping MongoDB")
		return deps, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect audit MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("ping audit MongoDB: %w", err)
	}

	deps.AuditMongoClient = client
	deps.AuditStore = audit.New(client.Database(appCfg.MongoDatabase))

	logger.Info("connected to audit MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return deps, nil
}
