// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for DataHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: token_ttl, audit_log_auth, etc.
//   - Environment variables: DATAHUB_TOKEN_TTL, DATAHUB_AUDIT_LOG_AUTH, etc.
//   - Command-line flags: --token_ttl, --audit_log_auth, etc.
var appConfigKeys = []config.AppKey{
	{Name: "token_ttl", Default: "24h", Desc: "Access token lifetime (e.g., 30m, 24h)"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI for the audit trail"},
	{Name: "mongo_database", Default: "datahub", Desc: "MongoDB database name for audit events"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: "log", Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_catalog", Default: "log", Desc: "Catalog event logging: 'all' (db+log), 'db', 'log', or 'off'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "DATAHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		TokenTTL:        appValues.Duration("token_ttl", 24*time.Hour),
		MongoURI:        appValues.String("mongo_uri"),
		MongoDatabase:   appValues.String("mongo_database"),
		AuditLogAuth:    appValues.String("audit_log_auth"),
		AuditLogCatalog: appValues.String("audit_log_catalog"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI is only validated when an audit category actually
// persists to the database; a purely in-memory deployment never touches it.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive, got %s", appCfg.TokenTTL)
	}

	for name, mode := range map[string]string{
		"audit_log_auth":    appCfg.AuditLogAuth,
		"audit_log_catalog": appCfg.AuditLogCatalog,
	} {
		switch mode {
		case "all", "db", "log", "off":
		default:
			return fmt.Errorf("%s must be one of all, db, log, off; got %q", name, mode)
		}
	}

	if appCfg.wantsAuditDB() {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	}

	return nil
}
