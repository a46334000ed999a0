// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, and request limits. AppConfig is
// where everything specific to this service lives.
type AppConfig struct {
	// TokenTTL is how long an issued access token stays valid.
	TokenTTL time.Duration

	// Audit trail persistence. The core state is in memory; MongoDB is
	// only used as an optional sink for audit events.
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name for audit events

	// Audit logging modes per category: "all" (db+log), "db", "log", "off".
	AuditLogAuth    string
	AuditLogCatalog string
}

// wantsAuditDB reports whether any audit category needs the MongoDB sink.
func (c AppConfig) wantsAuditDB() bool {
	for _, mode := range []string{c.AuditLogAuth, c.AuditLogCatalog} {
		if mode == "all" || mode == "db" {
			return true
		}
	}
	return false
}
