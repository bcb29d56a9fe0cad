package config

import "time"

const (
	// Configuration file paths
	ConfigPathCatalog       = "configs/catalog/items.json"
	ConfigPathCatalogSchema = "configs/schemas/catalog.schema.json"
	ConfigPathLocalDB       = "data/local.db"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "yumvalues"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultSessionCacheSize = 1000
	DefaultSessionTTL       = 24 * time.Hour
	DefaultPendingCacheTTL  = 15 * time.Second

	DefaultPresenceHeartbeatInterval = 10 * time.Second
	DefaultPresenceCountInterval     = 15 * time.Second
	DefaultPresenceStaleAfter        = 20 * time.Second
	DefaultPresenceActiveWindow      = 15 * time.Second

	DefaultWorkerCount     = 2
	DefaultWorkerQueueSize = 32
)
