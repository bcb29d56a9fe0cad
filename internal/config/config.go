package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// LocalDBPath is the SQLite file holding per-session ledgers
	LocalDBPath       string
	CatalogPath       string
	CatalogSchemaPath string

	SessionCacheSize int
	SessionTTL       time.Duration
	PendingCacheTTL  time.Duration

	PresenceHeartbeatInterval time.Duration
	PresenceCountInterval     time.Duration
	PresenceStaleAfter        time.Duration
	PresenceActiveWindow      time.Duration

	TrustedProxies []string

	DiscordToken           string
	DiscordNotifyChannelID string

	WorkerCount     int
	WorkerQueueSize int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg, err := LoadForTooling()
	if err != nil {
		return nil, err
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}
	return cfg, nil
}

// LoadForTooling loads the same configuration without requiring API_KEY.
// Command line tools that never serve HTTP use it.
func LoadForTooling() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "yumvalues"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		LocalDBPath:       getEnv("LOCAL_DB_PATH", ConfigPathLocalDB),
		CatalogPath:       getEnv("CATALOG_PATH", ConfigPathCatalog),
		CatalogSchemaPath: getEnv("CATALOG_SCHEMA_PATH", ConfigPathCatalogSchema),

		SessionCacheSize: getEnvAsInt("SESSION_CACHE_SIZE", DefaultSessionCacheSize),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
		PendingCacheTTL:  getEnvAsDuration("PENDING_CACHE_TTL", DefaultPendingCacheTTL),

		PresenceHeartbeatInterval: getEnvAsDuration("PRESENCE_HEARTBEAT_INTERVAL", DefaultPresenceHeartbeatInterval),
		PresenceCountInterval:     getEnvAsDuration("PRESENCE_COUNT_INTERVAL", DefaultPresenceCountInterval),
		PresenceStaleAfter:        getEnvAsDuration("PRESENCE_STALE_AFTER", DefaultPresenceStaleAfter),
		PresenceActiveWindow:      getEnvAsDuration("PRESENCE_ACTIVE_WINDOW", DefaultPresenceActiveWindow),

		TrustedProxies: getEnvAsSlice("TRUSTED_PROXIES"),

		DiscordToken:           getEnv("DISCORD_TOKEN", ""),
		DiscordNotifyChannelID: getEnv("DISCORD_NOTIFY_CHANNEL_ID", ""),

		WorkerCount:     getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsSlice splits a comma separated list, dropping blanks
func getEnvAsSlice(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL URL. Credentials are escaped, so
// passwords may contain URL metacharacters.
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
