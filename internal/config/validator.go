package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig wraps every problem reported by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Placeholder values shipped in the example .env
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Validate checks the settings the server cannot run with. Load does not
// call it so tooling can still read a partial environment.
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT %d is out of range", c.Port))
	}
	if c.SessionCacheSize < 1 {
		problems = append(problems, "SESSION_CACHE_SIZE must be positive")
	}
	if c.WorkerCount < 1 || c.WorkerQueueSize < 1 {
		problems = append(problems, "WORKER_COUNT and WORKER_QUEUE_SIZE must be positive")
	}
	if c.PendingCacheTTL <= 0 || c.PresenceCountInterval <= 0 {
		problems = append(problems, "PENDING_CACHE_TTL and PRESENCE_COUNT_INTERVAL must be positive")
	}
	// a viewer must heartbeat inside the active window, and only rows
	// outside it may be pruned
	if c.PresenceHeartbeatInterval <= 0 || c.PresenceHeartbeatInterval >= c.PresenceActiveWindow {
		problems = append(problems, "PRESENCE_HEARTBEAT_INTERVAL must be positive and shorter than PRESENCE_ACTIVE_WINDOW")
	}
	if c.PresenceStaleAfter < c.PresenceActiveWindow {
		problems = append(problems, "PRESENCE_STALE_AFTER must not be shorter than PRESENCE_ACTIVE_WINDOW")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Warnings lists settings that work but are probably a mistake
func (c *Config) Warnings() []string {
	var warnings []string
	if c.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if (c.DiscordToken == "") != (c.DiscordNotifyChannelID == "") {
		warnings = append(warnings, "DISCORD_TOKEN and DISCORD_NOTIFY_CHANNEL_ID must both be set for trade notifications")
	}
	return warnings
}
