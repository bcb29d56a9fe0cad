package session

import "time"

// Registry defaults
const (
	DefaultCacheSize = 1000
	DefaultTTL       = 24 * time.Hour
)

// Error messages
const (
	ErrMsgIdentityRequired = "identity is required"
	ErrMsgIdentityMismatch = "session belongs to another identity"
	ErrMsgUnknownActionFmt = "unknown action %q"
	ErrMsgUnknownItemFmt   = "%s"
	ErrMsgInvalidFilterFmt = "unknown filter %q"
)

// Log messages
const (
	LogMsgSessionCreated  = "Session created"
	LogMsgSessionResumed  = "Session resumed"
	LogMsgSessionClaimed  = "Session resume rejected: identity mismatch"
	LogMsgSessionEvicted  = "Session evicted"
	LogMsgActionApplied   = "Action applied"
	LogMsgActionFailed    = "Action failed"
	LogMsgPendingListFail = "Failed to load pending trades for view"
)
