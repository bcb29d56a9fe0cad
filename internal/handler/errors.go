package handler

// Client-facing error messages. None of them carry internal error detail.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidFilter         = "Unknown filter"

	// Session error messages
	ErrMsgMissingSessionHeader = "Missing X-Session-ID header"
	ErrMsgOpenSessionFailed    = "Failed to open session"
	ErrMsgGetSessionFailed     = "Failed to load session"
	ErrMsgActionFailed         = "Failed to apply action"

	// Trade error messages
	ErrMsgListPendingFailed = "Failed to load pending trades"

	// Presence error messages
	ErrMsgCountViewersFailed = "Failed to count viewers"
	ErrMsgJoinFailed         = "Failed to join viewers"
)

// Header names
const (
	HeaderSessionID = "X-Session-ID"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request body"
	LogMsgValidationFailed  = "Request failed validation"
	LogMsgSessionOpened     = "Session opened"
	LogMsgActionDispatched  = "Session action dispatched"
	LogMsgSessionClosed     = "Session closed"
	LogMsgViewerSocketOpen  = "Viewer socket opened"
	LogMsgViewerSocketClose = "Viewer socket closed"
	LogMsgUpgradeFailed     = "WebSocket upgrade failed"
	LogMsgHeartbeatFailed   = "Viewer heartbeat failed"
	LogMsgLeaveFailed       = "Failed to remove viewer row"
	LogMsgSocketWriteFailed = "Failed to write to viewer socket"
)
