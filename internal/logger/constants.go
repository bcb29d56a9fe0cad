package logger

// ContextKeyRequestID keys the request id stored by WithRequestID
const ContextKeyRequestID = "request_id"

// Level names accepted by Config.LogLevel
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Format names accepted by Config.IsJSON
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
