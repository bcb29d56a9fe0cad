package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Metadata keys
const (
	MetadataKeyTradeID = "trade_id"
)

// LogMsgHandlerErrorFormat formats joined handler errors
const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
