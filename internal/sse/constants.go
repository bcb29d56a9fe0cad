package sse

import (
	"time"

	"github.com/yumbiru/yumvalues/internal/domain"
)

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE. Trade and presence types reuse the domain event names
// so clients can filter with the same strings.
const (
	EventTypeTradeProposed = string(domain.EventTypeTradeProposed)
	EventTypeTradeAccepted = string(domain.EventTypeTradeAccepted)
	EventTypeTradeDeclined = string(domain.EventTypeTradeDeclined)
	EventTypeViewerCount   = string(domain.EventTypePresenceChanged)

	// EventTypeConnected is the first message on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgInvalidPayload     = "Invalid event payload for SSE"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
)
