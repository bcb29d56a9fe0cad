package discord

// Embed colors
const (
	ColorProposed = 0x3498db // Blue
	ColorAccepted = 0x2ecc71 // Green
	ColorDeclined = 0xe74c3c // Red
)

// Embed text
const (
	TitleTradeProposed = "New trade proposal"
	TitleTradeAccepted = "Trade accepted"
	TitleTradeDeclined = "Trade declined"
	EmptySideText      = "nothing"
)

// Log messages
const (
	LogMsgNotifierEnabled  = "Discord trade notifier enabled"
	LogMsgNotifierDisabled = "Discord trade notifier disabled: no token or channel configured"
	LogMsgInvalidPayload   = "Invalid trade event payload for Discord"
	LogMsgSendFailed       = "Failed to post trade notice to Discord"
)
