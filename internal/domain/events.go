package domain

// EventType names an application event
type EventType string

const (
	EventTypeTradeProposed   EventType = "trade.proposed"
	EventTypeTradeAccepted   EventType = "trade.accepted"
	EventTypeTradeDeclined   EventType = "trade.declined"
	EventTypePresenceChanged EventType = "presence.count_changed"
)
