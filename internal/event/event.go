package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yumbiru/yumvalues/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from map metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Application event types
const (
	TradeProposed   = Type(domain.EventTypeTradeProposed)
	TradeAccepted   = Type(domain.EventTypeTradeAccepted)
	TradeDeclined   = Type(domain.EventTypeTradeDeclined)
	PresenceChanged = Type(domain.EventTypePresenceChanged)
)

// TradePayloadV1 is the typed payload for trade lifecycle events
type TradePayloadV1 struct {
	TradeID           string                     `json:"trade_id"`
	Status            domain.TradeStatus         `json:"status"`
	CreatedBy         string                     `json:"created_by"`
	TargetDisplayName string                     `json:"target_display_name"`
	LeftItems         []domain.QuantitySelection `json:"left_items"`
	RightItems        []domain.QuantitySelection `json:"right_items"`
	LeftValue         int64                      `json:"left_value"`
	RightValue        int64                      `json:"right_value"`
	Timestamp         int64                      `json:"timestamp"`
}

// PresencePayloadV1 is the typed payload for viewer count changes
type PresencePayloadV1 struct {
	Count     int   `json:"count"`
	Previous  int   `json:"previous"`
	Timestamp int64 `json:"timestamp"`
}

// NewTradeEvent creates a trade lifecycle event. The event type follows the
// request status: pending → proposed, accepted, declined.
func NewTradeEvent(req domain.TradeRequest, leftValue, rightValue int64) Event {
	typ := TradeProposed
	switch req.Status {
	case domain.TradeStatusAccepted:
		typ = TradeAccepted
	case domain.TradeStatusDeclined:
		typ = TradeDeclined
	}

	return Event{
		Version: EventSchemaVersion,
		Type:    typ,
		Payload: TradePayloadV1{
			TradeID:           req.ID,
			Status:            req.Status,
			CreatedBy:         req.CreatedBy,
			TargetDisplayName: req.TargetDisplayName,
			LeftItems:         req.LeftItems,
			RightItems:        req.RightItems,
			LeftValue:         leftValue,
			RightValue:        rightValue,
			Timestamp:         time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeyTradeID: req.ID,
		},
	}
}

// NewPresenceChangedEvent creates a viewer count change event
func NewPresenceChangedEvent(count, previous int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PresenceChanged,
		Payload: PresencePayloadV1{
			Count:     count,
			Previous:  previous,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
