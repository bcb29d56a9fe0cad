package sse

import (
	"context"
	"log/slog"

	"github.com/yumbiru/yumvalues/internal/event"
	"github.com/yumbiru/yumvalues/internal/valuation"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for trade and presence events
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.TradeProposed, s.handleTrade)
	s.bus.Subscribe(event.TradeAccepted, s.handleTrade)
	s.bus.Subscribe(event.TradeDeclined, s.handleTrade)
	s.bus.Subscribe(event.PresenceChanged, s.handlePresence)

	slog.Info(LogMsgSubscribed,
		"types", []string{
			string(event.TradeProposed),
			string(event.TradeAccepted),
			string(event.TradeDeclined),
			string(event.PresenceChanged),
		})
}

func (s *Subscriber) handleTrade(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.TradePayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), TradePayload{
		TradeID:           p.TradeID,
		Status:            p.Status,
		CreatedBy:         p.CreatedBy,
		TargetDisplayName: p.TargetDisplayName,
		LeftItems:         p.LeftItems,
		RightItems:        p.RightItems,
		LeftValue:         valuation.FormatPrecise(p.LeftValue),
		RightValue:        valuation.FormatPrecise(p.RightValue),
	})

	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "trade_id", p.TradeID)
	return nil
}

func (s *Subscriber) handlePresence(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.PresencePayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeViewerCount, ViewerCountPayload{Count: p.Count, Previous: p.Previous})
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "count", p.Count)
	return nil
}
