package metrics

import (
	"context"

	"github.com/yumbiru/yumvalues/internal/event"
	"github.com/yumbiru/yumvalues/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range []event.Type{
		event.TradeProposed,
		event.TradeAccepted,
		event.TradeDeclined,
		event.PresenceChanged,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.TradeAccepted, event.TradeDeclined:
		payload, err := event.DecodePayload[event.TradePayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		TradeValueTotal.WithLabelValues("left").Add(float64(payload.LeftValue))
		TradeValueTotal.WithLabelValues("right").Add(float64(payload.RightValue))

	case event.PresenceChanged:
		payload, err := event.DecodePayload[event.PresencePayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ActiveViewers.Set(float64(payload.Count))
	}

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
