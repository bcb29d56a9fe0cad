package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/yumbiru/yumvalues/internal/discord"
	"github.com/yumbiru/yumvalues/internal/event"
	"github.com/yumbiru/yumvalues/internal/metrics"
	"github.com/yumbiru/yumvalues/internal/sse"
)

// EventHandlerDependencies holds the subscribers wired onto the bus
type EventHandlerDependencies struct {
	Hub      *sse.Hub
	Notifier *discord.Notifier
}

// InitializeEventSystem creates the event bus and registers every subscriber:
// the metrics collector, the SSE bridge and the Discord notifier.
func InitializeEventSystem(deps EventHandlerDependencies) (event.Bus, error) {
	bus := event.NewMemoryBus()

	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, bus).Subscribe()
	}
	if deps.Notifier != nil {
		deps.Notifier.Subscribe(bus)
	}

	slog.Info(LogMsgEventSystemInitialized)
	return bus, nil
}
