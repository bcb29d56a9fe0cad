package bootstrap

import (
	"context"
	"log/slog"

	"github.com/yumbiru/yumvalues/internal/discord"
	"github.com/yumbiru/yumvalues/internal/scheduler"
	"github.com/yumbiru/yumvalues/internal/server"
	"github.com/yumbiru/yumvalues/internal/sse"
	"github.com/yumbiru/yumvalues/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Workers   *worker.Pool
	Hub       *sse.Hub
	Notifier  *discord.Notifier
	Stores    *Stores
	// StopWatchers cancels background listeners such as the presence feed
	StopWatchers context.CancelFunc
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Timers, listeners and workers (no new background work)
// 3. SSE hub and notifier
// 4. Databases
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.StopWatchers != nil {
		c.StopWatchers()
	}
	if c.Workers != nil {
		c.Workers.Stop()
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}
	if c.Notifier != nil {
		if err := c.Notifier.Close(); err != nil {
			slog.Error(LogMsgNotifierCloseFailed, "error", err)
		}
	}

	if c.Stores != nil {
		c.Stores.Close()
	}

	slog.Info(LogMsgServerStopped)
}
