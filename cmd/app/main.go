package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yumbiru/yumvalues/internal/bootstrap"
	"github.com/yumbiru/yumvalues/internal/config"
	"github.com/yumbiru/yumvalues/internal/discord"
	"github.com/yumbiru/yumvalues/internal/handler"
	"github.com/yumbiru/yumvalues/internal/presence"
	"github.com/yumbiru/yumvalues/internal/scheduler"
	"github.com/yumbiru/yumvalues/internal/server"
	"github.com/yumbiru/yumvalues/internal/session"
	"github.com/yumbiru/yumvalues/internal/sse"
	"github.com/yumbiru/yumvalues/internal/trade"
	"github.com/yumbiru/yumvalues/internal/worker"
)

const (
	shutdownTimeout    = 15 * time.Second
	listenerRetryDelay = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration rejected", "error", err)
		os.Exit(1)
	}
	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Application exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()
	handler.InitValidator()

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	stores, err := bootstrap.InitializeStores(ctx, cfg)
	if err != nil {
		return err
	}

	hub := sse.NewHub()
	hub.Start()

	notifier, err := discord.New(discord.Config{Token: cfg.DiscordToken, ChannelID: cfg.DiscordNotifyChannelID}, cat)
	if err != nil {
		slog.Warn("Discord notifier disabled", "error", err)
		notifier = nil
	}

	bus, err := bootstrap.InitializeEventSystem(bootstrap.EventHandlerDependencies{Hub: hub, Notifier: notifier})
	if err != nil {
		hub.Stop()
		stores.Close()
		return err
	}

	trades := trade.NewService(stores.Trades, cat, bus, cfg.PendingCacheTTL)
	sessions := session.NewStore(session.Config{CacheSize: cfg.SessionCacheSize, TTL: cfg.SessionTTL}, cat, trades, stores.Blobs)
	tracker := presence.NewTracker(stores.Presence, bus, presence.Config{
		HeartbeatInterval: cfg.PresenceHeartbeatInterval,
		CountInterval:     cfg.PresenceCountInterval,
		ActiveWindow:      cfg.PresenceActiveWindow,
		StaleAfter:        cfg.PresenceStaleAfter,
	})

	workers := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	workers.Start()

	sched := scheduler.New(workers)
	sched.ScheduleNow(cfg.PresenceCountInterval, presence.RefreshJob{Tracker: tracker})
	sched.Schedule(cfg.PendingCacheTTL, trade.PendingRefreshJob{Service: trades})

	detector := server.NewSuspiciousActivityDetector()
	sched.Schedule(server.RateLimitWindow, server.SweepJob{Detector: detector})

	watchCtx, stopWatchers := context.WithCancel(ctx)
	go tracker.WatchChanges(watchCtx, stores.Viewers, listenerRetryDelay)

	srv := server.NewServer(server.Deps{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		DBPool:         stores.Pool,
		Catalog:        cat,
		Sessions:       sessions,
		Trades:         trades,
		Presence:       tracker,
		Hub:            hub,
		Detector:       detector,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err, ok := <-serverErr:
		if ok {
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:       srv,
		Scheduler:    sched,
		Workers:      workers,
		Hub:          hub,
		Notifier:     notifier,
		Stores:       stores,
		StopWatchers: stopWatchers,
	})
	return runErr
}
