// Package presence counts the viewers currently looking at the service.
// Each viewer owns one heartbeat row in the shared store.
package presence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/event"
	"github.com/yumbiru/yumvalues/internal/logger"
	"github.com/yumbiru/yumvalues/internal/repository"
)

// Config holds the presence timing windows
type Config struct {
	HeartbeatInterval time.Duration
	CountInterval     time.Duration
	ActiveWindow      time.Duration
	StaleAfter        time.Duration
}

// DefaultConfig returns the standard timing: heartbeat 10s, count 15s,
// active within 15s, stale after 20s
func DefaultConfig() Config {
	return Config{
		HeartbeatInterval: domain.PresenceHeartbeatSeconds * time.Second,
		CountInterval:     domain.PresenceActiveSeconds * time.Second,
		ActiveWindow:      domain.PresenceActiveSeconds * time.Second,
		StaleAfter:        domain.PresenceStaleSeconds * time.Second,
	}
}

// Tracker manages viewer rows and publishes count changes
type Tracker struct {
	repo repository.Presence
	bus  event.Bus
	cfg  Config
	now  func() time.Time

	mu    sync.Mutex
	count int
}

// NewTracker creates a tracker. bus may be nil.
func NewTracker(repo repository.Presence, bus event.Bus, cfg Config) *Tracker {
	def := DefaultConfig()
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = def.HeartbeatInterval
	}
	if cfg.CountInterval <= 0 {
		cfg.CountInterval = def.CountInterval
	}
	if cfg.ActiveWindow <= 0 {
		cfg.ActiveWindow = def.ActiveWindow
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = def.StaleAfter
	}
	return &Tracker{repo: repo, bus: bus, cfg: cfg, now: time.Now}
}

// Config returns the effective timing windows
func (t *Tracker) Config() Config {
	return t.cfg
}

// Join registers a new viewer, prunes stale rows and returns the viewer id
func (t *Tracker) Join(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	id := uuid.NewString()
	if err := t.repo.InsertViewer(ctx, id, t.now()); err != nil {
		return "", fmt.Errorf("%w: "+ErrMsgInsertViewerFmt, domain.ErrPersistence, err)
	}
	if _, err := t.Prune(ctx); err != nil {
		log.Warn(LogMsgPruneFailed, "error", err)
	}

	log.Debug(LogMsgViewerJoined, "viewer_id", id)
	return id, nil
}

// Heartbeat refreshes a viewer's last-seen time. A row pruned in the
// meantime is re-inserted.
func (t *Tracker) Heartbeat(ctx context.Context, id string) error {
	now := t.now()
	err := t.repo.TouchViewer(ctx, id, now)
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		if err := t.repo.InsertViewer(ctx, id, now); err != nil {
			return fmt.Errorf("%w: "+ErrMsgInsertViewerFmt, domain.ErrPersistence, err)
		}
		return nil
	}
	return fmt.Errorf("%w: "+ErrMsgHeartbeatFmt, domain.ErrPersistence, err)
}

// Leave deletes the viewer's own row
func (t *Tracker) Leave(ctx context.Context, id string) error {
	if err := t.repo.DeleteViewer(ctx, id); err != nil {
		return fmt.Errorf("%w: "+ErrMsgDeleteViewerFmt, domain.ErrPersistence, err)
	}
	logger.FromContext(ctx).Debug(LogMsgViewerLeft, "viewer_id", id)
	return nil
}

// Count returns the number of viewers seen within the active window
func (t *Tracker) Count(ctx context.Context) (int, error) {
	n, err := t.repo.CountViewersSince(ctx, t.now().Add(-t.cfg.ActiveWindow))
	if err != nil {
		return 0, fmt.Errorf("%w: "+ErrMsgCountFmt, domain.ErrPersistence, err)
	}
	return n, nil
}

// Prune deletes rows not seen for longer than StaleAfter
func (t *Tracker) Prune(ctx context.Context) (int64, error) {
	n, err := t.repo.DeleteViewersBefore(ctx, t.now().Add(-t.cfg.StaleAfter))
	if err != nil {
		return 0, fmt.Errorf("%w: "+ErrMsgPruneFmt, domain.ErrPersistence, err)
	}
	return n, nil
}

// Refresh recounts and publishes presence.count_changed when the count moved
func (t *Tracker) Refresh(ctx context.Context) (int, error) {
	n, err := t.Count(ctx)
	if err != nil {
		return 0, err
	}

	t.mu.Lock()
	previous := t.count
	t.count = n
	t.mu.Unlock()

	if n != previous && t.bus != nil {
		if err := t.bus.Publish(ctx, event.NewPresenceChangedEvent(n, previous)); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return n, nil
}

// LastCount returns the most recent count without touching the store
func (t *Tracker) LastCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}
