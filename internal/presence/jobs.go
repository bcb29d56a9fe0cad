package presence

import (
	"context"
	"time"

	"github.com/yumbiru/yumvalues/internal/logger"
	"github.com/yumbiru/yumvalues/internal/repository"
)

// RefreshJob prunes stale rows and recounts. Scheduled every CountInterval.
type RefreshJob struct {
	Tracker *Tracker
}

// Name implements worker.Named
func (j RefreshJob) Name() string { return "presence_refresh" }

// Process implements worker.Job
func (j RefreshJob) Process(ctx context.Context) error {
	if _, err := j.Tracker.Prune(ctx); err != nil {
		return err
	}
	n, err := j.Tracker.Refresh(ctx)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgCountRefreshed, "count", n)
	return nil
}

// WatchChanges recounts on every remote change notification until ctx is done.
// A failed subscription is retried after retryDelay.
func (t *Tracker) WatchChanges(ctx context.Context, feed repository.ChangeFeed, retryDelay time.Duration) {
	log := logger.FromContext(ctx)
	for {
		err := feed.Listen(ctx, func(string) {
			if _, err := t.Refresh(ctx); err != nil {
				log.Warn(LogMsgPublishFailed, "error", err)
			}
		})
		if ctx.Err() != nil {
			log.Info(LogMsgListenerStopped)
			return
		}
		log.Warn(LogMsgListenerRetrying, "error", err, "retry_in", retryDelay)

		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			log.Info(LogMsgListenerStopped)
			return
		}
	}
}
