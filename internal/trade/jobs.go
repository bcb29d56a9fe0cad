package trade

import "context"

// PendingRefreshJob reloads the pending-trade cache. Scheduled every
// pending TTL so readers rarely hit the store.
type PendingRefreshJob struct {
	Service Service
}

// Name implements worker.Named
func (j PendingRefreshJob) Name() string { return "pending_trade_refresh" }

// Process implements worker.Job
func (j PendingRefreshJob) Process(ctx context.Context) error {
	_, err := j.Service.RefreshPending(ctx)
	return err
}
