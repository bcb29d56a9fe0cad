package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/yumbiru/yumvalues/internal/logger"
	"github.com/yumbiru/yumvalues/internal/worker"
)

// Scheduler enqueues jobs on the worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. A tick that finds the
// pool queue full is skipped rather than queued behind the previous run.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.TryEnqueue(job) {
					logger.FromContext(context.Background()).Warn(LogMsgTickSkipped, "job", jobName(job))
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// ScheduleNow enqueues job once immediately, then at every interval
func (s *Scheduler) ScheduleNow(interval time.Duration, job worker.Job) {
	s.workerPool.TryEnqueue(job)
	s.Schedule(interval, job)
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}

func jobName(job worker.Job) string {
	if n, ok := job.(worker.Named); ok {
		return n.Name()
	}
	return "anonymous"
}

// LogMsgTickSkipped is logged when the pool queue is full at tick time
const LogMsgTickSkipped = "Scheduler tick skipped, worker queue full"
