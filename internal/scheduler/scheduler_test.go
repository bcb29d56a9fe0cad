package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yumbiru/yumvalues/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	Done chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func (m *MockJob) Name() string { return "mock" }

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduleNow_RunsImmediately(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.ScheduleNow(time.Hour, job)

	select {
	case <-job.Done:
	case <-time.After(time.Second):
		t.Fatal("job did not run immediately")
	}
}
