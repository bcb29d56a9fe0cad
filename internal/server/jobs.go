package server

import (
	"context"

	"github.com/yumbiru/yumvalues/internal/logger"
)

// SweepJob forgets expired per-IP windows
type SweepJob struct {
	Detector *SuspiciousActivityDetector
}

// Name implements worker.Named
func (j SweepJob) Name() string { return "security_sweep" }

// Process implements worker.Job
func (j SweepJob) Process(ctx context.Context) error {
	if n := j.Detector.Sweep(); n > 0 {
		logger.FromContext(ctx).Debug(LogMsgWindowsSwept, "removed", n)
	}
	return nil
}
