// Package ingestion - Daily refresh scheduler
package ingestion

import (
	"context"
	"time"

	"go.uber.org/zap"

	"archcost/internal/logging"
)

// Scheduler runs the refresh pipeline once a day at a fixed UTC time
type Scheduler struct {
	pipeline *Pipeline
	hour     int
	minute   int
}

// NewScheduler creates a scheduler firing daily at hour:minute UTC
func NewScheduler(pipeline *Pipeline, hour, minute int) *Scheduler {
	return &Scheduler{pipeline: pipeline, hour: hour, minute: minute}
}

// Start blocks until ctx is cancelled, running the pipeline at each tick.
// Run it in its own goroutine. A failed run is logged by the pipeline and
// retried at the next tick; there is no backoff since ticks are daily.
func (s *Scheduler) Start(ctx context.Context) {
	logging.Info("refresh scheduler started",
		zap.Int("hour", s.hour),
		zap.Int("minute", s.minute),
	)

	for {
		wait := s.untilNextRun(time.Now().UTC())
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			logging.Info("refresh scheduler stopped")
			return
		case <-timer.C:
			_ = s.pipeline.Run(ctx)
		}
	}
}

// untilNextRun computes the delay to the next hour:minute boundary
func (s *Scheduler) untilNextRun(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, s.minute, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next.Sub(now)
}
