// Package pricing - Price table ownership.
// The Service is the single writer of the active table; estimations are
// lock-free readers of whatever snapshot is current.
package pricing

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"archcost/internal/logging"
)

// Service owns the active price table. Refreshes build a fully merged table
// off to the side and publish it with one atomic pointer swap, so a reader
// can never observe a half-updated category.
type Service struct {
	mu      sync.Mutex // serializes writers
	current atomic.Pointer[Table]
}

// NewService creates a service seeded with the compiled-in defaults
func NewService() *Service {
	s := &Service{}
	s.current.Store(Defaults())
	return s
}

// Current returns the active immutable table
func (s *Service) Current() *Table {
	return s.current.Load()
}

// Apply merges a snapshot onto the active table and publishes the result.
// It returns the newly active table. A nil snapshot is a no-op.
func (s *Service) Apply(snap *Snapshot) *Table {
	if snap == nil {
		return s.Current()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := Merge(s.current.Load(), snap)
	s.current.Store(next)

	logging.Info("price table updated",
		zap.Time("updated_at", next.meta.UpdatedAt),
		zap.Strings("sources", next.meta.Sources),
	)
	return next
}

// ResetToDefaults discards all refreshed data and republishes the baseline
func (s *Service) ResetToDefaults() *Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := Defaults()
	s.current.Store(next)
	return next
}
