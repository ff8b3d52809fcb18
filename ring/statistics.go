// File: ring/statistics.go
//
// Always-on operation statistics. Counters are atomic so readers may sample
// from other goroutines even though the ring itself is single-threaded.

package ring

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks ring operation counts.
type Statistics struct {
	writes    atomic.Int64
	reads     atomic.Int64
	overflows atomic.Int64
	drops     atomic.Int64

	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{startTime: time.Now()}
}

// Write records a push or emplace operation.
func (s *Statistics) Write() { s.writes.Add(1) }

// Read records a pop operation.
func (s *Statistics) Read() { s.reads.Add(1) }

// Overflow records a push that landed on a full ring.
func (s *Statistics) Overflow() { s.overflows.Add(1) }

// Drop records an element evicted by overflow.
func (s *Statistics) Drop() { s.drops.Add(1) }

// UpdateSize records the current element count.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// Writes returns the total number of push/emplace operations.
func (s *Statistics) Writes() int64 { return s.writes.Load() }

// Reads returns the total number of pop operations.
func (s *Statistics) Reads() int64 { return s.reads.Load() }

// Overflows returns the total number of overflow events.
func (s *Statistics) Overflows() int64 { return s.overflows.Load() }

// Drops returns the total number of evicted elements.
func (s *Statistics) Drops() int64 { return s.drops.Load() }

// CurrentSize returns the last recorded element count.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the highest element count the ring has held.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// DropRate returns the fraction of writes that evicted an element.
func (s *Statistics) DropRate() float64 {
	writes := s.Writes()
	if writes == 0 {
		return 0.0
	}
	return float64(s.Drops()) / float64(writes)
}

// OverflowRate returns the fraction of writes that landed on a full ring.
func (s *Statistics) OverflowRate() float64 {
	writes := s.Writes()
	if writes == 0 {
		return 0.0
	}
	return float64(s.Overflows()) / float64(writes)
}

// Utilization returns the current fill level relative to capacity (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}
	return float64(s.CurrentSize()) / float64(capacity)
}

// Uptime returns how long the ring has existed.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset zeroes every counter and restarts the clock.
func (s *Statistics) Reset() {
	s.writes.Store(0)
	s.reads.Store(0)
	s.overflows.Store(0)
	s.drops.Store(0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.maxSize = 0
	s.mu.Unlock()
}

// StatsSummary is a point-in-time snapshot of all statistics.
type StatsSummary struct {
	Writes       int64         `json:"writes"`
	Reads        int64         `json:"reads"`
	Overflows    int64         `json:"overflows"`
	Drops        int64         `json:"drops"`
	CurrentSize  int64         `json:"current_size"`
	MaxSize      int64         `json:"max_size"`
	DropRate     float64       `json:"drop_rate"`
	OverflowRate float64       `json:"overflow_rate"`
	Uptime       time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Writes:       s.Writes(),
		Reads:        s.Reads(),
		Overflows:    s.Overflows(),
		Drops:        s.Drops(),
		CurrentSize:  s.CurrentSize(),
		MaxSize:      s.MaxSize(),
		DropRate:     s.DropRate(),
		OverflowRate: s.OverflowRate(),
		Uptime:       s.Uptime(),
	}
}
