package handler

import (
	"go.uber.org/atomic"

	"github.com/philipp01105/devlog/core"
)

// Stats counts processed and failed entries per level. Writers that
// report an error increment the failed counter for the entry's level.
type Stats struct {
	processed [core.PanicLevel + 1]atomic.Uint64
	failed    [core.PanicLevel + 1]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// Record counts one entry at level as processed when err is nil and as
// failed otherwise.
func (s *Stats) Record(level core.Level, err error) {
	if !level.Valid() {
		return
	}
	if err != nil {
		s.failed[level].Inc()
		return
	}
	s.processed[level].Inc()
}

// Processed returns the processed count for a level
func (s *Stats) Processed(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.processed[level].Load()
}

// Failed returns the failed count for a level
func (s *Stats) Failed(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.failed[level].Load()
}

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	Processed      map[core.Level]uint64
	Failed         map[core.Level]uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed: make(map[core.Level]uint64),
		Failed:    make(map[core.Level]uint64),
	}
	for l := core.DebugLevel; l <= core.PanicLevel; l++ {
		p, f := s.processed[l].Load(), s.failed[l].Load()
		snap.Processed[l] = p
		snap.Failed[l] = f
		snap.ProcessedTotal += p
		snap.FailedTotal += f
	}
	return snap
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for l := core.DebugLevel; l <= core.PanicLevel; l++ {
		s.processed[l].Store(0)
		s.failed[l].Store(0)
	}
}

// StatsProvider is implemented by handlers that expose Stats.
type StatsProvider interface {
	Stats() Snapshot
}
