package stacktrace

import (
	"go.uber.org/atomic"
)

const (
	// DefaultStackRemovalFrames is the number of inner frames dropped
	// after devlog's own frames have been filtered.
	DefaultStackRemovalFrames = 0
	// DefaultStackStartFrames is the number of outer frames dropped;
	// one hides runtime.goexit.
	DefaultStackStartFrames = 1
)

// Settings holds the two trim counts used by Capture. It is safe for
// concurrent use.
type Settings struct {
	removal atomic.Int64
	start   atomic.Int64
}

// NewSettings returns Settings with the given counts. Negative counts
// are stored as their magnitude.
func NewSettings(removal, start int) *Settings {
	s := &Settings{}
	s.SetRemovalFrames(removal)
	s.SetStartFrames(start)
	return s
}

// RemovalFrames returns the number of inner frames dropped.
func (s *Settings) RemovalFrames() int {
	return int(s.removal.Load())
}

// StartFrames returns the number of outer frames dropped.
func (s *Settings) StartFrames() int {
	return int(s.start.Load())
}

// SetRemovalFrames stores |n| as the removal count.
func (s *Settings) SetRemovalFrames(n int) {
	s.removal.Store(int64(abs(n)))
}

// SetStartFrames stores |n| as the start count.
func (s *Settings) SetStartFrames(n int) {
	s.start.Store(int64(abs(n)))
}

// Reset restores the default counts.
func (s *Settings) Reset() {
	s.SetRemovalFrames(DefaultStackRemovalFrames)
	s.SetStartFrames(DefaultStackStartFrames)
}

// Capture renders the caller's stack using the current counts.
func (s *Settings) Capture() []string {
	return render(collect(s.RemovalFrames(), s.StartFrames()))
}

var global = NewSettings(DefaultStackRemovalFrames, DefaultStackStartFrames)

// Default returns the process-wide Settings.
func Default() *Settings {
	return global
}

// SetStackRemovalFrames sets the process-wide removal count to |n|.
func SetStackRemovalFrames(n int) {
	global.SetRemovalFrames(n)
}

// SetStackStartFrames sets the process-wide start count to |n|.
func SetStackStartFrames(n int) {
	global.SetStartFrames(n)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
