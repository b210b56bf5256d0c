package handler

import (
	"sync"

	"github.com/philipp01105/devlog/core"
)

// MemoryHandler keeps every entry it receives in memory, grouped by
// level. It is meant for tests and for inspecting what a decorated
// function logged.
type MemoryHandler struct {
	mu      sync.Mutex
	entries []core.Entry
}

// NewMemoryHandler creates an empty MemoryHandler.
func NewMemoryHandler() *MemoryHandler {
	return &MemoryHandler{}
}

// Handle stores a copy of the entry.
func (h *MemoryHandler) Handle(entry *core.Entry) error {
	c := entry.Clone()
	h.mu.Lock()
	h.entries = append(h.entries, c)
	h.mu.Unlock()
	return nil
}

// Entries returns a snapshot of all stored entries in arrival order.
func (h *MemoryHandler) Entries() []core.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]core.Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Messages returns the messages stored at the given level in arrival order.
func (h *MemoryHandler) Messages(level core.Level) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []string
	for _, e := range h.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Len returns the number of stored entries.
func (h *MemoryHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Reset drops all stored entries.
func (h *MemoryHandler) Reset() {
	h.mu.Lock()
	h.entries = nil
	h.mu.Unlock()
}

// CanRecycleEntry returns true because Handle stores a copy.
func (h *MemoryHandler) CanRecycleEntry() bool {
	return true
}

// Close is a no-op.
func (h *MemoryHandler) Close() error {
	return nil
}
