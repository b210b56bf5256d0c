package handler

import (
	"errors"

	"github.com/philipp01105/devlog/core"
)

// ErrClosed is returned by Handle after Close.
var ErrClosed = errors.New("handler: closed")

// Handler receives the entries a Logger emits
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Recycler is implemented by handlers that never retain the *core.Entry
// passed to Handle after it returns. Loggers only return an entry to the
// pool when every attached handler is a Recycler reporting true.
type Recycler interface {
	CanRecycleEntry() bool
}

// CanRecycle reports whether h allows the caller to recycle entries.
func CanRecycle(h Handler) bool {
	rc, ok := h.(Recycler)
	return ok && rc.CanRecycleEntry()
}
