// Package benchmark compares devlog-decorated calls with the same calls
// instrumented by hand using other logging libraries.
package benchmark

import (
	"github.com/philipp01105/devlog/core"
	"github.com/philipp01105/devlog/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) CanRecycleEntry() bool {
	return true
}

func (h *noopHandler) Close() error {
	return nil
}

// handleRequest is the function every benchmark instruments.
func handleRequest(method, path string) (int, error) {
	if path == "" {
		return 0, errEmptyPath
	}
	return len(method) + len(path), nil
}

type pathError string

func (e pathError) Error() string { return string(e) }

const errEmptyPath = pathError("empty path")
