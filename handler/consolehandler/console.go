package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/devlog/core"
	"github.com/philipp01105/devlog/formatter"
	"github.com/philipp01105/devlog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MinLevel drops entries below this level (default: DebugLevel)
	MinLevel core.Level
}

// ConsoleHandler writes formatted entries to an io.Writer. Writes are
// serialized, so one handler may be shared by loggers used from many
// goroutines.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	minLevel        core.Level
	stats           *handler.Stats
	mu              sync.Mutex
	closed          bool
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		minLevel:  cfg.MinLevel,
		stats:     handler.NewStats(),
	}
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return h
}

// Handle formats the entry and writes it.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if entry.Level < h.minLevel {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return handler.ErrClosed
	}

	var err error
	if h.writerFormatter != nil {
		err = h.writerFormatter.FormatTo(entry, h.writer)
	} else {
		var data []byte
		if data, err = h.formatter.Format(entry); err == nil {
			_, err = h.writer.Write(data)
		}
	}
	h.stats.Record(entry.Level, err)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// CanRecycleEntry returns true because entries are written before Handle returns.
func (h *ConsoleHandler) CanRecycleEntry() bool {
	return true
}

// Close marks the handler closed. The writer is not closed; it belongs
// to the caller.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
