package filehandler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/philipp01105/devlog/core"
	"github.com/philipp01105/devlog/formatter"
	"github.com/philipp01105/devlog/handler"
)

// FileConfig holds configuration for the rolling file handler
type FileConfig struct {
	// Filename is the file to write to. Backups are kept next to it.
	Filename string
	// MaxSizeMB is the size in megabytes that triggers a rotation (default: 100)
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep (0 keeps all)
	MaxBackups int
	// MaxAgeDays removes rotated files older than this many days (0 disables)
	MaxAgeDays int
	// Compress gzips rotated files
	Compress bool
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MinLevel drops entries below this level (default: DebugLevel)
	MinLevel core.Level
}

// FileHandler writes formatted entries to a size-rotated file.
type FileHandler struct {
	out       *lumberjack.Logger
	formatter formatter.Formatter
	minLevel  core.Level
	stats     *handler.Stats
	mu        sync.Mutex
	closed    bool
}

// NewFileHandler creates the log directory if needed and returns a
// handler writing to cfg.Filename.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filehandler: filename is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0o755); err != nil {
		return nil, fmt.Errorf("filehandler: create log directory: %w", err)
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	return &FileHandler{
		out: &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		},
		formatter: cfg.Formatter,
		minLevel:  cfg.MinLevel,
		stats:     handler.NewStats(),
	}, nil
}

// Handle formats the entry and appends it to the file.
func (h *FileHandler) Handle(entry *core.Entry) error {
	if entry.Level < h.minLevel {
		return nil
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		h.stats.Record(entry.Level, err)
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return handler.ErrClosed
	}
	_, err = h.out.Write(data)
	h.stats.Record(entry.Level, err)
	return err
}

// Rotate closes the current file, renames it with a timestamp and opens
// a fresh one.
func (h *FileHandler) Rotate() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return handler.ErrClosed
	}
	return h.out.Rotate()
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// CanRecycleEntry returns true because entries are formatted before Handle returns.
func (h *FileHandler) CanRecycleEntry() bool {
	return true
}

// Close closes the underlying file. It's safe to call Close multiple times.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	return h.out.Close()
}
