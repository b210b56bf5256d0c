// Package handler provides the Handler interface and the handlers that
// ship with devlog.
//
// A Handler is the "output" half of a logger: decorators attach one to
// a logger (once), and every entry the logger emits is passed to each
// attached handler in attachment order.
//
// Built-in handlers:
//
//   - MemoryHandler keeps entries in memory, grouped by level.
//   - MultiHandler fans out a single entry to several child handlers
//     and combines their errors.
//   - SlogHandler adapts a Handler to log/slog.Handler.
//
// Writer-backed handlers live in subpackages: consolehandler (any
// io.Writer), filehandler (rolling files), zaphandler and
// zerologhandler (forwarding to existing zap or zerolog loggers).
//
// Handlers that can report their throughput implement StatsProvider.
package handler
