// Package zerologhandler forwards devlog entries to a zerolog.Logger.
package zerologhandler

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/philipp01105/devlog/core"
)

// LoggerFieldName is the key the entry's logger name is written under.
const LoggerFieldName = "logger"

// ZerologHandler is a handler.Handler backed by a zerolog.Logger.
type ZerologHandler struct {
	logger zerolog.Logger
}

// New returns a handler writing through l.
func New(l zerolog.Logger) *ZerologHandler {
	return &ZerologHandler{logger: l}
}

// Handle writes the entry. zerolog's WithLevel is used, so Fatal and
// Panic entries are written without exiting or panicking.
func (h *ZerologHandler) Handle(entry *core.Entry) error {
	ev := h.logger.WithLevel(ZerologLevel(entry.Level))
	if ev == nil {
		return nil
	}
	if entry.Logger != "" {
		ev = ev.Str(LoggerFieldName, entry.Logger)
	}
	for _, f := range entry.Fields {
		switch f.Type {
		case core.StringType:
			ev = ev.Str(f.Key, f.Str)
		case core.ErrorType:
			ev = ev.Str(f.Key, f.Str)
		case core.IntType, core.Int64Type:
			ev = ev.Int64(f.Key, f.Int64)
		case core.Float64Type:
			ev = ev.Float64(f.Key, f.Float64)
		case core.BoolType:
			ev = ev.Bool(f.Key, f.Int64 == 1)
		case core.TimeType:
			ev = ev.Time(f.Key, time.Unix(0, f.Int64))
		case core.DurationType:
			ev = ev.Dur(f.Key, time.Duration(f.Int64))
		default:
			ev = ev.Interface(f.Key, f.Any)
		}
	}
	ev.Msg(entry.Message)
	return nil
}

// CanRecycleEntry returns true; zerolog encodes the event before Msg returns.
func (h *ZerologHandler) CanRecycleEntry() bool {
	return true
}

// Close is a no-op; the writer belongs to the zerolog.Logger's owner.
func (h *ZerologHandler) Close() error {
	return nil
}

// ZerologLevel maps a core.Level onto zerolog.
func ZerologLevel(l core.Level) zerolog.Level {
	switch l {
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	case core.FatalLevel:
		return zerolog.FatalLevel
	case core.PanicLevel:
		return zerolog.PanicLevel
	default:
		return zerolog.NoLevel
	}
}
