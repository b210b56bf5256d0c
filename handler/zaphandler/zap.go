// Package zaphandler forwards devlog entries to an existing *zap.Logger,
// so decorator output joins an application's zap pipeline.
package zaphandler

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/devlog/core"
)

// ZapHandler is a handler.Handler backed by a *zap.Logger. Entry logger
// names become zap logger names; fields become typed zap fields.
type ZapHandler struct {
	logger *zap.Logger
}

// New returns a handler writing through l.
func New(l *zap.Logger) *ZapHandler {
	return &ZapHandler{logger: l}
}

// Handle writes the entry. Fatal and Panic entries are written at
// zap's ErrorLevel: a handler never terminates the process.
func (h *ZapHandler) Handle(entry *core.Entry) error {
	l := h.logger
	if entry.Logger != "" {
		l = l.Named(entry.Logger)
	}
	ce := l.Check(ZapLevel(entry.Level), entry.Message)
	if ce == nil {
		return nil
	}
	ce.Time = entry.Time
	ce.Write(Fields(entry.Fields)...)
	return nil
}

// CanRecycleEntry returns true; zap copies everything it keeps.
func (h *ZapHandler) CanRecycleEntry() bool {
	return true
}

// Close flushes the zap logger.
func (h *ZapHandler) Close() error {
	return h.logger.Sync()
}

// ZapLevel maps a core.Level onto zapcore.
func ZapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Fields converts entry fields into zap fields.
func Fields(fields []core.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type {
		case core.StringType, core.ErrorType:
			out = append(out, zap.String(f.Key, f.Str))
		case core.IntType, core.Int64Type:
			out = append(out, zap.Int64(f.Key, f.Int64))
		case core.Float64Type:
			out = append(out, zap.Float64(f.Key, f.Float64))
		case core.BoolType:
			out = append(out, zap.Bool(f.Key, f.Int64 == 1))
		case core.TimeType:
			out = append(out, zap.Time(f.Key, time.Unix(0, f.Int64)))
		case core.DurationType:
			out = append(out, zap.Duration(f.Key, time.Duration(f.Int64)))
		default:
			out = append(out, zap.Any(f.Key, f.Any))
		}
	}
	return out
}
