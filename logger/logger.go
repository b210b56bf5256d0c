package logger

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/philipp01105/devlog/core"
	"github.com/philipp01105/devlog/handler"
)

// Logger is a named logger with a mutable set of attached handlers.
// Level and handlers may change at runtime; name and default fields are
// fixed at construction.
type Logger struct {
	name          string
	level         *atomic.Int32
	handlers      *handlerSet
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// handlerSet is shared between a Logger and the children created by With.
type handlerSet struct {
	mu   sync.RWMutex
	list []handler.Handler
	// recycle caches whether every handler in list is a Recycler.
	recycle bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name          string
	handlers      []handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel,
		callerSkip: 2,
	}
}

// WithName sets the logger name
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithHandler attaches a handler. May be called more than once.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handlers = append(b.handlers, h)
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCallerSkip skips n additional frames when resolving the caller,
// for helpers that wrap a Logger.
func (b *Builder) WithCallerSkip(n int) *Builder {
	b.callerSkip = 2 + n
	return b
}

// Build creates the Logger instance. The logger is not registered; use
// Register to make it reachable through Get.
func (b *Builder) Build() *Logger {
	l := &Logger{
		name:          b.name,
		level:         atomic.NewInt32(int32(b.level)),
		handlers:      &handlerSet{recycle: true},
		fields:        b.fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
	}
	for _, h := range b.handlers {
		l.AddHandler(h)
	}
	return l
}

// New creates an unregistered logger with the given name, level InfoLevel
// and no handlers.
func New(name string) *Logger {
	return NewBuilder().WithName(name).Build()
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the current minimum level
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel changes the minimum level. Children created by With share it.
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
}

// Enabled reports whether entries at level pass the logger's level gate.
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.Level()
}

// With creates a child Logger with additional fields. The child shares
// name, level and handlers with its parent.
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	c := *l
	c.fields = newFields
	return &c
}

// AddHandler attaches h. It returns false and does nothing when h is
// already attached.
func (l *Logger) AddHandler(h handler.Handler) bool {
	if h == nil {
		return false
	}
	s := l.handlers
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.list {
		if sameHandler(existing, h) {
			return false
		}
	}
	s.list = append(s.list, h)
	s.recycle = s.recycle && handler.CanRecycle(h)
	return true
}

// RemoveHandler detaches h. It reports whether h was attached.
func (l *Logger) RemoveHandler(h handler.Handler) bool {
	s := l.handlers
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.list {
		if sameHandler(existing, h) {
			s.list = append(s.list[:i:i], s.list[i+1:]...)
			s.recycle = true
			for _, rest := range s.list {
				s.recycle = s.recycle && handler.CanRecycle(rest)
			}
			return true
		}
	}
	return false
}

// HasHandler reports whether h is attached
func (l *Logger) HasHandler(h handler.Handler) bool {
	s := l.handlers
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, existing := range s.list {
		if sameHandler(existing, h) {
			return true
		}
	}
	return false
}

// Handlers returns the attached handlers in attachment order.
func (l *Logger) Handlers() []handler.Handler {
	s := l.handlers
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]handler.Handler, len(s.list))
	copy(out, s.list)
	return out
}

// sameHandler compares handlers by identity without panicking on
// non-comparable dynamic types.
func sameHandler(a, b handler.Handler) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) error {
	if !l.Enabled(level) {
		return nil
	}
	return l.emit(level, msg, fields)
}

// emit must be called directly from the exported method the user called,
// so that the caller lookup lands on the user's frame.
func (l *Logger) emit(level core.Level, msg string, fields []core.Field) error {
	var caller core.CallerInfo
	if l.includeCaller {
		caller = core.GetCaller(l.callerSkip)
	}
	return l.log(level, msg, caller, fields)
}

// LogAt logs a message with an explicit caller, for code that reports on
// behalf of another function.
func (l *Logger) LogAt(level core.Level, caller core.CallerInfo, msg string, fields ...core.Field) error {
	if !l.Enabled(level) {
		return nil
	}
	return l.log(level, msg, caller, fields)
}

func (l *Logger) log(level core.Level, msg string, caller core.CallerInfo, fields []core.Field) error {
	s := l.handlers
	s.mu.RLock()
	list, recycle := s.list, s.recycle
	s.mu.RUnlock()

	if len(list) == 0 {
		fallback := Default()
		if fallback == nil || fallback.handlers == s {
			return nil
		}
		fallback.handlers.mu.RLock()
		list, recycle = fallback.handlers.list, fallback.handlers.recycle
		fallback.handlers.mu.RUnlock()
	}

	entry := core.GetEntry()
	entry.Time = time.Now()
	entry.Level = level
	entry.Logger = l.name
	entry.Message = msg
	entry.Caller = caller
	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	var err error
	for _, h := range list {
		err = multierr.Append(err, h.Handle(entry))
	}

	if recycle {
		core.PutEntry(entry)
	}
	return err
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if l.Enabled(core.DebugLevel) {
		_ = l.emit(core.DebugLevel, msg, fields)
	}
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if l.Enabled(core.InfoLevel) {
		_ = l.emit(core.InfoLevel, msg, fields)
	}
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if l.Enabled(core.WarnLevel) {
		_ = l.emit(core.WarnLevel, msg, fields)
	}
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if l.Enabled(core.ErrorLevel) {
		_ = l.emit(core.ErrorLevel, msg, fields)
	}
}

// Logf logs a formatted message at the specified level
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) {
	if l.Enabled(level) {
		_ = l.emit(level, fmt.Sprintf(format, args...), nil)
	}
}

// Close closes every attached handler and detaches them.
func (l *Logger) Close() error {
	s := l.handlers
	s.mu.Lock()
	list := s.list
	s.list = nil
	s.recycle = true
	s.mu.Unlock()

	return handler.NewMultiHandler(list...).Close()
}
