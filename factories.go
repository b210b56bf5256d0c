package devlog

import (
	"github.com/philipp01105/devlog/core"
	"github.com/philipp01105/devlog/stacktrace"
)

// LogOnStart returns fn wrapped to log at INFO before each call. It
// panics with a *ConfigError if the options are invalid.
func LogOnStart[F any](fn F, opts ...Option) F {
	return MustWrap(OnStart(opts...), fn)
}

// LogOnEnd returns fn wrapped to log at INFO after each call that
// returns without error or panic.
func LogOnEnd[F any](fn F, opts ...Option) F {
	return MustWrap(OnEnd(opts...), fn)
}

// LogOnError returns fn wrapped to log at ERROR when a call returns a
// non-nil error as its last result or panics. The error is returned and
// the panic re-raised unchanged.
func LogOnError[F any](fn F, opts ...Option) F {
	return MustWrap(OnError(opts...), fn)
}

// OnStart returns a start decorator to be applied with Wrap or MustWrap.
func OnStart(opts ...Option) *LoggingDecorator {
	return deferred(TriggerStart, core.InfoLevel, opts)
}

// OnEnd returns an end decorator to be applied with Wrap or MustWrap.
func OnEnd(opts ...Option) *LoggingDecorator {
	return deferred(TriggerEnd, core.InfoLevel, opts)
}

// OnError returns an error decorator to be applied with Wrap or MustWrap.
func OnError(opts ...Option) *LoggingDecorator {
	return deferred(TriggerError, core.ErrorLevel, opts)
}

func deferred(t Trigger, level core.Level, opts []Option) *LoggingDecorator {
	d, err := NewLoggingDecorator(t, level, "", opts...)
	if err != nil {
		return &LoggingDecorator{trigger: t, err: err}
	}
	return d
}

// SetStackRemovalFrames sets how many inner frames every trace block
// drops, using |n|.
func SetStackRemovalFrames(n int) {
	stacktrace.SetStackRemovalFrames(n)
}

// SetStackStartFrames sets how many outer frames every trace block
// drops, using |n|.
func SetStackStartFrames(n int) {
	stacktrace.SetStackStartFrames(n)
}
