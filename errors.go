package devlog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig reports an option value of the wrong shape.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnknownPlaceholder reports a message template placeholder that
	// names no parameter of the wrapped function.
	ErrUnknownPlaceholder = errors.New("unknown placeholder")
	// ErrNotAFunction reports an attempt to wrap something that is not a
	// non-nil func value.
	ErrNotAFunction = errors.New("not a function")
)

// ConfigError is returned by NewLoggingDecorator and Wrap, and panicked
// by the direct forms (LogOnStart, LogOnEnd, LogOnError), when a
// decorator cannot be built. Use errors.Is with the Err* sentinels to
// classify it.
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	return "devlog: " + e.Op + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErrorf(op string, kind error, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Op: op, Err: fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))}
}
