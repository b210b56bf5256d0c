// Package devlog wraps functions so that they log when they start, when
// they return successfully and when they fail.
//
// Each trigger has a direct form that wraps a function immediately and a
// deferred form that returns a reusable *LoggingDecorator:
//
//	charge := devlog.LogOnError(billing.Charge)
//
//	onEnd := devlog.OnEnd(devlog.WithMessage("charged {customer}: {result}"),
//		devlog.WithParamNames("customer", "amount"))
//	charge = devlog.MustWrap(onEnd, charge)
//
// Wrapped functions keep their type. A call fails when its last result
// is a non-nil error or when it panics; errors are returned and panics
// re-raised unchanged.
//
// # Messages
//
// Without a template the message lists the call's arguments:
//
//	Start func Charge with args ("alice", 12.5), kwargs {}
//
// or, with WithArgsKwargs(false), the bound parameters by name. Templates
// use {name} or {name:%verb} placeholders over the parameters declared
// with WithParams, or arg0, arg1 ... when none are declared. End
// templates may use {result} and error templates {error}. Kwarg values
// in a variadic tail bind by name.
//
// # Loggers
//
// Entries go to the logger given with WithLogger or else to
// logger.Get(<package path of the wrapped function>). WithHandler
// attaches a handler to that logger once.
//
// # Stack traces
//
// WithTraceStack(true) follows each message with one DEBUG entry per
// stack frame of the caller and a final "End of the trace
// <package>:<function>" entry. See package stacktrace for trimming.
package devlog
