// Package logger provides named loggers for devlog.
//
// A Logger has a name, a minimum level and a set of attached handlers.
// Unlike the handlers themselves, the set is mutable: AddHandler attaches
// a handler at most once, which is what lets many decorators share one
// logger and one output handler without duplicating output.
//
// Loggers are either built explicitly:
//
//	log := logger.NewBuilder().
//	    WithName("billing").
//	    WithHandler(h).
//	    WithLevel(logger.DebugLevel).
//	    Build()
//
// or obtained from the process-wide registry, which creates them on
// first use:
//
//	log := logger.Get("github.com/acme/billing")
//
// A logger without handlers forwards its entries to Default(), which by
// default prints WARN and above to stderr.
package logger
