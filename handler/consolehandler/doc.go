// Package consolehandler provides a handler that writes formatted
// entries to any io.Writer (default: os.Stderr).
//
// Writes are serialized by the handler, so a single ConsoleHandler can
// be attached to several loggers. MinLevel filters entries per handler,
// independent of the logger's own level.
package consolehandler
