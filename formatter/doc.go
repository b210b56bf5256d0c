// Package formatter turns entries into bytes for handlers that write to
// an io.Writer.
//
// TextFormatter produces one human-readable line per entry and is the
// default for console and file handlers. JSONFormatter produces one
// JSON object per line. Both render the logger name, so output from
// several decorated packages stays attributable when it shares a sink.
package formatter
