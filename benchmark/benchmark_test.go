package benchmark

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/philipp01105/devlog"
	"github.com/philipp01105/devlog/core"
	"github.com/philipp01105/devlog/formatter"
	"github.com/philipp01105/devlog/handler"
	"github.com/philipp01105/devlog/handler/consolehandler"
	"github.com/philipp01105/devlog/handler/filehandler"
	"github.com/philipp01105/devlog/logger"
	"github.com/philipp01105/devlog/stacktrace"
)

var sinkLines []string

func newTextLogger() *logger.Logger {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	return logger.NewBuilder().WithHandler(h).WithLevel(core.DebugLevel).Build()
}

func BenchmarkLoggerCreation(b *testing.B) {
	h := newNoopHandler()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = logger.NewBuilder().
			WithName("bench").
			WithHandler(h).
			WithLevel(core.InfoLevel).
			Build()
	}
}

func BenchmarkDecoratorCreation(b *testing.B) {
	l := newTextLogger()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = devlog.LogOnStart(handleRequest, devlog.WithLogger(l))
	}
}

func BenchmarkMessages(b *testing.B) {
	cases := map[string][]devlog.Option{
		"default":    nil,
		"name-value": {devlog.WithArgsKwargs(false), devlog.WithParamNames("method", "path")},
		"template":   {devlog.WithParamNames("method", "path"), devlog.WithMessage("{method} {path}")},
		"verb":       {devlog.WithParamNames("method", "path"), devlog.WithMessage("{method:%-6s} {path:%q}")},
	}
	for name, opts := range cases {
		b.Run(name, func(b *testing.B) {
			l := logger.NewBuilder().WithHandler(newNoopHandler()).Build()
			fn := devlog.LogOnStart(handleRequest, append(opts, devlog.WithLogger(l))...)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = fn("GET", "/api/users")
			}
		})
	}
}

func BenchmarkFormatters(b *testing.B) {
	formatters := map[string]formatter.Formatter{
		"text": formatter.NewTextFormatter(formatter.Config{}),
		"json": formatter.NewJSONFormatter(formatter.Config{IncludeCaller: true}),
	}
	for name, f := range formatters {
		b.Run(name, func(b *testing.B) {
			h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: io.Discard, Formatter: f})
			l := logger.NewBuilder().WithHandler(h).Build()
			fn := devlog.LogOnEnd(handleRequest, devlog.WithLogger(l))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = fn("GET", "/api/users")
			}
		})
	}
}

func BenchmarkTraceStack(b *testing.B) {
	for _, removal := range []int{0, 2} {
		b.Run(fmt.Sprintf("removal=%d", removal), func(b *testing.B) {
			l := logger.NewBuilder().WithHandler(newNoopHandler()).WithLevel(core.DebugLevel).Build()
			fn := devlog.LogOnStart(handleRequest,
				devlog.WithLogger(l),
				devlog.WithTraceStack(true),
				devlog.WithStackSettings(stacktrace.NewSettings(removal, stacktrace.DefaultStackStartFrames)),
			)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = fn("GET", "/api/users")
			}
		})
	}
}

func BenchmarkStackCapture(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkLines = stacktrace.Capture(0, 1)
	}
}

func BenchmarkErrorPanic(b *testing.B) {
	l := logger.NewBuilder().WithHandler(newNoopHandler()).WithLevel(core.DebugLevel).Build()
	boom := errors.New("boom")
	fn := devlog.LogOnError(func() { panic(boom) }, devlog.WithLogger(l))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		func() {
			defer func() { _ = recover() }()
			fn()
		}()
	}
}

func BenchmarkFileHandler(b *testing.B) {
	fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
		Filename:  filepath.Join(b.TempDir(), "bench.log"),
		MaxSizeMB: 10,
	})
	if err != nil {
		b.Fatal(err)
	}
	l := logger.NewBuilder().WithHandler(fh).Build()
	defer l.Close()

	fn := devlog.LogOnStart(handleRequest, devlog.WithLogger(l))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fn("GET", "/api/users")
	}
}

func BenchmarkMultiHandler(b *testing.B) {
	for _, n := range []int{1, 3} {
		b.Run(fmt.Sprintf("handlers=%d", n), func(b *testing.B) {
			hs := make([]handler.Handler, n)
			for i := range hs {
				hs[i] = newNoopHandler()
			}
			l := logger.NewBuilder().WithHandler(handler.NewMultiHandler(hs...)).Build()
			fn := devlog.LogOnEnd(handleRequest, devlog.WithLogger(l))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = fn("GET", "/api/users")
			}
		})
	}
}
