package benchmark

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/devlog"
	"github.com/philipp01105/devlog/core"
	"github.com/philipp01105/devlog/formatter"
	"github.com/philipp01105/devlog/handler/consolehandler"
	"github.com/philipp01105/devlog/handler/filehandler"
	"github.com/philipp01105/devlog/handler/zaphandler"
	"github.com/philipp01105/devlog/handler/zerologhandler"
	"github.com/philipp01105/devlog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard)
// ---------------------------------------------------------------------------

// newDevlogLogger returns a devlog logger that writes JSON to io.Discard.
func newDevlogLogger(level core.Level) *logger.Logger {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})
	return logger.NewBuilder().
		WithName("bench").
		WithHandler(h).
		WithLevel(level).
		Build()
}

func newZapLogger(level zapcore.Level) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(io.Discard), level))
}

func newSlogLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: level}))
}

func newLogrusLogger(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level)
	return l
}

func newZerologLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(io.Discard).With().Timestamp().Logger().Level(level)
}

// startMessage is what a hand-written start log has to produce to match
// devlog's default message.
func startMessage(method, path string) string {
	return fmt.Sprintf("Start func handleRequest with args (%q, %q), kwargs {}", method, path)
}

// ---------------------------------------------------------------------------
// Scenario 1 – Start message before every call
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_StartMessage(b *testing.B) {
	b.Run("devlog", func(b *testing.B) {
		l := newDevlogLogger(core.DebugLevel)
		defer l.Close()
		fn := devlog.LogOnStart(handleRequest, devlog.WithLogger(l))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = fn("GET", "/api/users")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info(startMessage("GET", "/api/users"),
				zap.String("function", "handleRequest"),
				zap.String("trigger", "start"),
			)
			_, _ = handleRequest("GET", "/api/users")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(slog.LevelDebug)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info(startMessage("GET", "/api/users"),
				slog.String("function", "handleRequest"),
				slog.String("trigger", "start"),
			)
			_, _ = handleRequest("GET", "/api/users")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.WithFields(logrus.Fields{
				"function": "handleRequest",
				"trigger":  "start",
			}).Info(startMessage("GET", "/api/users"))
			_, _ = handleRequest("GET", "/api/users")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().
				Str("function", "handleRequest").
				Str("trigger", "start").
				Msg(startMessage("GET", "/api/users"))
			_, _ = handleRequest("GET", "/api/users")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – Error path: log the returned error
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_ErrorPath(b *testing.B) {
	b.Run("devlog", func(b *testing.B) {
		l := newDevlogLogger(core.DebugLevel)
		defer l.Close()
		fn := devlog.LogOnError(handleRequest, devlog.WithLogger(l))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = fn("GET", "")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := handleRequest("GET", ""); err != nil {
				l.Error("Error in func handleRequest", zap.Error(err))
			}
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := handleRequest("GET", ""); err != nil {
				l.WithError(err).Error("Error in func handleRequest")
			}
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := handleRequest("GET", ""); err != nil {
				l.Error().Err(err).Msg("Error in func handleRequest")
			}
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – Decorated calls forwarded into another library
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Backends(b *testing.B) {
	b.Run("devlog->zap", func(b *testing.B) {
		l := logger.NewBuilder().
			WithHandler(zaphandler.New(newZapLogger(zap.DebugLevel))).
			WithLevel(core.DebugLevel).
			Build()
		fn := devlog.LogOnEnd(handleRequest, devlog.WithLogger(l))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = fn("GET", "/api/users")
		}
	})

	b.Run("devlog->zerolog", func(b *testing.B) {
		l := logger.NewBuilder().
			WithHandler(zerologhandler.New(newZerologLogger(zerolog.DebugLevel))).
			WithLevel(core.DebugLevel).
			Build()
		fn := devlog.LogOnEnd(handleRequest, devlog.WithLogger(l))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = fn("GET", "/api/users")
		}
	})

	b.Run("devlog->noop", func(b *testing.B) {
		l := logger.NewBuilder().
			WithHandler(newNoopHandler()).
			WithLevel(core.DebugLevel).
			Build()
		fn := devlog.LogOnEnd(handleRequest, devlog.WithLogger(l))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = fn("GET", "/api/users")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 4 – Disabled level (measure level-check overhead)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_DisabledLevel(b *testing.B) {
	b.Run("devlog", func(b *testing.B) {
		l := newDevlogLogger(core.ErrorLevel)
		defer l.Close()
		fn := devlog.LogOnStart(handleRequest, devlog.WithLogger(l))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = fn("GET", "/api/users")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(zap.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if ce := l.Check(zap.InfoLevel, "start"); ce != nil {
				ce.Write(zap.String("msg", startMessage("GET", "/api/users")))
			}
			_, _ = handleRequest("GET", "/api/users")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(logrus.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if l.IsLevelEnabled(logrus.InfoLevel) {
				l.Info(startMessage("GET", "/api/users"))
			}
			_, _ = handleRequest("GET", "/api/users")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if e := l.Info(); e.Enabled() {
				e.Msg(startMessage("GET", "/api/users"))
			}
			_, _ = handleRequest("GET", "/api/users")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 5 – Parallel decorated calls
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("devlog", func(b *testing.B) {
		l := newDevlogLogger(core.DebugLevel)
		defer l.Close()
		fn := devlog.LogOnEnd(handleRequest, devlog.WithLogger(l))
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_, _ = fn("GET", "/api/users")
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_, _ = handleRequest("GET", "/api/users")
				l.Info("Successfully run func handleRequest", zap.String("trigger", "end"))
			}
		})
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_, _ = handleRequest("GET", "/api/users")
				l.WithField("trigger", "end").Info("Successfully run func handleRequest")
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_, _ = handleRequest("GET", "/api/users")
				l.Info().Str("trigger", "end").Msg("Successfully run func handleRequest")
			}
		})
	})
}

// ---------------------------------------------------------------------------
// Scenario 6 – File output
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_FileOutput(b *testing.B) {
	dir := b.TempDir()

	b.Run("devlog", func(b *testing.B) {
		fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
			Filename:  filepath.Join(dir, "devlog.log"),
			Formatter: formatter.NewJSONFormatter(formatter.Config{}),
		})
		if err != nil {
			b.Fatal(err)
		}
		l := logger.NewBuilder().WithHandler(fh).WithLevel(core.DebugLevel).Build()
		defer l.Close()
		fn := devlog.LogOnStart(handleRequest, devlog.WithLogger(l))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = fn("GET", "/api/users")
		}
	})

	b.Run("zap", func(b *testing.B) {
		f, err := os.Create(filepath.Join(dir, "zap.log"))
		if err != nil {
			b.Fatal(err)
		}
		defer f.Close()
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		l := zap.New(zapcore.NewCore(enc, zapcore.AddSync(f), zap.DebugLevel))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info(startMessage("GET", "/api/users"))
			_, _ = handleRequest("GET", "/api/users")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		f, err := os.Create(filepath.Join(dir, "logrus.log"))
		if err != nil {
			b.Fatal(err)
		}
		defer f.Close()
		l := logrus.New()
		l.SetOutput(f)
		l.SetFormatter(&logrus.JSONFormatter{})
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info(startMessage("GET", "/api/users"))
			_, _ = handleRequest("GET", "/api/users")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		f, err := os.Create(filepath.Join(dir, "zerolog.log"))
		if err != nil {
			b.Fatal(err)
		}
		defer f.Close()
		l := zerolog.New(f).With().Timestamp().Logger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg(startMessage("GET", "/api/users"))
			_, _ = handleRequest("GET", "/api/users")
		}
	})
}
