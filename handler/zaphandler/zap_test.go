package zaphandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/devlog/core"
)

func TestZapHandler_Handle(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	h := New(zap.New(obs))

	e := core.GetEntry()
	e.Level = core.InfoLevel
	e.Logger = "billing"
	e.Message = "Start func Charge with args (1), kwargs {}"
	e.Fields = append(e.Fields,
		core.Field{Key: "function", Type: core.StringType, Str: "Charge"},
		core.Field{Key: "attempt", Type: core.IntType, Int64: 2},
		core.Field{Key: "took", Type: core.DurationType, Int64: int64(time.Second)},
	)
	require.NoError(t, h.Handle(e))
	core.PutEntry(e)

	require.Equal(t, 1, logs.Len())
	got := logs.All()[0]
	assert.Equal(t, "Start func Charge with args (1), kwargs {}", got.Message)
	assert.Equal(t, "billing", got.LoggerName)
	assert.Equal(t, zapcore.InfoLevel, got.Level)

	ctx := got.ContextMap()
	assert.Equal(t, "Charge", ctx["function"])
	assert.Equal(t, int64(2), ctx["attempt"])
	assert.Equal(t, time.Second, ctx["took"])
}

func TestZapHandler_LevelFiltering(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	h := New(zap.New(obs))

	for _, l := range []core.Level{core.DebugLevel, core.ErrorLevel, core.FatalLevel} {
		e := core.GetEntry()
		e.Level = l
		e.Message = l.String()
		require.NoError(t, h.Handle(e))
		core.PutEntry(e)
	}

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
	assert.Equal(t, "FATAL", logs.All()[1].Message)
}

func TestZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ZapLevel(core.DebugLevel))
	assert.Equal(t, zapcore.WarnLevel, ZapLevel(core.WarnLevel))
	assert.Equal(t, zapcore.ErrorLevel, ZapLevel(core.PanicLevel))
}
