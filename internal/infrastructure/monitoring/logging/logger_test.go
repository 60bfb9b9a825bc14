package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewLoggerFromCore(core), logs
}

func TestZapLogger_LevelsAndFields(t *testing.T) {
	logger, logs := observedLogger(zapcore.DebugLevel)

	logger.Debug("d")
	logger.Info("i", String("tribunal", "TJSP"), Int("year", 2025))
	logger.Warn("w", Duration("elapsed", time.Second))
	logger.Error("e", Err(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)

	fields := entries[1].ContextMap()
	assert.Equal(t, "TJSP", fields["tribunal"])
	assert.EqualValues(t, 2025, fields["year"])

	errFields := entries[3].ContextMap()
	assert.Equal(t, "boom", errFields["error"])
}

func TestZapLogger_WithAndNamed(t *testing.T) {
	logger, logs := observedLogger(zapcore.InfoLevel)

	child := logger.With(String("component", "store")).Named("calendar")
	child.Info("built")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "calendar", entries[0].LoggerName)
	assert.Equal(t, "store", entries[0].ContextMap()["component"])

	// The parent must be unaffected.
	logger.Info("plain")
	assert.NotContains(t, logs.All()[1].ContextMap(), "component")
}

func TestErrField_Nil(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}

func TestNewLogger_Defaults(t *testing.T) {
	logger, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNopLogger(t *testing.T) {
	nop := NewNopLogger()
	// Must be safe to use in any position.
	nop.With(String("k", "v")).Named("x").Info("ignored")
}

//Personal.AI order the ending
