package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggerUsableBeforeInitialize(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Logger.Infow("before init", "rows", 3)
	})
}

func TestInitialize(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	require.NoError(t, Initialize(false, true))
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.DebugLevel), "verbose enables debug")

	require.NoError(t, Initialize(true, false))
	assert.False(t, Logger.Desugar().Core().Enabled(zapcore.InfoLevel), "info is suppressed without verbose")
}

func TestForRunTagsRunID(t *testing.T) {
	a := ForRun("summarize")
	b := ForRun("summarize")
	assert.NotNil(t, a)
	assert.NotSame(t, a, b)
}
