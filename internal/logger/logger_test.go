package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		stage string
		want  zapcore.Level
	}{
		{name: "explicit debug", level: "debug", stage: "prod", want: zapcore.DebugLevel},
		{name: "case insensitive", level: "WARN", stage: "dev", want: zapcore.WarnLevel},
		{name: "warning alias", level: "warning", stage: "dev", want: zapcore.WarnLevel},
		{name: "error", level: "error", stage: "prod", want: zapcore.ErrorLevel},
		{name: "explicit info wins locally", level: "info", stage: "local", want: zapcore.InfoLevel},
		{name: "local defaults to debug", level: "", stage: "local", want: zapcore.DebugLevel},
		{name: "prod defaults to info", level: "", stage: "prod", want: zapcore.InfoLevel},
		{name: "unknown level falls back to stage default", level: "loud", stage: "dev", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.level, tt.stage))
		})
	}
}

func TestInitLogger_UsesLogLevelEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	previous := Log
	defer func() { Log = previous }()

	InitLogger("dev")

	require.NotNil(t, Log)
	assert.False(t, Log.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, Log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_ProdSkipsDebug(t *testing.T) {
	log := New(Config{Stage: "prod"})

	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNamed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	previous := Log
	Log = zap.New(core)
	defer func() { Log = previous }()

	Named("w2_service").Info("W2 added")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "w2_service", entries[0].LoggerName)
	assert.Equal(t, "W2 added", entries[0].Message)
}
