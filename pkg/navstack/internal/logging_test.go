package internal

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParseLevel(raw), raw)
	}
}

func TestSetLogLevel(t *testing.T) {
	t.Cleanup(func() { SetLogLevel(slog.LevelInfo) })

	SetRawLogLevel("error")
	assert.False(t, GetLogger().Enabled(t.Context(), slog.LevelWarn))

	SetLogLevel(slog.LevelDebug)
	assert.True(t, GetLogger().Enabled(t.Context(), slog.LevelDebug))
}

func TestInternalLoggerDefaultsToError(t *testing.T) {
	assert.False(t, GetInternalLogger().Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, GetInternalLogger().Enabled(t.Context(), slog.LevelError))
}
