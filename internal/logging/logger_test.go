package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_RespectsLevel(t *testing.T) {
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		t.Run(level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(Config{Level: level, Format: FormatText, Output: &buf})

			logger.Log(context.Background(), level-1, "below")
			logger.Log(context.Background(), level, "at")

			assert.NotContains(t, buf.String(), "msg=below")
			assert.Contains(t, buf.String(), "msg=at")
		})
	}
}

func TestNewLogger_JSONRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.InfoContext(context.Background(), "verse fetched", "verse_id", 42)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "verse fetched", record["msg"])
	assert.InDelta(t, 42, record["verse_id"], 0)
}

func TestNewLogger_NilOutput(t *testing.T) {
	assert.NotNil(t, NewLogger(Config{}))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, Config{Level: slog.LevelInfo, Format: FormatText, Output: cfg.Output}, cfg)
	assert.NotNil(t, cfg.Output)
}

func TestNewTestLogger_Silent(t *testing.T) {
	assert.False(t, NewTestLogger().Enabled(context.Background(), slog.LevelError))
}

func TestParseLevel(t *testing.T) {
	valid := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for in, want := range valid {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	got, err := ParseLevel("verbose")
	assert.Error(t, err)
	assert.Equal(t, slog.LevelInfo, got)
}

func TestWithOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	WithOperation(logger, "getVerse").InfoContext(context.Background(), "fetching")

	assert.Contains(t, buf.String(), "operation=getVerse")
}
