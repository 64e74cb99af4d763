//go:build unit

package logger_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"vitta-booking/internal/pkg/config"
	"vitta-booking/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelWarn,
		"":        slog.LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(in), "level %q", in)
	}
}

func TestNewLogger_File(t *testing.T) {
	cfg := config.NewTestConfig().Log
	cfg.Level = "info"
	cfg.JSON = true
	cfg.File = filepath.Join(t.TempDir(), "booking.log")

	l, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	l.GetSlogLogger().Info("appointment created", "appointment_id", "appt-1")
	l.GetSlogLogger().Debug("hidden")
	require.NoError(t, l.Close())

	raw, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"appointment_id":"appt-1"`)
	assert.NotContains(t, string(raw), "hidden")
}

func TestNewLogger_BadPath(t *testing.T) {
	cfg := config.NewTestConfig().Log
	cfg.File = filepath.Join(t.TempDir(), "missing", "booking.log")

	_, err := logger.NewLogger(cfg)

	assert.Error(t, err)
}
