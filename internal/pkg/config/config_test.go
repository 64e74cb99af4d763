//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"vitta-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("success: defaults", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://api.example.com/")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
		assert.Equal(t, 4, cfg.Booking.MaxPerMonth)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "https://api.example.com/appointments/validate", cfg.API.Endpoint("/appointments/validate"))
	})

	t.Run("error: API_BASE_URL is required", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		require.NoError(t, os.Unsetenv("API_BASE_URL"))

		_, err := config.LoadConfig()

		assert.Error(t, err)
	})
}

func TestBookingConfig_Location(t *testing.T) {
	loc, err := config.BookingConfig{TimeZone: "Local"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = config.BookingConfig{TimeZone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = config.BookingConfig{TimeZone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}
