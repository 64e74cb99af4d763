package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (API endpoint), security settings
// - default: Values common across all environments (timezone, timeout, booking policy)
// -----------------------------------------------------------------------------

type Config struct {
	API     APIConfig
	Auth    AuthConfig
	Booking BookingConfig
	Log     LogConfig
}

type APIConfig struct {
	BaseURL   string        `envconfig:"API_BASE_URL" required:"true"`
	Timeout   time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	RateLimit float64       `envconfig:"API_RATE_LIMIT" default:"5"` // requests per second
	RateBurst int           `envconfig:"API_RATE_BURST" default:"5"`
}

type AuthConfig struct {
	Token    string `envconfig:"AUTH_TOKEN"`
	TokenURL string `envconfig:"AUTH_TOKEN_URL"`
}

type BookingConfig struct {
	MaxPerMonth int    `envconfig:"BOOKING_MAX_PER_MONTH" default:"4"`
	TimeZone    string `envconfig:"BOOKING_TIMEZONE" default:"Local"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"warn"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	File           string `envconfig:"LOG_FILE"`
	JSON           bool   `envconfig:"LOG_JSON" default:"false"`
}

// Location resolves BOOKING_TIMEZONE; "Local" and "" mean the host zone.
func (c BookingConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.TimeZone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

func (c APIConfig) Endpoint(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8889", // Test API
			Timeout:   2 * time.Second,
			RateLimit: 1000,
			RateBurst: 1000,
		},
		Booking: BookingConfig{
			MaxPerMonth: 4,
			TimeZone:    "UTC",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
