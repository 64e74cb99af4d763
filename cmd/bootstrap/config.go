package bootstrap

import (
	"vitta-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.APIConfig { return cfg.API },
		func(cfg config.Config) config.AuthConfig { return cfg.Auth },
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.LogConfig { return cfg.Log },
	),
)
