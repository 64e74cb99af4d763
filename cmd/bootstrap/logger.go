package bootstrap

import (
	"context"
	"log/slog"

	"vitta-booking/internal/pkg/config"
	"vitta-booking/internal/pkg/logger"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *logger.Logger) *slog.Logger {
			return l.GetSlogLogger()
		},
	),
)

func NewLogger(lc fx.Lifecycle, cfg config.LogConfig) (*logger.Logger, error) {
	l, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return l.Close()
		},
	})

	return l, nil
}
