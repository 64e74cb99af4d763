package components

import (
	"vitta-booking/internal/domain/appointment"
	"vitta-booking/internal/pkg/clock"
	"vitta-booking/internal/pkg/config"
	"vitta-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		usecase.NewBookingService,
	),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewRules,
)

func NewRules(c clock.Clock, cfg config.BookingConfig) (*appointment.Rules, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return appointment.NewRules(c, loc, cfg.MaxPerMonth), nil
}
