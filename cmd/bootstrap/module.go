package bootstrap

import (
	"vitta-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
