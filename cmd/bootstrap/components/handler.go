package components

import (
	"vitta-booking/internal/handler/cli"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		cli.NewContext,
	),
)
