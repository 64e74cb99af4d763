package components

import (
	"net/http"
	"time"

	"vitta-booking/internal/infra/gateway"
	"vitta-booking/internal/pkg/config"
	"vitta-booking/internal/pkg/jwt"
	"vitta-booking/internal/pkg/logger"

	"go.uber.org/fx"
)

// tokens this close to exp are refreshed before use
const tokenLeeway = 30 * time.Second

var GatewayModule = fx.Module("gateway",
	gatewayBaseOption,
	fx.Provide(
		gateway.NewAvailabilityGateway,
		gateway.NewReservationGateway,
		gateway.NewProviderDirectory,
	),
)

var gatewayBaseOption = fx.Provide(
	NewHTTPClient,
	func() *jwt.Inspector {
		return jwt.NewInspector(tokenLeeway)
	},
	gateway.NewTokenProvider,
	gateway.NewClient,
)

func NewHTTPClient(cfg config.APIConfig, l *logger.Logger) *http.Client {
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: gateway.NewLoggingTransport(http.DefaultTransport, l.GetSlogLogger(), l.TimeZone()),
	}
}
