package gateway

import (
	"context"
	"net/http"

	"vitta-booking/internal/domain/appointment"
	"vitta-booking/internal/infra"
	"vitta-booking/internal/infra/converter"
	reqdto "vitta-booking/internal/infra/dto/request"
	resdto "vitta-booking/internal/infra/dto/response"
	"vitta-booking/internal/usecase"
)

type availabilityGateway struct {
	client *Client
}

func NewAvailabilityGateway(client *Client) usecase.AvailabilityGateway {
	return &availabilityGateway{client: client}
}

func (g *availabilityGateway) AvailableHours(ctx context.Context, professionalID string, date appointment.DateKey) ([]appointment.AvailableHour, error) {
	var rows []resdto.AvailableHourResponse
	err := g.client.do(ctx, call{
		method: http.MethodPost,
		path:   "/appointments/validate",
		body:   reqdto.NewAvailabilityRequest(professionalID, date),
	}, &rows)
	if err != nil {
		return nil, err
	}

	hours, err := converter.HoursToDomain(rows)
	if err != nil {
		return nil, infra.WrapGatewayErr(g.client.logger, infra.KindDecode, http.StatusOK, "invalid availability response", err)
	}
	return hours, nil
}
