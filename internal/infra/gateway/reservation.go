package gateway

import (
	"context"
	"net/http"
	"net/url"

	"vitta-booking/internal/domain/appointment"
	"vitta-booking/internal/infra"
	"vitta-booking/internal/infra/converter"
	reqdto "vitta-booking/internal/infra/dto/request"
	resdto "vitta-booking/internal/infra/dto/response"
	"vitta-booking/internal/usecase"

	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type reservationGateway struct {
	client *Client
}

func NewReservationGateway(client *Client) usecase.ReservationGateway {
	return &reservationGateway{client: client}
}

func (g *reservationGateway) CreateAppointment(ctx context.Context, req appointment.Request, idempotencyKey uuid.UUID) (*appointment.Appointment, error) {
	in := call{
		method: http.MethodPost,
		path:   "/appointments/create",
		body:   reqdto.FromAppointmentRequest(req),
	}
	if idempotencyKey != uuid.Nil {
		in.headers = map[string]string{idempotencyKeyHeader: idempotencyKey.String()}
	}

	var res resdto.AppointmentResponse
	if err := g.client.do(ctx, in, &res); err != nil {
		return nil, err
	}
	return g.toAppointment(res)
}

func (g *reservationGateway) AppointmentsByUser(ctx context.Context, userID string) ([]appointment.Appointment, error) {
	return g.list(ctx, "/appointments/user/"+url.PathEscape(userID))
}

func (g *reservationGateway) AppointmentsByProvider(ctx context.Context, providerID string) ([]appointment.Appointment, error) {
	return g.list(ctx, "/appointments/provider/"+url.PathEscape(providerID))
}

func (g *reservationGateway) CancelAppointment(ctx context.Context, id string) (*appointment.Appointment, error) {
	return g.patch(ctx, "/appointments/cancel/"+url.PathEscape(id))
}

func (g *reservationGateway) ConfirmAppointment(ctx context.Context, id string) (*appointment.Appointment, error) {
	return g.patch(ctx, "/appointments/provider/confirm/"+url.PathEscape(id))
}

// list treats a 404 as "no appointments yet".
func (g *reservationGateway) list(ctx context.Context, path string) ([]appointment.Appointment, error) {
	var rows []resdto.AppointmentResponse
	err := g.client.do(ctx, call{method: http.MethodGet, path: path}, &rows)
	if infra.IsKind(err, infra.KindNotFound) {
		return []appointment.Appointment{}, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := converter.AppointmentsToDomain(rows)
	if err != nil {
		return nil, infra.WrapGatewayErr(g.client.logger, infra.KindDecode, http.StatusOK, "invalid appointment list", err)
	}
	return items, nil
}

// patch returns nil when the API acknowledges without a body.
func (g *reservationGateway) patch(ctx context.Context, path string) (*appointment.Appointment, error) {
	var res resdto.AppointmentResponse
	if err := g.client.do(ctx, call{method: http.MethodPatch, path: path}, &res); err != nil {
		return nil, err
	}
	if res.ID == "" {
		return nil, nil
	}
	return g.toAppointment(res)
}

func (g *reservationGateway) toAppointment(res resdto.AppointmentResponse) (*appointment.Appointment, error) {
	appt, err := converter.AppointmentToDomain(res)
	if err != nil {
		return nil, infra.WrapGatewayErr(g.client.logger, infra.KindDecode, http.StatusOK, "invalid appointment", err)
	}
	return &appt, nil
}
