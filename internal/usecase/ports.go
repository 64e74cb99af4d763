package usecase

import (
	"context"

	"vitta-booking/internal/domain/appointment"
	"vitta-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/mock_ports.go -package=usecasemock

// AvailabilityGateway answers which hours a professional has open on a date.
// Implementations must be safe to call repeatedly for the same pair and must
// return an error, not an empty slice, when availability could not be determined.
type AvailabilityGateway interface {
	AvailableHours(ctx context.Context, professionalID string, date appointment.DateKey) ([]appointment.AvailableHour, error)
}

// ReservationGateway owns appointments once they are submitted. Listing
// operations return an empty slice when the API reports not found.
type ReservationGateway interface {
	CreateAppointment(ctx context.Context, req appointment.Request, idempotencyKey uuid.UUID) (*appointment.Appointment, error)
	AppointmentsByUser(ctx context.Context, userID string) ([]appointment.Appointment, error)
	AppointmentsByProvider(ctx context.Context, providerID string) ([]appointment.Appointment, error)
	CancelAppointment(ctx context.Context, id string) (*appointment.Appointment, error)
	ConfirmAppointment(ctx context.Context, id string) (*appointment.Appointment, error)
}

type ProviderDirectory interface {
	ProviderByID(ctx context.Context, id string) (*readmodel.ProviderRM, error)
}
