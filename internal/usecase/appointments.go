package usecase

import (
	"context"
	"log/slog"
	"slices"

	"vitta-booking/internal/domain/appointment"
	"vitta-booking/internal/pkg/errs"
)

var (
	ErrAppointmentNotFound = errs.ErrAppointmentNotFound
	ErrActionNotAllowed    = errs.ErrActionNotAllowed
)

// AppointmentBook is the local read model behind the user and provider
// appointment lists. Status changes are applied only after the gateway
// acknowledges them.
type AppointmentBook struct {
	reservations ReservationGateway
	owner        appointment.Owner
	items        []appointment.Appointment
	logger       *slog.Logger
}

func NewAppointmentBook(reservations ReservationGateway, owner appointment.Owner, logger *slog.Logger) *AppointmentBook {
	return &AppointmentBook{
		reservations: reservations,
		owner:        owner,
		logger:       logger.With(slog.String("owner_kind", string(owner.Kind)), slog.String("owner_id", owner.ID)),
	}
}

func (b *AppointmentBook) Owner() appointment.Owner {
	return b.owner
}

func (b *AppointmentBook) Load(ctx context.Context) error {
	if !b.owner.Kind.IsValid() {
		return errs.Mark(errs.New("unknown appointment owner kind: "+string(b.owner.Kind)), errs.ErrLoadFailed)
	}

	var (
		items []appointment.Appointment
		err   error
	)
	switch b.owner.Kind {
	case appointment.OwnerUser:
		items, err = b.reservations.AppointmentsByUser(ctx, b.owner.ID)
	case appointment.OwnerProvider:
		items, err = b.reservations.AppointmentsByProvider(ctx, b.owner.ID)
	}
	if err != nil {
		b.logger.Warn("failed to load appointments", "error", err)
		return errs.Mark(errs.Wrap(err, "failed to load appointments"), errs.ErrLoadFailed)
	}

	b.items = items
	return nil
}

func (b *AppointmentBook) Appointments() []appointment.Appointment {
	return slices.Clone(b.items)
}

func (b *AppointmentBook) Get(id string) (appointment.Appointment, error) {
	idx := b.indexOf(id)
	if idx < 0 {
		return appointment.Appointment{}, errs.ErrAppointmentNotFound
	}
	return b.items[idx], nil
}

func (b *AppointmentBook) Actions(id string) ([]appointment.Action, error) {
	appt, err := b.Get(id)
	if err != nil {
		return nil, err
	}
	return appt.Actions(b.owner.Kind), nil
}

func (b *AppointmentBook) Cancel(ctx context.Context, id string) error {
	return b.apply(ctx, id, appointment.ActionCancel, appointment.StatusCancelled, b.reservations.CancelAppointment)
}

func (b *AppointmentBook) Confirm(ctx context.Context, id string) error {
	return b.apply(ctx, id, appointment.ActionConfirm, appointment.StatusConfirmed, b.reservations.ConfirmAppointment)
}

func (b *AppointmentBook) apply(
	ctx context.Context,
	id string,
	action appointment.Action,
	next appointment.Status,
	call func(ctx context.Context, id string) (*appointment.Appointment, error),
) error {
	idx := b.indexOf(id)
	if idx < 0 {
		return errs.ErrAppointmentNotFound
	}
	if !b.items[idx].Allows(b.owner.Kind, action) {
		return errs.ErrActionNotAllowed
	}

	if _, err := call(ctx, id); err != nil {
		b.logger.Warn("appointment update failed", "appointment_id", id, "action", string(action), "error", err)
		return errs.Mark(errs.Wrapf(err, "failed to %s appointment", action), errs.ErrMutationFailed)
	}

	b.items[idx].Status = next
	b.logger.Info("appointment updated", "appointment_id", id, "status", next.String())
	return nil
}

func (b *AppointmentBook) indexOf(id string) int {
	return slices.IndexFunc(b.items, func(a appointment.Appointment) bool {
		return a.ID == id
	})
}
