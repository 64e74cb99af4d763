package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"vitta-booking/internal/domain/appointment"
	"vitta-booking/internal/usecase"
)

type Context struct {
	Ctx          context.Context
	Booking      *usecase.BookingService
	Reservations usecase.ReservationGateway
	Logger       *slog.Logger
	Out          io.Writer
}

func NewContext(booking *usecase.BookingService, reservations usecase.ReservationGateway, logger *slog.Logger) *Context {
	return &Context{
		Ctx:          context.Background(),
		Booking:      booking,
		Reservations: reservations,
		Logger:       logger,
		Out:          os.Stdout,
	}
}

func (c *Context) notice(err error) string {
	return usecase.Notice(err, c.Booking.MaxPerMonth())
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// OwnerFlags picks whose appointments a command acts on.
type OwnerFlags struct {
	User     string `help:"Act on this user's appointments." xor:"owner"`
	Provider string `help:"Act on this provider's appointments." xor:"owner"`
}

func (f OwnerFlags) Owner() (appointment.Owner, error) {
	switch {
	case f.User != "" && f.Provider == "":
		return appointment.Owner{Kind: appointment.OwnerUser, ID: f.User}, nil
	case f.Provider != "" && f.User == "":
		return appointment.Owner{Kind: appointment.OwnerProvider, ID: f.Provider}, nil
	default:
		return appointment.Owner{}, fmt.Errorf("exactly one of --user or --provider is required")
	}
}

func formatAppointment(a appointment.Appointment, kind appointment.OwnerKind) string {
	counterpart := a.Professional.Name
	if kind == appointment.OwnerProvider {
		counterpart = a.User.Name
	}
	if counterpart == "" {
		counterpart = "-"
	}
	return fmt.Sprintf("%-38s %s %s  %-10s %s", a.ID, a.Date, a.Time, a.Status, counterpart)
}
