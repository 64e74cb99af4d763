package cli

import (
	"errors"
	"fmt"

	"vitta-booking/internal/domain/appointment"
	"vitta-booking/internal/usecase"

	"github.com/charmbracelet/huh"
)

type AppointmentsListCmd struct {
	OwnerFlags `embed:""`
}

func (c *AppointmentsListCmd) Run(ctx *Context) error {
	book, err := c.load(ctx)
	if err != nil {
		return err
	}

	items := book.Appointments()
	if len(items) == 0 {
		ctx.printf("No appointments.\n")
		return nil
	}
	for _, a := range items {
		ctx.printf("%s\n", formatAppointment(a, book.Owner().Kind))
	}
	return nil
}

type AppointmentsCancelCmd struct {
	ID         string `arg:"" help:"Appointment id."`
	OwnerFlags `embed:""`
	Yes        bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *AppointmentsCancelCmd) Run(ctx *Context) error {
	return mutate(ctx, c.OwnerFlags, c.ID, appointment.ActionCancel, c.Yes)
}

type AppointmentsConfirmCmd struct {
	ID       string `arg:"" help:"Appointment id."`
	Provider string `help:"Provider confirming the appointment." required:""`
	Yes      bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *AppointmentsConfirmCmd) Run(ctx *Context) error {
	return mutate(ctx, OwnerFlags{Provider: c.Provider}, c.ID, appointment.ActionConfirm, c.Yes)
}

func (f OwnerFlags) load(ctx *Context) (*usecase.AppointmentBook, error) {
	owner, err := f.Owner()
	if err != nil {
		return nil, err
	}
	book := usecase.NewAppointmentBook(ctx.Reservations, owner, ctx.Logger)
	if err := book.Load(ctx.Ctx); err != nil {
		return nil, errors.New(ctx.notice(err))
	}
	return book, nil
}

func mutate(ctx *Context, flags OwnerFlags, id string, action appointment.Action, skipPrompt bool) error {
	book, err := flags.load(ctx)
	if err != nil {
		return err
	}

	appt, err := book.Get(id)
	if err != nil {
		return errors.New(ctx.notice(err))
	}
	if !appt.Allows(book.Owner().Kind, action) {
		return errors.New(ctx.notice(usecase.ErrActionNotAllowed))
	}

	if !skipPrompt {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("%s the appointment on %s at %s?", actionTitle(action), appt.Date, appt.Time)).
					Affirmative("Yes").
					Negative("No").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
		if !confirmed {
			ctx.printf("Nothing changed.\n")
			return nil
		}
	}

	switch action {
	case appointment.ActionCancel:
		err = book.Cancel(ctx.Ctx, id)
	case appointment.ActionConfirm:
		err = book.Confirm(ctx.Ctx, id)
	}
	if err != nil {
		return errors.New(ctx.notice(err))
	}

	updated, err := book.Get(id)
	if err != nil {
		return errors.New(ctx.notice(err))
	}
	ctx.printf("%s\n", formatAppointment(updated, book.Owner().Kind))
	return nil
}

func actionTitle(action appointment.Action) string {
	switch action {
	case appointment.ActionConfirm:
		return "Confirm"
	default:
		return "Cancel"
	}
}
