package cli

import (
	"errors"
	"fmt"

	"vitta-booking/internal/domain/appointment"
	"vitta-booking/internal/handler/tui"

	tea "github.com/charmbracelet/bubbletea"
)

type BookCmd struct {
	Provider string `help:"Provider id to book with." required:""`
	User     string `help:"Id of the user booking." required:""`
	Date     string `help:"Book this day directly (YYYY-MM-DD) instead of opening the TUI."`
	Time     string `help:"Time to book together with --date (HH:MM)."`
}

func (c *BookCmd) Run(ctx *Context) error {
	session, loadErr := ctx.Booking.OpenSession(ctx.Ctx, c.Provider, c.User)
	if loadErr != nil {
		ctx.Logger.Warn("booking session loaded partially", "error", loadErr)
	}

	if c.Date == "" && c.Time == "" {
		p := tea.NewProgram(
			tui.NewModel(ctx.Ctx, session, c.User, loadErr),
			tea.WithAltScreen(),
			tea.WithContext(ctx.Ctx),
		)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("booking TUI failed: %w", err)
		}
		return nil
	}

	if c.Date == "" || c.Time == "" {
		return fmt.Errorf("--date and --time must be given together")
	}
	if loadErr != nil {
		ctx.printf("warning: %s\n", ctx.notice(loadErr))
	}

	key, err := appointment.ParseDateKey(c.Date)
	if err != nil {
		return err
	}
	day, err := key.Day()
	if err != nil {
		return err
	}
	hour, err := appointment.ParseAvailableHour(c.Time)
	if err != nil {
		return err
	}

	if err := session.ToggleDate(ctx.Ctx, day); err != nil {
		return errors.New(ctx.notice(err))
	}
	if err := session.SelectHour(key, hour); err != nil {
		return errors.New(ctx.notice(err))
	}
	created, err := session.Submit(ctx.Ctx)
	if err != nil {
		return errors.New(ctx.notice(err))
	}

	if created == nil {
		ctx.printf("Appointment booked for %s at %s.\n", key, hour)
		return nil
	}
	ctx.printf("Appointment %s booked for %s at %s (%s).\n", created.ID, created.Date, created.Time, created.Status)
	return nil
}
