package cli

import (
	"strings"
)

type DaysCmd struct {
	Provider string `help:"Provider id; required with --hours."`
	User     string `help:"User id, to show how many appointments are left this month."`
	Hours    bool   `help:"Also fetch the open times for each day."`
}

func (c *DaysCmd) Run(ctx *Context) error {
	session, loadErr := ctx.Booking.OpenSession(ctx.Ctx, c.Provider, c.User)
	if loadErr != nil {
		ctx.printf("warning: %s\n", ctx.notice(loadErr))
	}

	rules := session.Rules()
	days := session.Days()
	if c.User != "" {
		ctx.printf("Appointments this month: %d/%d\n\n", session.ActiveThisMonth(), rules.MaxPerMonth())
	}
	if len(days) == 0 {
		ctx.printf("No bookable days left this month.\n")
		return nil
	}

	for _, day := range days {
		line := day.Midnight(rules.Location()).Format("Mon 02 Jan 2006")
		if !c.Hours || c.Provider == "" {
			ctx.printf("%s\n", line)
			continue
		}

		if err := session.ToggleDate(ctx.Ctx, day); err != nil {
			ctx.printf("%s  %s\n", line, ctx.notice(err))
			continue
		}
		var hours []string
		for _, h := range session.State().Hours {
			hours = append(hours, h.String())
		}
		if len(hours) == 0 {
			hours = []string{"-"}
		}
		ctx.printf("%s  %s\n", line, strings.Join(hours, " "))

		if err := session.Deselect(); err != nil {
			return err
		}
	}
	return nil
}
