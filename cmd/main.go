package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"vitta-booking/cmd/bootstrap"
	"vitta-booking/internal/handler/cli"

	"github.com/alecthomas/kong"
	"go.uber.org/fx"
)

var CLI struct {
	Book         cli.BookCmd `cmd:"" help:"Pick a day and time and book an appointment."`
	Days         cli.DaysCmd `cmd:"" help:"List the days that can still be booked this month."`
	Appointments struct {
		List    cli.AppointmentsListCmd    `cmd:"" help:"List appointments of a user or provider."`
		Cancel  cli.AppointmentsCancelCmd  `cmd:"" help:"Cancel a pending or confirmed appointment."`
		Confirm cli.AppointmentsConfirmCmd `cmd:"" help:"Confirm a pending appointment as the provider."`
	} `cmd:"" help:"Manage booked appointments."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("vitta-booking"),
		kong.Description("Book appointments with marketplace providers"),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var appCtx *cli.Context
	app := fx.New(
		bootstrap.Module,
		fx.NopLogger,
		fx.Populate(&appCtx),
	)

	if err := app.Start(ctx); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		os.Exit(1)
	}
	appCtx.Ctx = ctx

	runErr := kctx.Run(appCtx)

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
