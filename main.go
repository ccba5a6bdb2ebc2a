package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/carson-networks/moneywiz-decoder/internal/commands"
	"github.com/carson-networks/moneywiz-decoder/internal/logging"
)

func main() {
	logger := logging.SetupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := commands.App{Logger: logger}
	if err := app.CLI().RunContext(ctx, os.Args); err != nil {
		logger.WithError(err).Error("moneywiz-decoder")
		stop()
		os.Exit(1)
	}
}
