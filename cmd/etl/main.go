package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cryptoetl/internal/app"
)

func main() {
	cfg, log, err := app.Bootstrap()
	if err != nil {
		log.WithError(err).Error("failed to start")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Open(cfg, log)
	if err != nil {
		log.WithError(err).Error("failed to open databases")
		os.Exit(1)
	}
	defer a.Close()

	pipeline, err := a.NewPipeline(ctx)
	if err != nil {
		log.WithError(err).Error("failed to build pipeline")
		os.Exit(1)
	}

	if _, err := pipeline.Run(ctx); err != nil {
		// the pipeline already logged the failure with its run id
		a.Close()
		os.Exit(1)
	}
}
