package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cryptoetl/api"
	"cryptoetl/internal/app"
	"cryptoetl/internal/logger"
	"cryptoetl/internal/repository"
	"cryptoetl/internal/resolver"
)

// serves the reporting endpoints without running the pipeline
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

	r := resolver.NewResolver(
		a.StagingDB,
		a.WarehouseDB,
		cfg.Pipeline.Name,
		repository.NewSummaryRepository(),
		repository.NewMarketDataRepository(),
		repository.NewCheckpointRepository(),
		nil,
	)

	log.WithFields(logger.Fields{"port": cfg.Api.Port}).Info("api listening")
	if err := api.Serve(ctx, cfg.Api.Port, api.NewRouter(r, a.Metrics.Handler(), log)); err != nil {
		log.WithError(err).Error("api exited")
		a.Close()
		os.Exit(1)
	}
}
