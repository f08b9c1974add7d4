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
	"cryptoetl/internal/scheduler"

	"golang.org/x/sync/errgroup"
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

	s := scheduler.New(cfg.Scheduler, pipeline, log)
	r := resolver.NewResolver(
		a.StagingDB,
		a.WarehouseDB,
		cfg.Pipeline.Name,
		repository.NewSummaryRepository(),
		repository.NewMarketDataRepository(),
		repository.NewCheckpointRepository(),
		s,
	)
	router := api.NewRouter(r, a.Metrics.Handler(), log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Start(gctx)
	})
	g.Go(func() error {
		log.WithFields(logger.Fields{"port": cfg.Api.Port}).Info("api listening")
		return api.Serve(gctx, cfg.Api.Port, router)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("scheduler exited")
		a.Close()
		os.Exit(1)
	}
	log.Info("scheduler stopped")
}
