package main

import (
	"context"
	"os"

	"cryptoetl/internal/app"
	db "cryptoetl/internal/db/query"
	"cryptoetl/internal/logger"
)

func main() {
	cfg, log, err := app.Bootstrap()
	if err != nil {
		log.WithError(err).Error("failed to start")
		os.Exit(1)
	}

	a, err := app.Open(cfg, log)
	if err != nil {
		log.WithError(err).Error("failed to open databases")
		os.Exit(1)
	}
	defer a.Close()

	ctx := context.Background()

	if err := db.CreateStagingTables(ctx, a.StagingDB); err != nil {
		log.WithError(err).Error("failed to create staging tables")
		a.Close()
		os.Exit(1)
	}
	log.WithFields(logger.Fields{"database": cfg.Staging.Name}).Info("staging tables ready")

	if err := db.CreateWarehouseTables(ctx, a.WarehouseDB); err != nil {
		log.WithError(err).Error("failed to create warehouse tables")
		a.Close()
		os.Exit(1)
	}
	log.WithFields(logger.Fields{"database": cfg.Warehouse.Name}).Info("warehouse tables ready")
}
