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
	failed := false

	for _, target := range []struct {
		name string
		cfg  string
		err  error
	}{
		{"staging", cfg.Staging.Name, db.Ping(ctx, a.StagingDB)},
		{"warehouse", cfg.Warehouse.Name, db.Ping(ctx, a.WarehouseDB)},
	} {
		entry := log.WithFields(logger.Fields{"target": target.name, "database": target.cfg})
		if target.err != nil {
			entry.WithError(target.err).Error("connection failed")
			failed = true
			continue
		}
		entry.Info("connection ok")
	}

	if failed {
		a.Close()
		os.Exit(1)
	}
}
