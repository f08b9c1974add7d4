// Package app wires configuration, connections and services for the binaries
package app

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"

	"cryptoetl/internal/archive"
	"cryptoetl/internal/coincap"
	"cryptoetl/internal/config"
	db "cryptoetl/internal/db/query"
	"cryptoetl/internal/logger"
	"cryptoetl/internal/metrics"
	"cryptoetl/internal/repository"
	"cryptoetl/internal/service"

	"github.com/joho/godotenv"
)

type App struct {
	Config      *config.Config
	Log         *logger.Log
	StagingDB   *sql.DB
	WarehouseDB *sql.DB
	Metrics     *metrics.Metrics
}

// Bootstrap loads .env, parses -config, reads configuration and configures
// the global logger
func Bootstrap() (*config.Config, *logger.Log, error) {
	log := logger.GetLogger()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("error loading .env file")
	}

	configPath := flag.String("config", "config.yml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, log, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := log.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.MaxAge); err != nil {
		return nil, log, fmt.Errorf("failed to configure logger: %w", err)
	}

	return cfg, log, nil
}

func Open(cfg *config.Config, log *logger.Log) (*App, error) {
	stagingDB, err := db.New(cfg.Staging)
	if err != nil {
		return nil, err
	}
	warehouseDB, err := db.New(cfg.Warehouse)
	if err != nil {
		stagingDB.Close()
		return nil, err
	}

	return &App{
		Config:      cfg,
		Log:         log,
		StagingDB:   stagingDB,
		WarehouseDB: warehouseDB,
		Metrics:     metrics.New(),
	}, nil
}

func (a *App) Close() {
	a.StagingDB.Close()
	a.WarehouseDB.Close()
}

func (a *App) NewPipeline(ctx context.Context) (service.PipelineService, error) {
	archiver, err := archive.New(ctx, a.Config.Archive)
	if err != nil {
		return nil, err
	}

	client := coincap.Client{
		HttpClient: &http.Client{Timeout: a.Config.CoinCap.Timeout},
		BaseURL:    a.Config.CoinCap.BaseURL,
		ApiKey:     a.Config.CoinCap.ApiKey,
	}

	stagingRepository := repository.NewStagingRepository()
	warehouseService := service.NewWarehouseService(
		a.Config.Pipeline.Name,
		a.Config.Pipeline.Incremental,
		stagingRepository,
		repository.NewCryptocurrencyRepository(),
		repository.NewMarketDataRepository(),
		repository.NewSummaryRepository(),
		repository.NewCheckpointRepository(),
		a.Log,
	)

	return service.NewPipelineService(
		a.Config.Pipeline,
		a.StagingDB,
		a.WarehouseDB,
		client,
		archiver,
		service.NewStagingService(stagingRepository),
		warehouseService,
		a.Metrics,
		a.Log,
	), nil
}
