package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	etl_errors "cryptoetl/internal"
	"cryptoetl/internal/archive"
	"cryptoetl/internal/coincap"
	"cryptoetl/internal/config"
	db "cryptoetl/internal/db/query"
	"cryptoetl/internal/logger"
	"cryptoetl/internal/metrics"
	"cryptoetl/internal/util"

	"github.com/google/uuid"
)

//go:generate mockgen -source=pipeline_service.go -destination=mock_pipeline_service.go -package=service

type RunResult struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	Duration   time.Duration
	Extracted  int
	Staged     int
	ArchiveKey string
	Load       *LoadResult
}

// PipelineService runs extract, staging and warehouse load end to end
type PipelineService interface {
	Run(ctx context.Context) (*RunResult, error)
}

type lockFunc func(ctx context.Context) (release func() error, acquired bool, err error)

func NewPipelineService(
	cfg config.PipelineConfig,
	stagingDB *sql.DB,
	warehouseDB *sql.DB,
	assetClient coincap.AssetClient,
	archiver archive.Archiver,
	stagingService StagingService,
	warehouseService WarehouseService,
	m *metrics.Metrics,
	log *logger.Log,
) PipelineService {
	return pipelineServiceHandler{
		Config:           cfg,
		StagingDB:        stagingDB,
		WarehouseDB:      warehouseDB,
		AssetClient:      assetClient,
		Archiver:         archiver,
		StagingService:   stagingService,
		WarehouseService: warehouseService,
		Metrics:          m,
		Log:              log,
		tryLock: func(ctx context.Context) (func() error, bool, error) {
			return db.TryRunLock(ctx, warehouseDB, cfg.LockKey)
		},
	}
}

type pipelineServiceHandler struct {
	Config           config.PipelineConfig
	StagingDB        *sql.DB
	WarehouseDB      *sql.DB
	AssetClient      coincap.AssetClient
	Archiver         archive.Archiver
	StagingService   StagingService
	WarehouseService WarehouseService
	Metrics          *metrics.Metrics
	Log              *logger.Log

	tryLock lockFunc
}

// Run returns ErrRunInProgress without doing any work when another process
// holds the pipeline lock
func (h pipelineServiceHandler) Run(ctx context.Context) (*RunResult, error) {
	result := &RunResult{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
	}
	log := h.Log.WithComponent("pipeline").WithFields(logger.Fields{
		"run_id":   result.RunID.String(),
		"pipeline": h.Config.Name,
	})

	release, acquired, err := h.tryLock(ctx)
	if err != nil {
		h.finish(log, result, err)
		return nil, err
	}
	if !acquired {
		h.finish(log, result, etl_errors.ErrRunInProgress)
		return nil, etl_errors.ErrRunInProgress
	}
	defer func() {
		if err := release(); err != nil {
			log.WithError(err).Warn("failed to release pipeline lock")
		}
	}()

	log.Info("pipeline run started")
	err = h.run(ctx, log, result)
	h.finish(log, result, err)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (h pipelineServiceHandler) run(ctx context.Context, log *logger.Entry, result *RunResult) error {
	resp, err := h.AssetClient.GetAssets(ctx)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	result.Extracted = len(resp.Assets)
	h.Metrics.ObserveExtract(result.Extracted)
	log.WithFields(logger.DataFlow("coincap", "memory", result.Extracted)).Info("data flow")

	staged, err := h.stage(ctx, log, result, resp)
	if err != nil {
		return fmt.Errorf("staging load failed: %w", err)
	}
	result.Staged = staged
	h.Metrics.ObserveStaging(staged)
	log.WithFields(logger.DataFlow("coincap", "crypto_raw", staged)).Info("data flow")

	load, err := h.load(ctx, result.RunID)
	if err != nil {
		return fmt.Errorf("warehouse load failed: %w", err)
	}
	result.Load = load
	if !load.Skipped {
		h.Metrics.ObserveWarehouse(load.Dimensions, load.FactsInserted, load.SummaryRows)
	}

	return nil
}

// stage stamps the batch with the staging database clock, so high-water
// marks never mix host clocks.
func (h pipelineServiceHandler) stage(ctx context.Context, log *logger.Entry, result *RunResult, resp *coincap.AssetsResponse) (int, error) {
	tx, err := h.StagingDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin staging transaction: %w", err)
	}
	defer tx.Rollback()

	now, err := db.Now(ctx, tx)
	if err != nil {
		return 0, err
	}
	ingestedAt := util.IngestionTime(now)

	key, err := h.Archiver.Archive(ctx, result.RunID, ingestedAt, resp.Raw)
	if err != nil {
		log.WithError(err).Warn("failed to archive raw payload")
	} else if key != "" {
		result.ArchiveKey = key
		log.WithFields(logger.Fields{"key": key}).Info("archived raw payload")
	}

	staged, err := h.StagingService.Load(ctx, tx, resp.Assets, ingestedAt)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit staging transaction: %w", err)
	}
	return staged, nil
}

func (h pipelineServiceHandler) load(ctx context.Context, runID uuid.UUID) (*LoadResult, error) {
	stagingTx, err := h.StagingDB.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin staging read: %w", err)
	}
	defer stagingTx.Rollback()

	warehouseTx, err := h.WarehouseDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin warehouse transaction: %w", err)
	}
	defer warehouseTx.Rollback()

	load, err := h.WarehouseService.TransformAndLoad(ctx, stagingTx, warehouseTx, runID)
	if err != nil {
		return nil, err
	}

	if err := warehouseTx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit warehouse transaction: %w", err)
	}
	return load, nil
}

func (h pipelineServiceHandler) finish(log *logger.Entry, result *RunResult, err error) {
	result.Duration = time.Since(result.StartedAt)
	finishedAt := result.StartedAt.Add(result.Duration)

	switch {
	case err == etl_errors.ErrRunInProgress:
		h.Metrics.ObserveRun(metrics.StatusBusy, result.Duration, finishedAt)
		log.Warn("another run holds the pipeline lock")
	case err != nil:
		h.Metrics.ObserveRun(metrics.StatusFailed, result.Duration, finishedAt)
		log.WithError(err).Error("pipeline run failed")
	case result.Load != nil && result.Load.Skipped:
		h.Metrics.ObserveRun(metrics.StatusSkipped, result.Duration, finishedAt)
		log.WithFields(logger.Fields{
			"extracted": result.Extracted,
			"staged":    result.Staged,
			"duration":  result.Duration.String(),
		}).Warn("pipeline run finished without warehouse changes")
	default:
		h.Metrics.ObserveRun(metrics.StatusSuccess, result.Duration, finishedAt)
		fields := logger.Fields{
			"extracted":      result.Extracted,
			"staged":         result.Staged,
			"dimensions":     result.Load.Dimensions,
			"facts_inserted": result.Load.FactsInserted,
			"summary_rows":   result.Load.SummaryRows,
			"duration":       result.Duration.String(),
		}
		if s := result.Load.Stats; s != nil {
			fields["advancers"] = s.Advancers
			fields["decliners"] = s.Decliners
			fields["total_market_cap_usd"] = s.TotalMarketCapUsd.StringFixed(2)
			fields["median_change_percent"] = s.MedianChangePercent.AsPercent()
		}
		log.WithFields(fields).Info("pipeline run finished")
	}
}
