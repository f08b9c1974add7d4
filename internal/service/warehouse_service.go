package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cryptoetl/internal/db/models/postgres/public/model"
	"cryptoetl/internal/domain"
	"cryptoetl/internal/logger"
	"cryptoetl/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=warehouse_service.go -destination=mock_warehouse_service.go -package=service

type LoadResult struct {
	// Skipped is set when staging had nothing to transform
	Skipped       bool
	RowsRead      int
	Dimensions    int
	FactsInserted int64
	SummaryRows   int64
	HighWaterMark time.Time
	Stats         *domain.MarketStats
}

// WarehouseService moves staged rows into the dimension, fact and summary
// tables
type WarehouseService interface {
	TransformAndLoad(ctx context.Context, stagingTx *sql.Tx, warehouseTx *sql.Tx, runID uuid.UUID) (*LoadResult, error)
}

func NewWarehouseService(
	pipelineName string,
	incremental bool,
	stagingRepository repository.StagingRepository,
	cryptocurrencyRepository repository.CryptocurrencyRepository,
	marketDataRepository repository.MarketDataRepository,
	summaryRepository repository.SummaryRepository,
	checkpointRepository repository.CheckpointRepository,
	log *logger.Log,
) WarehouseService {
	return warehouseServiceHandler{
		PipelineName:             pipelineName,
		Incremental:              incremental,
		StagingRepository:        stagingRepository,
		CryptocurrencyRepository: cryptocurrencyRepository,
		MarketDataRepository:     marketDataRepository,
		SummaryRepository:        summaryRepository,
		CheckpointRepository:     checkpointRepository,
		Log:                      log,
	}
}

type warehouseServiceHandler struct {
	PipelineName             string
	Incremental              bool
	StagingRepository        repository.StagingRepository
	CryptocurrencyRepository repository.CryptocurrencyRepository
	MarketDataRepository     repository.MarketDataRepository
	SummaryRepository        repository.SummaryRepository
	CheckpointRepository     repository.CheckpointRepository
	Log                      *logger.Log
}

// TransformAndLoad writes only through warehouseTx. The caller commits or
// rolls it back as one unit.
func (h warehouseServiceHandler) TransformAndLoad(ctx context.Context, stagingTx *sql.Tx, warehouseTx *sql.Tx, runID uuid.UUID) (*LoadResult, error) {
	log := h.Log.WithComponent("warehouse").WithFields(logger.Fields{
		"run_id":      runID.String(),
		"incremental": h.Incremental,
	})

	checkpoint, err := h.CheckpointRepository.Get(ctx, warehouseTx, h.PipelineName)
	if err != nil {
		return nil, err
	}

	rows, err := h.readStaging(ctx, stagingTx, checkpoint)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		log.Warn("no staging rows to transform")
		return &LoadResult{Skipped: true}, nil
	}
	log.WithFields(logger.DataFlow("crypto_raw", "memory", len(rows))).Info("data flow")

	dims, facts := domain.Project(rows)

	if err := h.CryptocurrencyRepository.Upsert(ctx, warehouseTx, dims); err != nil {
		return nil, err
	}
	log.WithFields(logger.DataFlow("crypto_raw", "cryptocurrencies", len(dims))).Info("data flow")

	inserted, err := h.MarketDataRepository.Insert(ctx, warehouseTx, facts)
	if err != nil {
		return nil, err
	}
	log.WithFields(logger.DataFlow("crypto_raw", "crypto_market_data", int(inserted))).Info("data flow")
	if skipped := int64(len(facts)) - inserted; skipped > 0 {
		log.WithFields(logger.Fields{"duplicates": skipped}).Info("skipped facts already in the warehouse")
	}

	summaryRows, err := h.SummaryRepository.Rebuild(ctx, warehouseTx)
	if err != nil {
		return nil, err
	}
	log.WithFields(logger.DataFlow("crypto_market_data", "crypto_powerbi_summary", int(summaryRows))).Info("data flow")

	hwm := maxTimestamp(rows)
	err = h.CheckpointRepository.Save(ctx, warehouseTx, model.EtlCheckpoint{
		PipelineName: h.PipelineName,
		LastStagedAt: hwm,
		LastRunID:    runID,
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	latest, err := h.MarketDataRepository.ListLatest(ctx, warehouseTx)
	if err != nil {
		return nil, err
	}
	stats, err := domain.NewMarketStats(latest)
	if err != nil {
		return nil, fmt.Errorf("failed to compute market stats: %w", err)
	}

	return &LoadResult{
		RowsRead:      len(rows),
		Dimensions:    len(dims),
		FactsInserted: inserted,
		SummaryRows:   summaryRows,
		HighWaterMark: hwm,
		Stats:         stats,
	}, nil
}

func (h warehouseServiceHandler) readStaging(ctx context.Context, tx *sql.Tx, checkpoint *model.EtlCheckpoint) ([]model.CryptoRaw, error) {
	if !h.Incremental || checkpoint == nil {
		return h.StagingRepository.List(ctx, tx)
	}
	return h.StagingRepository.ListSince(ctx, tx, checkpoint.LastStagedAt)
}

func maxTimestamp(rows []model.CryptoRaw) time.Time {
	out := time.Time{}
	for _, r := range rows {
		if r.Timestamp.After(out) {
			out = r.Timestamp
		}
	}
	return out
}
