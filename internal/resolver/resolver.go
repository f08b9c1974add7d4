package resolver

import (
	"context"
	"database/sql"
	"errors"

	api_types "cryptoetl/api-types"
	"cryptoetl/internal/repository"
)

//go:generate mockgen -source=resolver.go -destination=mock_resolver.go -package=resolver

var ErrNoCompletedRun = errors.New("pipeline has not completed a run yet")

type Resolver interface {
	GetSummary(ctx context.Context) (*api_types.GetSummaryResponse, error)
	GetMarketStats(ctx context.Context) (*api_types.GetMarketStatsResponse, error)
	GetLatestRun(ctx context.Context) (*api_types.GetLatestRunResponse, error)
	// Health reports ok=false when a database cannot be reached
	Health(ctx context.Context) (*api_types.HealthResponse, bool)
}

type resolverHandler struct {
	StagingDb            *sql.DB
	WarehouseDb          *sql.DB
	PipelineName         string
	SummaryRepository    repository.SummaryRepository
	MarketDataRepository repository.MarketDataRepository
	CheckpointRepository repository.CheckpointRepository
	Scheduler            StatsProvider
}

// NewResolver accepts a nil scheduler for processes that only serve reads
func NewResolver(
	stagingDb *sql.DB,
	warehouseDb *sql.DB,
	pipelineName string,
	summaryRepository repository.SummaryRepository,
	marketDataRepository repository.MarketDataRepository,
	checkpointRepository repository.CheckpointRepository,
	scheduler StatsProvider,
) Resolver {
	return resolverHandler{
		StagingDb:            stagingDb,
		WarehouseDb:          warehouseDb,
		PipelineName:         pipelineName,
		SummaryRepository:    summaryRepository,
		MarketDataRepository: marketDataRepository,
		CheckpointRepository: checkpointRepository,
		Scheduler:            scheduler,
	}
}
