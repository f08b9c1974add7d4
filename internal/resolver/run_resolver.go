package resolver

import (
	"context"
	"database/sql"

	api_types "cryptoetl/api-types"
	db "cryptoetl/internal/db/query"
)

func (r resolverHandler) GetLatestRun(ctx context.Context) (*api_types.GetLatestRunResponse, error) {
	tx, err := r.WarehouseDb.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	checkpoint, err := r.CheckpointRepository.Get(ctx, tx, r.PipelineName)
	if err != nil {
		return nil, err
	}
	if checkpoint == nil {
		return nil, ErrNoCompletedRun
	}

	return &api_types.GetLatestRunResponse{
		PipelineName: checkpoint.PipelineName,
		RunID:        checkpoint.LastRunID.String(),
		LastStagedAt: checkpoint.LastStagedAt,
		UpdatedAt:    checkpoint.UpdatedAt,
	}, nil
}

func (r resolverHandler) Health(ctx context.Context) (*api_types.HealthResponse, bool) {
	out := &api_types.HealthResponse{
		Status:    "ok",
		Databases: map[string]string{},
	}
	healthy := true

	for name, conn := range map[string]*sql.DB{"staging": r.StagingDb, "warehouse": r.WarehouseDb} {
		if err := db.Ping(ctx, conn); err != nil {
			out.Databases[name] = err.Error()
			healthy = false
			continue
		}
		out.Databases[name] = "ok"
	}
	if !healthy {
		out.Status = "degraded"
	}

	if r.Scheduler != nil {
		stats := r.Scheduler.Stats()
		out.Scheduler = &api_types.SchedulerStatus{
			Runs:      stats.Runs,
			Failures:  stats.Failures,
			Overlaps:  stats.Overlaps,
			LastRunID: stats.LastRunID,
			LastError: stats.LastError,
		}
		if !stats.LastSuccess.IsZero() {
			out.Scheduler.LastSuccess = &stats.LastSuccess
		}
	}

	return out, healthy
}
