package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cryptoetl/internal/db/models/postgres/public/model"
	. "cryptoetl/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

//go:generate mockgen -source=checkpoint_repository.go -destination=mock_checkpoint_repository.go -package=repository

// CheckpointRepository stores the staging high-water mark per pipeline
type CheckpointRepository interface {
	Get(ctx context.Context, tx *sql.Tx, pipelineName string) (*model.EtlCheckpoint, error)
	Save(ctx context.Context, tx *sql.Tx, checkpoint model.EtlCheckpoint) error
}

type checkpointRepositoryHandler struct{}

func NewCheckpointRepository() CheckpointRepository {
	return checkpointRepositoryHandler{}
}

// Get returns nil when the pipeline has never completed a run
func (h checkpointRepositoryHandler) Get(ctx context.Context, tx *sql.Tx, pipelineName string) (*model.EtlCheckpoint, error) {
	query := EtlCheckpoint.SELECT(
		EtlCheckpoint.AllColumns,
	).WHERE(
		EtlCheckpoint.PipelineName.EQ(postgres.String(pipelineName)),
	)

	out := []model.EtlCheckpoint{}
	err := query.QueryContext(ctx, tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkpoint for %s: %w", pipelineName, err)
	}
	if len(out) == 0 {
		return nil, nil
	}

	return &out[0], nil
}

func (h checkpointRepositoryHandler) Save(ctx context.Context, tx *sql.Tx, checkpoint model.EtlCheckpoint) error {
	query := EtlCheckpoint.INSERT(
		EtlCheckpoint.AllColumns,
	).MODEL(
		checkpoint,
	).ON_CONFLICT(
		EtlCheckpoint.PipelineName,
	).DO_UPDATE(
		postgres.SET(
			EtlCheckpoint.LastStagedAt.SET(EtlCheckpoint.EXCLUDED.LastStagedAt),
			EtlCheckpoint.LastRunID.SET(EtlCheckpoint.EXCLUDED.LastRunID),
			EtlCheckpoint.UpdatedAt.SET(EtlCheckpoint.EXCLUDED.UpdatedAt),
		),
	)

	_, err := query.ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to save checkpoint for %s: %w", checkpoint.PipelineName, err)
	}

	return nil
}
