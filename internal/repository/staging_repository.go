package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cryptoetl/internal/db/models/postgres/public/model"
	. "cryptoetl/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

//go:generate mockgen -source=staging_repository.go -destination=mock_staging_repository.go -package=repository

// StagingRepository reads and writes the crypto_raw landing table
type StagingRepository interface {
	Upsert(ctx context.Context, tx *sql.Tx, row model.CryptoRaw) error
	Get(ctx context.Context, tx *sql.Tx, id string) (*model.CryptoRaw, error)
	List(ctx context.Context, tx *sql.Tx) ([]model.CryptoRaw, error)
	ListSince(ctx context.Context, tx *sql.Tx, since time.Time) ([]model.CryptoRaw, error)
}

type stagingRepositoryHandler struct{}

func NewStagingRepository() StagingRepository {
	return stagingRepositoryHandler{}
}

// Upsert inserts the row, or overwrites every non-key column when the id
// is already staged.
func (h stagingRepositoryHandler) Upsert(ctx context.Context, tx *sql.Tx, row model.CryptoRaw) error {
	query := CryptoRaw.INSERT(
		CryptoRaw.AllColumns,
	).MODEL(
		row,
	).ON_CONFLICT(
		CryptoRaw.ID,
	).DO_UPDATE(
		postgres.SET(
			CryptoRaw.Symbol.SET(CryptoRaw.EXCLUDED.Symbol),
			CryptoRaw.Name.SET(CryptoRaw.EXCLUDED.Name),
			CryptoRaw.MaxSupply.SET(CryptoRaw.EXCLUDED.MaxSupply),
			CryptoRaw.Explorer.SET(CryptoRaw.EXCLUDED.Explorer),
			CryptoRaw.PriceUsd.SET(CryptoRaw.EXCLUDED.PriceUsd),
			CryptoRaw.MarketCapUsd.SET(CryptoRaw.EXCLUDED.MarketCapUsd),
			CryptoRaw.VolumeUsd24hr.SET(CryptoRaw.EXCLUDED.VolumeUsd24hr),
			CryptoRaw.ChangePercent24hr.SET(CryptoRaw.EXCLUDED.ChangePercent24hr),
			CryptoRaw.Vwap24hr.SET(CryptoRaw.EXCLUDED.Vwap24hr),
			CryptoRaw.Supply.SET(CryptoRaw.EXCLUDED.Supply),
			CryptoRaw.Timestamp.SET(CryptoRaw.EXCLUDED.Timestamp),
		),
	)

	_, err := query.ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to upsert staging row %s: %w", row.ID, err)
	}

	return nil
}

func (h stagingRepositoryHandler) Get(ctx context.Context, tx *sql.Tx, id string) (*model.CryptoRaw, error) {
	query := CryptoRaw.SELECT(
		CryptoRaw.AllColumns,
	).WHERE(
		CryptoRaw.ID.EQ(postgres.String(id)),
	)

	out := []model.CryptoRaw{}
	err := query.QueryContext(ctx, tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get staging row %s: %w", id, err)
	}
	if len(out) == 0 {
		return nil, nil
	}

	return &out[0], nil
}

func (h stagingRepositoryHandler) List(ctx context.Context, tx *sql.Tx) ([]model.CryptoRaw, error) {
	query := CryptoRaw.SELECT(
		CryptoRaw.AllColumns,
	).ORDER_BY(
		CryptoRaw.ID.ASC(),
	)

	out := []model.CryptoRaw{}
	err := query.QueryContext(ctx, tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list staging rows: %w", err)
	}

	return out, nil
}

// ListSince returns rows staged strictly after since
func (h stagingRepositoryHandler) ListSince(ctx context.Context, tx *sql.Tx, since time.Time) ([]model.CryptoRaw, error) {
	query := CryptoRaw.SELECT(
		CryptoRaw.AllColumns,
	).WHERE(
		CryptoRaw.Timestamp.GT(postgres.TimestampzT(since)),
	).ORDER_BY(
		CryptoRaw.ID.ASC(),
	)

	out := []model.CryptoRaw{}
	err := query.QueryContext(ctx, tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list staging rows since %s: %w", since.Format(time.RFC3339Nano), err)
	}

	return out, nil
}
