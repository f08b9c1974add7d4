package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cryptoetl/internal/db/models/postgres/public/model"
	. "cryptoetl/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

//go:generate mockgen -source=cryptocurrency_repository.go -destination=mock_cryptocurrency_repository.go -package=repository

// CryptocurrencyRepository maintains the cryptocurrencies dimension
type CryptocurrencyRepository interface {
	Upsert(ctx context.Context, tx *sql.Tx, rows []model.Cryptocurrencies) error
	Get(ctx context.Context, tx *sql.Tx, id string) (*model.Cryptocurrencies, error)
}

type cryptocurrencyRepositoryHandler struct{}

func NewCryptocurrencyRepository() CryptocurrencyRepository {
	return cryptocurrencyRepositoryHandler{}
}

// Upsert overwrites descriptive attributes on conflict. created_at keeps the
// value from the first insert.
func (h cryptocurrencyRepositoryHandler) Upsert(ctx context.Context, tx *sql.Tx, rows []model.Cryptocurrencies) error {
	if len(rows) == 0 {
		return nil
	}

	query := Cryptocurrencies.INSERT(
		Cryptocurrencies.ID,
		Cryptocurrencies.Symbol,
		Cryptocurrencies.Name,
		Cryptocurrencies.MaxSupply,
		Cryptocurrencies.Explorer,
	).MODELS(
		rows,
	).ON_CONFLICT(
		Cryptocurrencies.ID,
	).DO_UPDATE(
		postgres.SET(
			Cryptocurrencies.Symbol.SET(Cryptocurrencies.EXCLUDED.Symbol),
			Cryptocurrencies.Name.SET(Cryptocurrencies.EXCLUDED.Name),
			Cryptocurrencies.MaxSupply.SET(Cryptocurrencies.EXCLUDED.MaxSupply),
			Cryptocurrencies.Explorer.SET(Cryptocurrencies.EXCLUDED.Explorer),
		),
	)

	_, err := query.ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to upsert %d cryptocurrencies: %w", len(rows), err)
	}

	return nil
}

func (h cryptocurrencyRepositoryHandler) Get(ctx context.Context, tx *sql.Tx, id string) (*model.Cryptocurrencies, error) {
	query := Cryptocurrencies.SELECT(
		Cryptocurrencies.AllColumns,
	).WHERE(
		Cryptocurrencies.ID.EQ(postgres.String(id)),
	)

	out := []model.Cryptocurrencies{}
	err := query.QueryContext(ctx, tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get cryptocurrency %s: %w", id, err)
	}
	if len(out) == 0 {
		return nil, nil
	}

	return &out[0], nil
}
