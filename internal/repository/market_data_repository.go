package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cryptoetl/internal/db/models/postgres/public/model"
	. "cryptoetl/internal/db/models/postgres/public/table"
)

//go:generate mockgen -source=market_data_repository.go -destination=mock_market_data_repository.go -package=repository

// MarketDataRepository appends to the crypto_market_data fact table
type MarketDataRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, rows []model.CryptoMarketData) (int64, error)
	ListLatest(ctx context.Context, tx *sql.Tx) ([]model.CryptoMarketData, error)
}

type marketDataRepositoryHandler struct{}

func NewMarketDataRepository() MarketDataRepository {
	return marketDataRepositoryHandler{}
}

// Insert adds the facts and returns how many were new. A fact already
// present for the same asset and timestamp is left untouched.
func (h marketDataRepositoryHandler) Insert(ctx context.Context, tx *sql.Tx, rows []model.CryptoMarketData) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := CryptoMarketData.INSERT(
		CryptoMarketData.AllColumns,
	).MODELS(
		rows,
	).ON_CONFLICT(
		CryptoMarketData.ID,
		CryptoMarketData.Timestamp,
	).DO_NOTHING()

	res, err := query.ExecContext(ctx, tx)
	if err != nil {
		return 0, fmt.Errorf("failed to insert %d market data rows: %w", len(rows), err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count inserted market data rows: %w", err)
	}

	return inserted, nil
}

// ListLatest returns every fact at the newest timestamp in the table
func (h marketDataRepositoryHandler) ListLatest(ctx context.Context, tx *sql.Tx) ([]model.CryptoMarketData, error) {
	query := `
		SELECT id, price_usd, market_cap_usd, volume_usd_24hr, change_percent_24hr,
			vwap_24hr, supply, timestamp
		FROM crypto_market_data
		WHERE timestamp = (SELECT MAX(timestamp) FROM crypto_market_data)
		ORDER BY id
	`
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest market data: %w", err)
	}
	defer rows.Close()

	out := []model.CryptoMarketData{}
	for rows.Next() {
		m := model.CryptoMarketData{}
		err = rows.Scan(
			&m.ID,
			&m.PriceUsd,
			&m.MarketCapUsd,
			&m.VolumeUsd24hr,
			&m.ChangePercent24hr,
			&m.Vwap24hr,
			&m.Supply,
			&m.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan market data row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read latest market data: %w", err)
	}

	return out, nil
}
