package repository

import (
	"context"
	"database/sql"
	"fmt"

	"cryptoetl/internal/db/models/postgres/public/model"
	. "cryptoetl/internal/db/models/postgres/public/table"
)

//go:generate mockgen -source=summary_repository.go -destination=mock_summary_repository.go -package=repository

// SummaryRepository owns the reporting snapshot in crypto_powerbi_summary
type SummaryRepository interface {
	Rebuild(ctx context.Context, tx *sql.Tx) (int64, error)
	List(ctx context.Context, tx *sql.Tx) ([]model.CryptoPowerbiSummary, error)
}

type summaryRepositoryHandler struct{}

func NewSummaryRepository() SummaryRepository {
	return summaryRepositoryHandler{}
}

// assets tied on price share a rank and the next rank is skipped
const rebuildSummaryQuery = `
	INSERT INTO crypto_powerbi_summary (id, rank, symbol, supply, price_usd, updated_at)
	SELECT
		m.id,
		RANK() OVER (ORDER BY m.price_usd DESC) AS rank,
		c.symbol,
		m.supply,
		m.price_usd,
		m.timestamp
	FROM crypto_market_data m
	JOIN cryptocurrencies c ON c.id = m.id
	WHERE m.timestamp = (SELECT MAX(timestamp) FROM crypto_market_data)
`

// Rebuild replaces the snapshot with the latest facts ranked by price. It
// must run in the same transaction as the fact load.
func (h summaryRepositoryHandler) Rebuild(ctx context.Context, tx *sql.Tx) (int64, error) {
	if _, err := tx.ExecContext(ctx, "TRUNCATE TABLE crypto_powerbi_summary"); err != nil {
		return 0, fmt.Errorf("failed to truncate summary: %w", err)
	}

	res, err := tx.ExecContext(ctx, rebuildSummaryQuery)
	if err != nil {
		return 0, fmt.Errorf("failed to rebuild summary: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count summary rows: %w", err)
	}

	return count, nil
}

func (h summaryRepositoryHandler) List(ctx context.Context, tx *sql.Tx) ([]model.CryptoPowerbiSummary, error) {
	query := CryptoPowerbiSummary.SELECT(
		CryptoPowerbiSummary.AllColumns,
	).ORDER_BY(
		CryptoPowerbiSummary.Rank.ASC(),
		CryptoPowerbiSummary.ID.ASC(),
	)

	out := []model.CryptoPowerbiSummary{}
	err := query.QueryContext(ctx, tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list summary: %w", err)
	}

	return out, nil
}
