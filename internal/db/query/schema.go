package db

import (
	"context"
	"database/sql"
	"fmt"
)

type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var stagingSchema = []string{
	`CREATE TABLE IF NOT EXISTS crypto_raw (
		id                  VARCHAR(100) PRIMARY KEY,
		symbol              VARCHAR(32) NOT NULL,
		name                VARCHAR(100) NOT NULL,
		max_supply          NUMERIC(30, 10),
		explorer            TEXT,
		price_usd           NUMERIC(30, 10) NOT NULL,
		market_cap_usd      NUMERIC(30, 10) NOT NULL,
		volume_usd_24hr     NUMERIC(30, 10) NOT NULL,
		change_percent_24hr NUMERIC(30, 10) NOT NULL,
		vwap_24hr           NUMERIC(30, 10),
		supply              NUMERIC(30, 10) NOT NULL,
		timestamp           TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS crypto_raw_timestamp_idx ON crypto_raw (timestamp)`,
}

var warehouseSchema = []string{
	`CREATE TABLE IF NOT EXISTS cryptocurrencies (
		id         VARCHAR(100) PRIMARY KEY,
		symbol     VARCHAR(32) NOT NULL,
		name       VARCHAR(100) NOT NULL,
		max_supply NUMERIC(30, 10),
		explorer   TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS crypto_market_data (
		id                  VARCHAR(100) NOT NULL REFERENCES cryptocurrencies (id),
		price_usd           NUMERIC(30, 10) NOT NULL,
		market_cap_usd      NUMERIC(30, 10) NOT NULL,
		volume_usd_24hr     NUMERIC(30, 10) NOT NULL,
		change_percent_24hr NUMERIC(30, 10) NOT NULL,
		vwap_24hr           NUMERIC(30, 10) NOT NULL,
		supply              NUMERIC(30, 10) NOT NULL,
		timestamp           TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS crypto_market_data_id_timestamp_idx ON crypto_market_data (id, timestamp)`,
	`CREATE INDEX IF NOT EXISTS crypto_market_data_timestamp_idx ON crypto_market_data (timestamp)`,
	`CREATE TABLE IF NOT EXISTS crypto_powerbi_summary (
		id         VARCHAR(100) NOT NULL,
		rank       BIGINT NOT NULL,
		symbol     VARCHAR(32) NOT NULL,
		supply     NUMERIC(30, 10) NOT NULL,
		price_usd  NUMERIC(30, 10) NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS etl_checkpoint (
		pipeline_name  TEXT PRIMARY KEY,
		last_staged_at TIMESTAMPTZ NOT NULL,
		last_run_id    UUID NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
}

func CreateStagingTables(ctx context.Context, exec Executor) error {
	return applySchema(ctx, exec, stagingSchema)
}

func CreateWarehouseTables(ctx context.Context, exec Executor) error {
	return applySchema(ctx, exec, warehouseSchema)
}

func applySchema(ctx context.Context, exec Executor, statements []string) error {
	for _, stmt := range statements {
		if _, err := exec.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
