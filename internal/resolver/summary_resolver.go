package resolver

import (
	"context"
	"database/sql"
	"fmt"

	api_types "cryptoetl/api-types"
	"cryptoetl/internal/domain"
	"cryptoetl/internal/util"
)

func (r resolverHandler) GetSummary(ctx context.Context) (*api_types.GetSummaryResponse, error) {
	tx, err := r.WarehouseDb.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := r.SummaryRepository.List(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	out := &api_types.GetSummaryResponse{
		Assets: []api_types.SummaryAsset{},
	}
	for _, row := range rows {
		if out.UpdatedAt == nil || row.UpdatedAt.After(*out.UpdatedAt) {
			updatedAt := row.UpdatedAt
			out.UpdatedAt = &updatedAt
		}
		out.Assets = append(out.Assets, api_types.SummaryAsset{
			Rank:     row.Rank,
			ID:       row.ID,
			Symbol:   row.Symbol,
			PriceUsd: row.PriceUsd.InexactFloat64(),
			Supply:   row.Supply.InexactFloat64(),
		})
	}

	return out, nil
}

func (r resolverHandler) GetMarketStats(ctx context.Context) (*api_types.GetMarketStatsResponse, error) {
	tx, err := r.WarehouseDb.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	latest, err := r.MarketDataRepository.ListLatest(ctx, tx)
	if err != nil {
		return nil, err
	}

	stats, err := domain.NewMarketStats(latest)
	if err != nil {
		return nil, fmt.Errorf("failed to compute market stats: %w", err)
	}

	out := &api_types.GetMarketStatsResponse{
		Assets:              stats.Assets,
		Advancers:           stats.Advancers,
		Decliners:           stats.Decliners,
		Unchanged:           stats.Unchanged,
		TotalMarketCapUsd:   stats.TotalMarketCapUsd.InexactFloat64(),
		MeanChangePercent:   stats.MeanChangePercent.AsPercent(),
		MedianChangePercent: stats.MedianChangePercent.AsPercent(),
	}
	if !stats.AsOf.IsZero() {
		out.AsOf = util.TimePtr(stats.AsOf)
	}

	return out, nil
}
