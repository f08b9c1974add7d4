package domain

import (
	"fmt"
	"time"

	"cryptoetl/internal/db/models/postgres/public/model"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// MarketStats summarizes one snapshot of the fact table
type MarketStats struct {
	AsOf                time.Time
	Assets              int
	Advancers           int
	Decliners           int
	Unchanged           int
	TotalMarketCapUsd   decimal.Decimal
	MeanChangePercent   Percent
	MedianChangePercent Percent
}

func NewMarketStats(facts []model.CryptoMarketData) (*MarketStats, error) {
	out := &MarketStats{
		TotalMarketCapUsd: decimal.Zero,
	}
	if len(facts) == 0 {
		return out, nil
	}

	changes := make(PercentData, 0, len(facts))
	for _, f := range facts {
		if f.Timestamp.After(out.AsOf) {
			out.AsOf = f.Timestamp
		}
		switch f.ChangePercent24hr.Sign() {
		case 1:
			out.Advancers++
		case -1:
			out.Decliners++
		default:
			out.Unchanged++
		}
		out.TotalMarketCapUsd = out.TotalMarketCapUsd.Add(f.MarketCapUsd)
		changes = append(changes, PercentFromDecimal(f.ChangePercent24hr))
	}
	out.Assets = len(facts)

	data := changes.ToStatsData()
	mean, err := stats.Mean(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean change: %w", err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compute median change: %w", err)
	}
	out.MeanChangePercent = Percent(mean)
	out.MedianChangePercent = Percent(median)

	return out, nil
}
