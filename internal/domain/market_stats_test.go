package domain

import (
	"testing"
	"time"

	"cryptoetl/internal/db/models/postgres/public/model"

	"github.com/stretchr/testify/require"
)

func TestNewMarketStats(t *testing.T) {
	t.Run("empty snapshot", func(t *testing.T) {
		out, err := NewMarketStats(nil)
		require.NoError(t, err)
		require.Equal(t, 0, out.Assets)
		require.True(t, out.TotalMarketCapUsd.IsZero())
	})

	t.Run("breadth and averages", func(t *testing.T) {
		ts := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
		facts := []model.CryptoMarketData{
			{ID: "bitcoin", ChangePercent24hr: dec("1.5"), MarketCapUsd: dec("100"), Timestamp: ts},
			{ID: "ethereum", ChangePercent24hr: dec("-3"), MarketCapUsd: dec("50"), Timestamp: ts},
			{ID: "tether", ChangePercent24hr: dec("0"), MarketCapUsd: dec("25"), Timestamp: ts},
			{ID: "solana", ChangePercent24hr: dec("4.5"), MarketCapUsd: dec("10"), Timestamp: ts},
		}

		out, err := NewMarketStats(facts)
		require.NoError(t, err)
		require.Equal(t, 4, out.Assets)
		require.Equal(t, 2, out.Advancers)
		require.Equal(t, 1, out.Decliners)
		require.Equal(t, 1, out.Unchanged)
		require.True(t, out.TotalMarketCapUsd.Equal(dec("185")))
		require.InDelta(t, 0.75, out.MeanChangePercent.AsPercent(), 1e-9)
		require.InDelta(t, 0.75, out.MedianChangePercent.AsPercent(), 1e-9)
		require.Equal(t, ts, out.AsOf)
	})
}
