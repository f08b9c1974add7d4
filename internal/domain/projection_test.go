package domain

import (
	"testing"
	"time"

	"cryptoetl/internal/db/models/postgres/public/model"

	"github.com/stretchr/testify/require"
)

func TestToCryptocurrency(t *testing.T) {
	t.Run("keeps first explorer", func(t *testing.T) {
		row := model.CryptoRaw{
			ID:        "bitcoin",
			Symbol:    "BTC",
			Name:      "Bitcoin",
			MaxSupply: decPtr("21000000"),
			Explorer:  strPtr("https://blockchain.info,https://live.blockcypher.com/btc/"),
		}
		out := ToCryptocurrency(row)

		require.Equal(t, "bitcoin", out.ID)
		require.Equal(t, "https://blockchain.info", *out.Explorer)
		require.True(t, out.MaxSupply.Equal(dec("21000000")))
	})
	t.Run("single explorer unchanged", func(t *testing.T) {
		out := ToCryptocurrency(model.CryptoRaw{ID: "bitcoin", Explorer: strPtr("https://blockchain.info")})
		require.Equal(t, "https://blockchain.info", *out.Explorer)
	})
	t.Run("nil explorer and zero max supply", func(t *testing.T) {
		out := ToCryptocurrency(model.CryptoRaw{ID: "tether", MaxSupply: decPtr("0")})
		require.Nil(t, out.Explorer)
		require.Nil(t, out.MaxSupply)
	})
}

func TestToMarketData(t *testing.T) {
	ts := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)

	t.Run("missing vwap becomes zero", func(t *testing.T) {
		out := ToMarketData(model.CryptoRaw{
			ID:        "bitcoin",
			PriceUsd:  dec("65000"),
			Supply:    dec("19000000"),
			Timestamp: ts,
		})
		require.True(t, out.Vwap24hr.IsZero())
		require.Equal(t, ts, out.Timestamp)
		require.True(t, out.PriceUsd.Equal(dec("65000")))
	})

	t.Run("project splits every row", func(t *testing.T) {
		rows := []model.CryptoRaw{
			{ID: "bitcoin", Timestamp: ts},
			{ID: "ethereum", Timestamp: ts, Vwap24hr: decPtr("3100.5")},
		}
		dims, facts := Project(rows)
		require.Len(t, dims, 2)
		require.Len(t, facts, 2)
		require.Equal(t, "ethereum", dims[1].ID)
		require.True(t, facts[1].Vwap24hr.Equal(dec("3100.5")))
	})
}
