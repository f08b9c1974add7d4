package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	etl_errors "cryptoetl/internal"
	"cryptoetl/internal/db/models/postgres/public/model"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func bitcoinAsset() Asset {
	return Asset{
		"id":                "bitcoin",
		"symbol":            "BTC",
		"name":              "Bitcoin",
		"priceUsd":          "65000.0",
		"marketCapUsd":      "1.2e12",
		"volumeUsd24Hr":     "3e10",
		"changePercent24Hr": "1.5",
		"vwap24Hr":          "64000.0",
		"supply":            "19000000",
		"maxSupply":         "21000000",
		"explorer":          "https://blockchain.info",
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func TestNewStagingRow(t *testing.T) {
	ingestedAt := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)

	t.Run("complete record", func(t *testing.T) {
		row, err := NewStagingRow(bitcoinAsset(), 0, ingestedAt)
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				model.CryptoRaw{
					ID:                "bitcoin",
					Symbol:            "BTC",
					Name:              "Bitcoin",
					MaxSupply:         decPtr("21000000"),
					Explorer:          strPtr("https://blockchain.info"),
					PriceUsd:          dec("65000"),
					MarketCapUsd:      dec("1200000000000"),
					VolumeUsd24hr:     dec("30000000000"),
					ChangePercent24hr: dec("1.5"),
					Vwap24hr:          decPtr("64000"),
					Supply:            dec("19000000"),
					Timestamp:         ingestedAt,
				},
				row,
				cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
			),
		)
	})

	t.Run("optional fields missing", func(t *testing.T) {
		asset := bitcoinAsset()
		delete(asset, "maxSupply")
		asset["vwap24Hr"] = nil
		asset["explorer"] = ""

		row, err := NewStagingRow(asset, 0, ingestedAt)
		require.NoError(t, err)
		require.Nil(t, row.MaxSupply)
		require.Nil(t, row.Vwap24hr)
		require.Nil(t, row.Explorer)
	})

	t.Run("json numbers", func(t *testing.T) {
		asset := bitcoinAsset()
		asset["priceUsd"] = json.Number("65000.25")

		row, err := NewStagingRow(asset, 0, ingestedAt)
		require.NoError(t, err)
		require.True(t, row.PriceUsd.Equal(dec("65000.25")))
	})

	t.Run("missing price", func(t *testing.T) {
		asset := bitcoinAsset()
		delete(asset, "priceUsd")

		_, err := NewStagingRow(asset, 3, ingestedAt)
		require.Error(t, err)

		var malformed etl_errors.ErrMalformedAsset
		require.True(t, errors.As(err, &malformed))
		require.Equal(t, etl_errors.ErrMalformedAsset{
			Index:   3,
			AssetID: "bitcoin",
			Field:   "priceUsd",
			Reason:  "is missing",
		}, malformed)
	})

	t.Run("unparsable number", func(t *testing.T) {
		asset := bitcoinAsset()
		asset["supply"] = "lots"

		_, err := NewStagingRow(asset, 0, ingestedAt)
		var malformed etl_errors.ErrMalformedAsset
		require.True(t, errors.As(err, &malformed))
		require.Equal(t, "supply", malformed.Field)
	})

	t.Run("non scalar values", func(t *testing.T) {
		for _, tc := range []struct {
			name   string
			field  string
			raw    string
			reason string
		}{
			{"object id", "id", `{"x":1}`, "has unsupported type map[string]interface {}"},
			{"array symbol", "symbol", `["BTC"]`, "has unsupported type []interface {}"},
			{"bool name", "name", `true`, "has unsupported type bool"},
			{"object price", "priceUsd", `{"usd":"1"}`, "has unsupported type map[string]interface {}"},
			{"array max supply", "maxSupply", `[21000000]`, "has unsupported type []interface {}"},
			{"bool explorer", "explorer", `false`, "has unsupported type bool"},
		} {
			t.Run(tc.name, func(t *testing.T) {
				asset := bitcoinAsset()
				decoder := json.NewDecoder(strings.NewReader(tc.raw))
				decoder.UseNumber()
				var value any
				require.NoError(t, decoder.Decode(&value))
				asset[tc.field] = value

				_, err := NewStagingRow(asset, 2, ingestedAt)

				var malformed etl_errors.ErrMalformedAsset
				require.True(t, errors.As(err, &malformed))
				require.Equal(t, 2, malformed.Index)
				require.Equal(t, tc.field, malformed.Field)
				require.Equal(t, tc.reason, malformed.Reason)
			})
		}
	})

	t.Run("non scalar record fails the whole batch", func(t *testing.T) {
		var assets []Asset
		decoder := json.NewDecoder(strings.NewReader(`[{"id":{"x":1},"symbol":["BTC"],"name":true,"priceUsd":"1","marketCapUsd":"1","volumeUsd24Hr":"1","changePercent24Hr":"1","supply":"1"}]`))
		decoder.UseNumber()
		require.NoError(t, decoder.Decode(&assets))

		rows, err := NewStagingRows(assets, ingestedAt)
		require.EqualError(t, err, "malformed asset at record 0: field id has unsupported type map[string]interface {}")
		require.Nil(t, rows)
	})

	t.Run("missing id", func(t *testing.T) {
		asset := bitcoinAsset()
		delete(asset, "id")

		_, err := NewStagingRow(asset, 7, ingestedAt)
		require.EqualError(t, err, "malformed asset at record 7: field id is missing")
	})
}

func TestNewStagingRows(t *testing.T) {
	ingestedAt := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)

	t.Run("stamps every row with the batch time", func(t *testing.T) {
		eth := bitcoinAsset()
		eth["id"] = "ethereum"
		eth["symbol"] = "ETH"

		rows, err := NewStagingRows([]Asset{bitcoinAsset(), eth}, ingestedAt)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, row := range rows {
			require.Equal(t, ingestedAt, row.Timestamp)
		}
	})

	t.Run("one bad record fails the batch", func(t *testing.T) {
		bad := bitcoinAsset()
		bad["id"] = "broken"
		delete(bad, "marketCapUsd")

		rows, err := NewStagingRows([]Asset{bitcoinAsset(), bad}, ingestedAt)
		require.Error(t, err)
		require.Nil(t, rows)
	})
}
