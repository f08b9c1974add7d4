package domain

import (
	"strings"

	"cryptoetl/internal/db/models/postgres/public/model"
	"cryptoetl/internal/util"

	"github.com/shopspring/decimal"
)

// ToCryptocurrency projects a staging row onto the dimension. The api sends
// explorer as a comma separated list; only the first link is kept. A zero
// max supply is treated as unknown.
func ToCryptocurrency(row model.CryptoRaw) model.Cryptocurrencies {
	out := model.Cryptocurrencies{
		ID:     row.ID,
		Symbol: row.Symbol,
		Name:   row.Name,
	}
	if row.MaxSupply != nil && !row.MaxSupply.IsZero() {
		out.MaxSupply = util.DecimalPtr(*row.MaxSupply)
	}
	if explorer := firstExplorer(util.DerefString(row.Explorer)); explorer != "" {
		out.Explorer = util.StringPtr(explorer)
	}
	return out
}

func firstExplorer(s string) string {
	return strings.TrimSpace(strings.Split(s, ",")[0])
}

// ToMarketData projects a staging row onto the fact table. The fact keeps
// the staging ingestion timestamp so (id, timestamp) identifies the batch.
func ToMarketData(row model.CryptoRaw) model.CryptoMarketData {
	vwap := decimal.Zero
	if row.Vwap24hr != nil {
		vwap = *row.Vwap24hr
	}
	return model.CryptoMarketData{
		ID:                row.ID,
		PriceUsd:          row.PriceUsd,
		MarketCapUsd:      row.MarketCapUsd,
		VolumeUsd24hr:     row.VolumeUsd24hr,
		ChangePercent24hr: row.ChangePercent24hr,
		Vwap24hr:          vwap,
		Supply:            row.Supply,
		Timestamp:         row.Timestamp,
	}
}

func Project(rows []model.CryptoRaw) ([]model.Cryptocurrencies, []model.CryptoMarketData) {
	dims := make([]model.Cryptocurrencies, 0, len(rows))
	facts := make([]model.CryptoMarketData, 0, len(rows))
	for _, row := range rows {
		dims = append(dims, ToCryptocurrency(row))
		facts = append(facts, ToMarketData(row))
	}
	return dims, facts
}
