package domain

import (
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// the api reports change already in percent units,
// so 1.5 means +1.5% over the last 24h

type Percent float64
type PercentData []Percent

func PercentFromDecimal(d decimal.Decimal) Percent {
	f, _ := d.Float64()
	return Percent(f)
}

func (p Percent) AsPercent() float64 {
	return float64(p)
}

func (pd PercentData) ToStatsData() stats.Float64Data {
	out := make(stats.Float64Data, len(pd))
	for i, n := range pd {
		out[i] = n.AsPercent()
	}
	return out
}
