package domain

import (
	"time"

	etl_errors "cryptoetl/internal"
	"cryptoetl/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

// NewStagingRow maps one api record onto the crypto_raw row. maxSupply,
// vwap24Hr and explorer are optional; every other field must be present and
// numeric fields must parse as decimals.
func NewStagingRow(asset Asset, index int, ingestedAt time.Time) (model.CryptoRaw, error) {
	row := model.CryptoRaw{
		Timestamp: ingestedAt,
	}

	var err error
	if row.ID, err = requiredText(asset, index, FieldID); err != nil {
		return model.CryptoRaw{}, err
	}
	if row.Symbol, err = requiredText(asset, index, FieldSymbol); err != nil {
		return model.CryptoRaw{}, err
	}
	if row.Name, err = requiredText(asset, index, FieldName); err != nil {
		return model.CryptoRaw{}, err
	}

	required := []struct {
		field string
		dest  *decimal.Decimal
	}{
		{FieldPriceUsd, &row.PriceUsd},
		{FieldMarketCapUsd, &row.MarketCapUsd},
		{FieldVolumeUsd24Hr, &row.VolumeUsd24hr},
		{FieldChangePercent24Hr, &row.ChangePercent24hr},
		{FieldSupply, &row.Supply},
	}
	for _, r := range required {
		d, err := requiredDecimal(asset, index, r.field)
		if err != nil {
			return model.CryptoRaw{}, err
		}
		*r.dest = d
	}

	if row.MaxSupply, err = optionalDecimal(asset, index, FieldMaxSupply); err != nil {
		return model.CryptoRaw{}, err
	}
	if row.Vwap24hr, err = optionalDecimal(asset, index, FieldVwap24Hr); err != nil {
		return model.CryptoRaw{}, err
	}
	if row.Explorer, err = optionalText(asset, index, FieldExplorer); err != nil {
		return model.CryptoRaw{}, err
	}

	return row, nil
}

// NewStagingRows converts the whole batch up front so a single bad record
// fails the batch before anything is written.
func NewStagingRows(assets []Asset, ingestedAt time.Time) ([]model.CryptoRaw, error) {
	rows := make([]model.CryptoRaw, 0, len(assets))
	for i, asset := range assets {
		row, err := NewStagingRow(asset, i, ingestedAt)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func checkScalar(asset Asset, index int, field string) error {
	if err := asset.CheckScalar(field); err != nil {
		return etl_errors.ErrMalformedAsset{
			Index:   index,
			AssetID: asset.ID(),
			Field:   field,
			Reason:  err.Error(),
		}
	}
	return nil
}

func requiredText(asset Asset, index int, field string) (string, error) {
	if err := checkScalar(asset, index, field); err != nil {
		return "", err
	}
	s, ok := asset.Text(field)
	if !ok {
		return "", etl_errors.ErrMalformedAsset{
			Index:   index,
			AssetID: asset.ID(),
			Field:   field,
			Reason:  "is missing",
		}
	}
	return s, nil
}

func requiredDecimal(asset Asset, index int, field string) (decimal.Decimal, error) {
	s, err := requiredText(asset, index, field)
	if err != nil {
		return decimal.Zero, err
	}
	return parseDecimal(asset, index, field, s)
}

func optionalText(asset Asset, index int, field string) (*string, error) {
	if err := checkScalar(asset, index, field); err != nil {
		return nil, err
	}
	s, ok := asset.Text(field)
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func optionalDecimal(asset Asset, index int, field string) (*decimal.Decimal, error) {
	s, err := optionalText(asset, index, field)
	if err != nil || s == nil {
		return nil, err
	}
	d, err := parseDecimal(asset, index, field, *s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseDecimal(asset Asset, index int, field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, etl_errors.ErrMalformedAsset{
			Index:   index,
			AssetID: asset.ID(),
			Field:   field,
			Reason:  "is not a number: " + s,
		}
	}
	return d, nil
}
