package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Asset is one record of the api's "data" array, keyed by the api's field
// names. Values are whatever the decoder produced: strings, json.Number or nil.
type Asset map[string]any

const (
	FieldID                = "id"
	FieldSymbol            = "symbol"
	FieldName              = "name"
	FieldMaxSupply         = "maxSupply"
	FieldExplorer          = "explorer"
	FieldPriceUsd          = "priceUsd"
	FieldMarketCapUsd      = "marketCapUsd"
	FieldVolumeUsd24Hr     = "volumeUsd24Hr"
	FieldChangePercent24Hr = "changePercent24Hr"
	FieldVwap24Hr          = "vwap24Hr"
	FieldSupply            = "supply"
)

// Text returns the field as a string. Missing, null and blank values
// report false, as do values that are not strings or numbers; CheckScalar
// tells those apart.
func (a Asset) Text(field string) (string, bool) {
	var s string
	switch t := a[field].(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	default:
		return "", false
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// CheckScalar fails when the field holds an object, array, bool or any
// other value the decoder can produce besides a string, number or null.
func (a Asset) CheckScalar(field string) error {
	switch v := a[field].(type) {
	case nil, string, json.Number:
		return nil
	default:
		return fmt.Errorf("has unsupported type %T", v)
	}
}

// ID is best effort and only used for error messages
func (a Asset) ID() string {
	id, _ := a.Text(FieldID)
	return id
}
