package etl_errors

import (
	"errors"
	"fmt"
)

// ErrRunInProgress is returned when another pipeline run holds the run lock.
var ErrRunInProgress = errors.New("another pipeline run is in progress")

type ErrUnexpectedStatus struct {
	StatusCode int
	Body       string
}

func (e ErrUnexpectedStatus) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("unexpected api status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("unexpected api status %d", e.StatusCode)
}

type ErrMalformedAsset struct {
	Index   int
	AssetID string
	Field   string
	Reason  string
}

func (e ErrMalformedAsset) Error() string {
	if e.AssetID != "" {
		return fmt.Sprintf("malformed asset %q (record %d): field %s %s", e.AssetID, e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("malformed asset at record %d: field %s %s", e.Index, e.Field, e.Reason)
}
