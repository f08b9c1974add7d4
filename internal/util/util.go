package util

import (
	"time"

	"github.com/shopspring/decimal"
)

func TimePtr(t time.Time) *time.Time {
	return &t
}

func StringPtr(s string) *string {
	return &s
}

func DecimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// DerefString returns "" for nil
func DerefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IngestionTime truncates to the microsecond precision postgres stores,
// so timestamps read back compare equal to the ones written.
func IngestionTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
