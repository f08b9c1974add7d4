package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIngestionTime(t *testing.T) {
	in := time.Date(2024, 5, 3, 8, 0, 0, 123456789, time.FixedZone("EDT", -4*60*60))
	out := IngestionTime(in)

	require.Equal(t, time.UTC, out.Location())
	require.Equal(t, 123456000, out.Nanosecond())
	require.Equal(t, 12, out.Hour())
}

func TestDerefString(t *testing.T) {
	require.Equal(t, "", DerefString(nil))
	require.Equal(t, "x", DerefString(StringPtr("x")))
}
