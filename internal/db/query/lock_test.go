package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTryRunLock(t *testing.T) {
	ctx := context.Background()
	dbConn, err := NewTest()
	require.NoError(t, err)
	defer dbConn.Close()
	if err := Ping(ctx, dbConn); err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	const key = 424242

	release, acquired, err := TryRunLock(ctx, dbConn, key)
	require.NoError(t, err)
	require.True(t, acquired)

	t.Run("second session is refused", func(t *testing.T) {
		_, acquired, err := TryRunLock(ctx, dbConn, key)
		require.NoError(t, err)
		require.False(t, acquired)
	})

	require.NoError(t, release())

	t.Run("lock is free after release", func(t *testing.T) {
		release, acquired, err := TryRunLock(ctx, dbConn, key)
		require.NoError(t, err)
		require.True(t, acquired)
		require.NoError(t, release())
	})
}
