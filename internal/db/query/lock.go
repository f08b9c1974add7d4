package db

import (
	"context"
	"database/sql"
	"fmt"
)

// TryRunLock takes a session level advisory lock on a dedicated connection.
// When another session holds the key it returns acquired=false without
// waiting. The returned release func unlocks and returns the connection.
func TryRunLock(ctx context.Context, dbConn *sql.DB, key int64) (release func() error, acquired bool, err error) {
	conn, err := dbConn.Conn(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to reserve lock connection: %w", err)
	}

	var locked bool
	err = conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", key).Scan(&locked)
	if err != nil {
		conn.Close()
		return nil, false, fmt.Errorf("failed to take advisory lock %d: %w", key, err)
	}
	if !locked {
		conn.Close()
		return nil, false, nil
	}

	release = func() error {
		defer conn.Close()
		// the caller's ctx may already be cancelled
		_, err := conn.ExecContext(context.Background(), "SELECT pg_advisory_unlock($1)", key)
		if err != nil {
			return fmt.Errorf("failed to release advisory lock %d: %w", key, err)
		}
		return nil
	}
	return release, true, nil
}
