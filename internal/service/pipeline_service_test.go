package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	etl_errors "cryptoetl/internal"
	"cryptoetl/internal/coincap"
	"cryptoetl/internal/config"
	db "cryptoetl/internal/db/query"
	"cryptoetl/internal/domain"
	"cryptoetl/internal/metrics"
	"cryptoetl/internal/util"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type fakeArchiver struct {
	keys []string
	err  error
}

func (f *fakeArchiver) Archive(ctx context.Context, runID uuid.UUID, fetchedAt time.Time, body []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	key := "raw/" + runID.String() + ".json"
	f.keys = append(f.keys, key)
	return key, nil
}

type pipelineFixture struct {
	handler   pipelineServiceHandler
	client    *coincap.MockAssetClient
	staging   *MockStagingService
	warehouse *MockWarehouseService
	archiver  *fakeArchiver
	released  *bool
}

func newPipelineFixture(t *testing.T, dbConn *sql.DB) pipelineFixture {
	ctrl := gomock.NewController(t)
	released := false
	f := pipelineFixture{
		client:    coincap.NewMockAssetClient(ctrl),
		staging:   NewMockStagingService(ctrl),
		warehouse: NewMockWarehouseService(ctrl),
		archiver:  &fakeArchiver{},
		released:  &released,
	}
	f.handler = pipelineServiceHandler{
		Config:           config.PipelineConfig{Name: "crypto_etl", Incremental: true},
		StagingDB:        dbConn,
		WarehouseDB:      dbConn,
		AssetClient:      f.client,
		Archiver:         f.archiver,
		StagingService:   f.staging,
		WarehouseService: f.warehouse,
		Metrics:          metrics.New(),
		Log:              testLogger(),
		tryLock: func(ctx context.Context) (func() error, bool, error) {
			return func() error {
				released = true
				return nil
			}, true, nil
		},
	}
	return f
}

// testDB skips tests that need real transactions when postgres is down
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dbConn, err := db.NewTest()
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	t.Cleanup(func() { dbConn.Close() })
	if err := db.Ping(context.Background(), dbConn); err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	return dbConn
}

func TestPipelineService_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("lock held elsewhere", func(t *testing.T) {
		f := newPipelineFixture(t, nil)
		f.handler.tryLock = func(ctx context.Context) (func() error, bool, error) {
			return nil, false, nil
		}

		_, err := f.handler.Run(ctx)
		require.ErrorIs(t, err, etl_errors.ErrRunInProgress)
		require.Equal(t, float64(1), testutil.ToFloat64(f.handler.Metrics.RunsTotal.WithLabelValues(metrics.StatusBusy)))
	})

	t.Run("lock query failure", func(t *testing.T) {
		f := newPipelineFixture(t, nil)
		f.handler.tryLock = func(ctx context.Context) (func() error, bool, error) {
			return nil, false, errors.New("connection refused")
		}

		_, err := f.handler.Run(ctx)
		require.ErrorContains(t, err, "connection refused")
	})

	t.Run("extraction failure writes nothing", func(t *testing.T) {
		f := newPipelineFixture(t, nil)
		f.client.EXPECT().GetAssets(ctx).Return(nil, etl_errors.ErrUnexpectedStatus{StatusCode: 401})

		_, err := f.handler.Run(ctx)

		var status etl_errors.ErrUnexpectedStatus
		require.True(t, errors.As(err, &status))
		require.Equal(t, 401, status.StatusCode)
		require.True(t, *f.released)
		require.Empty(t, f.archiver.keys)
		require.Equal(t, float64(1), testutil.ToFloat64(f.handler.Metrics.RunsTotal.WithLabelValues(metrics.StatusFailed)))
	})

	t.Run("full run", func(t *testing.T) {
		f := newPipelineFixture(t, testDB(t))
		assets := []domain.Asset{asset("bitcoin", "65000")}

		f.client.EXPECT().GetAssets(ctx).Return(&coincap.AssetsResponse{Assets: assets, Raw: []byte(`{"data":[]}`)}, nil)
		f.staging.EXPECT().Load(ctx, gomock.Any(), assets, gomock.Any()).Return(1, nil)
		f.warehouse.EXPECT().TransformAndLoad(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(&LoadResult{
			RowsRead:      1,
			Dimensions:    1,
			FactsInserted: 1,
			SummaryRows:   1,
		}, nil)

		result, err := f.handler.Run(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, result.Extracted)
		require.Equal(t, 1, result.Staged)
		require.Equal(t, "raw/"+result.RunID.String()+".json", result.ArchiveKey)
		require.Equal(t, int64(1), result.Load.FactsInserted)
		require.True(t, *f.released)
		require.Equal(t, float64(1), testutil.ToFloat64(f.handler.Metrics.FactRowsInserted))
		require.Equal(t, float64(1), testutil.ToFloat64(f.handler.Metrics.RunsTotal.WithLabelValues(metrics.StatusSuccess)))
	})

	t.Run("batch is stamped with the staging clock", func(t *testing.T) {
		f := newPipelineFixture(t, testDB(t))
		assets := []domain.Asset{asset("bitcoin", "65000")}

		var stampedAt, clockAt time.Time
		f.client.EXPECT().GetAssets(ctx).Return(&coincap.AssetsResponse{Assets: assets}, nil)
		f.staging.EXPECT().Load(ctx, gomock.Any(), assets, gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx *sql.Tx, assets []domain.Asset, ingestedAt time.Time) (int, error) {
				stampedAt = ingestedAt
				now, err := db.Now(ctx, tx)
				clockAt = util.IngestionTime(now)
				return len(assets), err
			},
		)
		f.warehouse.EXPECT().TransformAndLoad(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(&LoadResult{Skipped: true}, nil)

		_, err := f.handler.Run(ctx)
		require.NoError(t, err)
		require.False(t, stampedAt.IsZero())
		require.True(t, stampedAt.Equal(clockAt), "stamped %s, staging clock %s", stampedAt, clockAt)
		require.Equal(t, time.UTC, stampedAt.Location())
	})

	t.Run("archive failure does not abort", func(t *testing.T) {
		f := newPipelineFixture(t, testDB(t))
		f.archiver.err = errors.New("bucket not found")

		f.client.EXPECT().GetAssets(ctx).Return(&coincap.AssetsResponse{}, nil)
		f.staging.EXPECT().Load(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
		f.warehouse.EXPECT().TransformAndLoad(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(&LoadResult{Skipped: true}, nil)

		result, err := f.handler.Run(ctx)
		require.NoError(t, err)
		require.Empty(t, result.ArchiveKey)
		require.True(t, result.Load.Skipped)
		require.Equal(t, float64(1), testutil.ToFloat64(f.handler.Metrics.RunsTotal.WithLabelValues(metrics.StatusSkipped)))
	})

	t.Run("staging failure skips warehouse", func(t *testing.T) {
		f := newPipelineFixture(t, testDB(t))

		f.client.EXPECT().GetAssets(ctx).Return(&coincap.AssetsResponse{Assets: []domain.Asset{{}}}, nil)
		f.staging.EXPECT().Load(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(0, etl_errors.ErrMalformedAsset{Field: "id", Reason: "is missing"})

		_, err := f.handler.Run(ctx)
		require.ErrorContains(t, err, "staging load failed")
	})

	t.Run("warehouse failure", func(t *testing.T) {
		f := newPipelineFixture(t, testDB(t))

		f.client.EXPECT().GetAssets(ctx).Return(&coincap.AssetsResponse{}, nil)
		f.staging.EXPECT().Load(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
		f.warehouse.EXPECT().TransformAndLoad(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("unique violation"))

		_, err := f.handler.Run(ctx)
		require.ErrorContains(t, err, "warehouse load failed")
	})
}
