package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	etl_errors "cryptoetl/internal"
	"cryptoetl/internal/db/models/postgres/public/model"
	"cryptoetl/internal/domain"
	"cryptoetl/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func asset(id, price string) domain.Asset {
	return domain.Asset{
		"id":                id,
		"symbol":            id[:3],
		"name":              id,
		"priceUsd":          price,
		"marketCapUsd":      "1000",
		"volumeUsd24Hr":     "10",
		"changePercent24Hr": "0.5",
		"supply":            "100",
	}
}

func TestStagingService_Load(t *testing.T) {
	ctx := context.Background()
	ingestedAt := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)

	t.Run("upserts every row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewMockStagingRepository(ctrl)
		s := NewStagingService(repo)

		var ids []string
		repo.EXPECT().Upsert(ctx, nil, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sql.Tx, row model.CryptoRaw) error {
				require.True(t, row.Timestamp.Equal(ingestedAt))
				ids = append(ids, row.ID)
				return nil
			},
		).Times(2)

		count, err := s.Load(ctx, nil, []domain.Asset{asset("bitcoin", "65000"), asset("ethereum", "3000")}, ingestedAt)
		require.NoError(t, err)
		require.Equal(t, 2, count)
		require.Equal(t, []string{"bitcoin", "ethereum"}, ids)
	})

	t.Run("malformed record writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewMockStagingRepository(ctrl)
		s := NewStagingService(repo)

		bad := asset("ethereum", "not-a-price")
		_, err := s.Load(ctx, nil, []domain.Asset{asset("bitcoin", "65000"), bad}, ingestedAt)

		var malformed etl_errors.ErrMalformedAsset
		require.True(t, errors.As(err, &malformed))
		require.Equal(t, 1, malformed.Index)
		require.Equal(t, "priceUsd", malformed.Field)
	})

	t.Run("empty batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		s := NewStagingService(repository.NewMockStagingRepository(ctrl))

		count, err := s.Load(ctx, nil, nil, ingestedAt)
		require.NoError(t, err)
		require.Zero(t, count)
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewMockStagingRepository(ctrl)
		s := NewStagingService(repo)

		repo.EXPECT().Upsert(ctx, nil, gomock.Any()).Return(errors.New("connection reset"))

		_, err := s.Load(ctx, nil, []domain.Asset{asset("bitcoin", "65000"), asset("ethereum", "3000")}, ingestedAt)
		require.ErrorContains(t, err, "connection reset")
	})
}
