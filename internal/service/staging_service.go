package service

import (
	"context"
	"database/sql"
	"time"

	"cryptoetl/internal/domain"
	"cryptoetl/internal/repository"
)

//go:generate mockgen -source=staging_service.go -destination=mock_staging_service.go -package=service

// StagingService lands API records in crypto_raw
type StagingService interface {
	// every record is validated before the first write, so a malformed
	// batch leaves staging untouched
	Load(ctx context.Context, tx *sql.Tx, assets []domain.Asset, ingestedAt time.Time) (int, error)
}

func NewStagingService(stagingRepository repository.StagingRepository) StagingService {
	return stagingServiceHandler{
		StagingRepository: stagingRepository,
	}
}

type stagingServiceHandler struct {
	StagingRepository repository.StagingRepository
}

func (h stagingServiceHandler) Load(ctx context.Context, tx *sql.Tx, assets []domain.Asset, ingestedAt time.Time) (int, error) {
	rows, err := domain.NewStagingRows(assets, ingestedAt)
	if err != nil {
		return 0, err
	}

	for _, row := range rows {
		if err := h.StagingRepository.Upsert(ctx, tx, row); err != nil {
			return 0, err
		}
	}

	return len(rows), nil
}
