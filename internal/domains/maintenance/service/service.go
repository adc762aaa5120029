package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/domains/maintenance/repository"
	"bookstore-catalog/internal/infrastructure/database"
	"bookstore-catalog/internal/shared/apperror"
	txutil "bookstore-catalog/pkg/database"
)

type ServiceInterface interface {
	// Reset irreversibly removes every book and author
	Reset(ctx context.Context) error
}

type maintenanceService struct {
	pool database.TxBeginner
	repo repository.RepositoryInterface
}

func NewMaintenanceService(pool database.TxBeginner, repo repository.RepositoryInterface) ServiceInterface {
	return &maintenanceService{
		pool: pool,
		repo: repo,
	}
}

func (s *maintenanceService) Reset(ctx context.Context) error {
	err := txutil.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		return s.repo.WithTx(tx).Truncate(ctx)
	})
	if err != nil {
		return apperror.Ensure(err)
	}

	log.Warn().Msg("Catalog reset: all authors and books removed")
	return nil
}
