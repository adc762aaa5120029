package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bookstore-catalog/internal/infrastructure/database"
)

// RepositoryInterface covers catalog-wide maintenance statements
type RepositoryInterface interface {
	WithTx(tx pgx.Tx) RepositoryInterface

	// Truncate empties books and authors and restarts both id sequences
	Truncate(ctx context.Context) error
}

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) RepositoryInterface {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) RepositoryInterface {
	return &postgresRepository{db: tx}
}

func (r *postgresRepository) Truncate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `TRUNCATE TABLE books, authors RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("failed to truncate catalog: %w", err)
	}
	return nil
}
