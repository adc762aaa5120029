package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"bookstore-catalog/internal/domains/author/model"
	"bookstore-catalog/internal/domains/author/repository"
	"bookstore-catalog/internal/infrastructure/database"
	"bookstore-catalog/internal/shared/apperror"
	txutil "bookstore-catalog/pkg/database"
)

// authorService implements ServiceInterface
type authorService struct {
	pool database.TxBeginner
	repo repository.RepositoryInterface
}

// NewAuthorService wires the service to its repository and the pool that opens transactions
func NewAuthorService(pool database.TxBeginner, repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{
		pool: pool,
		repo: repo,
	}
}

func (s *authorService) Create(ctx context.Context, req model.AuthorRequest) (*model.Author, error) {
	// Validate input
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, model.ValidationError(err)
	}

	created, err := txutil.WithTransactionResult(ctx, s.pool, func(tx pgx.Tx) (*model.Author, error) {
		repo := s.repo.WithTx(tx)

		// Names are unique across the catalog, the record itself excluded
		taken, err := repo.NameTakenByOther(ctx, req.Name, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, model.ErrDuplicateAuthorName
		}

		return repo.Create(ctx, req.Name, req.AgeValue())
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}

	return created, nil
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Ensure(err)
	}
	return authors, nil
}

func (s *authorService) GetByIDWithBooks(ctx context.Context, id int64) (*model.AuthorWithBooks, error) {
	// Serial ids start at 1
	if id <= 0 {
		return nil, model.ErrAuthorNotFound
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Ensure(err)
	}

	// Separate query so an author without books still resolves
	books, err := s.repo.ListBooks(ctx, id)
	if err != nil {
		return nil, apperror.Ensure(err)
	}

	return &model.AuthorWithBooks{
		Author: *a,
		Books:  books,
	}, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req model.AuthorRequest) (*model.Author, error) {
	// Validate input
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, model.ValidationError(err)
	}
	// Serial ids start at 1
	if id <= 0 {
		return nil, model.ErrAuthorNotFound
	}

	updated, err := txutil.WithTransactionResult(ctx, s.pool, func(tx pgx.Tx) (*model.Author, error) {
		repo := s.repo.WithTx(tx)

		if _, err := repo.GetByID(ctx, id); err != nil {
			return nil, err
		}

		// Names are unique across the catalog, the record itself excluded
		taken, err := repo.NameTakenByOther(ctx, req.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, model.ErrDuplicateAuthorName
		}

		return repo.Update(ctx, id, req.Name, req.AgeValue())
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}

	return updated, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	// Serial ids start at 1
	if id <= 0 {
		return model.ErrAuthorNotFound
	}

	err := txutil.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		repo := s.repo.WithTx(tx)

		if _, err := repo.GetByID(ctx, id); err != nil {
			return err
		}

		// Authors that still own books are kept
		count, err := repo.CountBooks(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return model.ErrAuthorHasBooks
		}

		return repo.Delete(ctx, id)
	})

	return apperror.Ensure(err)
}
