package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/domains/book/repository"
	"bookstore-catalog/internal/infrastructure/database"
	"bookstore-catalog/internal/shared/apperror"
	txutil "bookstore-catalog/pkg/database"
)

type bookService struct {
	pool database.TxBeginner
	repo repository.RepositoryInterface
}

func NewBookService(pool database.TxBeginner, repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{
		pool: pool,
		repo: repo,
	}
}

// CreateBook checks run in order: payload, author existence, name uniqueness
func (s *bookService) CreateBook(ctx context.Context, authorID int64, req model.BookRequest) (*model.Book, error) {
	// Validate input
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, model.ValidationError(err)
	}
	// Serial ids start at 1
	if authorID <= 0 {
		return nil, model.ErrAuthorNotFound
	}

	created, err := txutil.WithTransactionResult(ctx, s.pool, func(tx pgx.Tx) (*model.Book, error) {
		repo := s.repo.WithTx(tx)

		// Author must exist before anything is written against it
		exists, err := repo.ValidateAuthor(ctx, authorID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, model.ErrAuthorNotFound
		}

		// Names are unique across the catalog, the record itself excluded
		taken, err := repo.NameTakenByOther(ctx, req.Name, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, model.ErrDuplicateBookName
		}

		return repo.Create(ctx, authorID, req)
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}

	return created, nil
}

func (s *bookService) ListBooks(ctx context.Context) ([]model.BookWithAuthor, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Ensure(err)
	}
	return books, nil
}

// GetBookDetail returns the book and its author. A dangling author reference is a not-found.
func (s *bookService) GetBookDetail(ctx context.Context, id int64) (*model.BookDetail, error) {
	// Serial ids start at 1
	if id <= 0 {
		return nil, model.ErrBookNotFound
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Ensure(err)
	}

	a, err := s.repo.GetAuthor(ctx, b.AuthorID)
	if err != nil {
		return nil, apperror.Ensure(err)
	}

	return &model.BookDetail{
		Book:   *b,
		Author: *a,
	}, nil
}

// UpdateBook checks run in order: payload, book existence, author of that book, name uniqueness
func (s *bookService) UpdateBook(ctx context.Context, id int64, req model.BookRequest) (*model.Book, error) {
	// Validate input
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, model.ValidationError(err)
	}
	// Serial ids start at 1
	if id <= 0 {
		return nil, model.ErrBookNotFound
	}

	updated, err := txutil.WithTransactionResult(ctx, s.pool, func(tx pgx.Tx) (*model.Book, error) {
		repo := s.repo.WithTx(tx)

		// Load the book first; its own author_id is what gets checked
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		// Author must exist before anything is written against it
		exists, err := repo.ValidateAuthor(ctx, current.AuthorID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, model.ErrAuthorNotFound
		}

		// Names are unique across the catalog, the record itself excluded
		taken, err := repo.NameTakenByOther(ctx, req.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, model.ErrDuplicateBookName
		}

		return repo.Update(ctx, id, req)
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}

	return updated, nil
}

// DeleteBook removes the book unconditionally
func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	// Serial ids start at 1
	if id <= 0 {
		return model.ErrBookNotFound
	}

	return apperror.Ensure(s.repo.Delete(ctx, id))
}
