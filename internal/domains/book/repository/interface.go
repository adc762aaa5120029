package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"bookstore-catalog/internal/domains/book/model"
)

// RepositoryInterface defines data access for books and the author lookups they need
type RepositoryInterface interface {
	WithTx(tx pgx.Tx) RepositoryInterface

	// Books
	Create(ctx context.Context, authorID int64, req model.BookRequest) (*model.Book, error)
	List(ctx context.Context) ([]model.BookWithAuthor, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	NameTakenByOther(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, id int64, req model.BookRequest) (*model.Book, error)
	Delete(ctx context.Context, id int64) error

	// Authors
	ValidateAuthor(ctx context.Context, authorID int64) (bool, error)
	GetAuthor(ctx context.Context, authorID int64) (*model.AuthorSummary, error)
}
