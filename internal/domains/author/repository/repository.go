package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"bookstore-catalog/internal/domains/author/model"
)

// RepositoryInterface defines data access for authors
type RepositoryInterface interface {
	// WithTx returns a repository bound to tx
	WithTx(tx pgx.Tx) RepositoryInterface

	// Create inserts an author. Errors: ErrDuplicateAuthorName
	Create(ctx context.Context, name string, age int) (*model.Author, error)

	// List returns every author ordered by id
	List(ctx context.Context) ([]model.Author, error)

	// GetByID errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id int64) (*model.Author, error)

	// NameTakenByOther reports whether an author other than excludeID already uses name.
	// Pass excludeID 0 to check against every author.
	NameTakenByOther(ctx context.Context, name string, excludeID int64) (bool, error)

	// ListBooks returns the books owned by authorID ordered by id
	ListBooks(ctx context.Context, authorID int64) ([]model.BookSummary, error)

	// CountBooks returns how many books reference authorID
	CountBooks(ctx context.Context, authorID int64) (int, error)

	// Update errors: ErrAuthorNotFound, ErrDuplicateAuthorName
	Update(ctx context.Context, id int64, name string, age int) (*model.Author, error)

	// Delete errors: ErrAuthorNotFound, ErrAuthorHasBooks
	Delete(ctx context.Context, id int64) error
}
