package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/infrastructure/database"
	"bookstore-catalog/internal/shared/utils"
)

const booksNameConstraint = "books_name_key"

type postgresRepository struct {
	db database.DBTX
}

// NewPostgresRepository creates a book repository. db may be a pool or a transaction.
func NewPostgresRepository(db database.DBTX) RepositoryInterface {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) RepositoryInterface {
	return &postgresRepository{db: tx}
}

// Create inserts a book. The returned publication_date is the caller's string, not the stored value.
func (r *postgresRepository) Create(ctx context.Context, authorID int64, req model.BookRequest) (*model.Book, error) {
	published, err := utils.ToPgDate(req.PublicationDate)
	if err != nil {
		return nil, model.ErrInvalidBook.Wrap(err)
	}

	query := `
        INSERT INTO books (author_id, name, genre, publisher, publication_date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `

	var id int64
	err = r.db.QueryRow(ctx, query, authorID, req.Name, req.Genre, req.Publisher, published).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err, booksNameConstraint) {
			return nil, model.ErrDuplicateBookName
		}
		if database.IsForeignKeyViolation(err) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &model.Book{
		ID:              id,
		AuthorID:        authorID,
		Name:            req.Name,
		Genre:           req.Genre,
		Publisher:       req.Publisher,
		PublicationDate: req.PublicationDate,
	}, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.BookWithAuthor, error) {
	query := `
        SELECT b.id, b.name, b.genre, b.publisher, b.publication_date,
               a.id, a.name, a.age
        FROM books b
        JOIN authors a ON a.id = b.author_id
        ORDER BY b.id
    `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.BookWithAuthor, 0)
	for rows.Next() {
		var (
			b         model.BookWithAuthor
			published time.Time
		)
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Genre, &b.Publisher, &published,
			&b.Author.ID, &b.Author.Name, &b.Author.Age,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		b.PublicationDate = utils.FormatDate(published)
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	query := `
        SELECT id, author_id, name, genre, publisher, publication_date
        FROM books
        WHERE id = $1
    `

	return r.scanBook(r.db.QueryRow(ctx, query, id), "get book by id")
}

func (r *postgresRepository) NameTakenByOther(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE name = $1 AND id <> $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book name: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, req model.BookRequest) (*model.Book, error) {
	published, err := utils.ToPgDate(req.PublicationDate)
	if err != nil {
		return nil, model.ErrInvalidBook.Wrap(err)
	}

	query := `
        UPDATE books
        SET name = $2, genre = $3, publisher = $4, publication_date = $5
        WHERE id = $1
        RETURNING id, author_id, name, genre, publisher, publication_date
    `

	row := r.db.QueryRow(ctx, query, id, req.Name, req.Genre, req.Publisher, published)
	return r.scanBook(row, "update book")
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

// ValidateAuthor reports whether authorID references an existing author
func (r *postgresRepository) ValidateAuthor(ctx context.Context, authorID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, authorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to validate author: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) GetAuthor(ctx context.Context, authorID int64) (*model.AuthorSummary, error) {
	query := `
        SELECT id, name, age
        FROM authors
        WHERE id = $1
    `

	var a model.AuthorSummary
	err := r.db.QueryRow(ctx, query, authorID).Scan(&a.ID, &a.Name, &a.Age)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) scanBook(row pgx.Row, op string) (*model.Book, error) {
	var (
		b         model.Book
		published time.Time
	)
	err := row.Scan(&b.ID, &b.AuthorID, &b.Name, &b.Genre, &b.Publisher, &published)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		if database.IsUniqueViolation(err, booksNameConstraint) {
			return nil, model.ErrDuplicateBookName
		}
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	b.PublicationDate = utils.FormatDate(published)
	return &b, nil
}
