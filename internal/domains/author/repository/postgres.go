package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"bookstore-catalog/internal/domains/author/model"
	"bookstore-catalog/internal/infrastructure/database"
	"bookstore-catalog/internal/shared/utils"
)

const authorsNameConstraint = "authors_name_key"

// postgresRepository implements RepositoryInterface on top of pgx
type postgresRepository struct {
	db database.DBTX
}

// NewPostgresRepository creates an author repository. db may be a pool or a transaction.
func NewPostgresRepository(db database.DBTX) RepositoryInterface {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) RepositoryInterface {
	return &postgresRepository{db: tx}
}

func (r *postgresRepository) Create(ctx context.Context, name string, age int) (*model.Author, error) {
	query := `
        INSERT INTO authors (name, age)
        VALUES ($1, $2)
        RETURNING id, name, age
    `

	var a model.Author
	err := r.db.QueryRow(ctx, query, name, age).Scan(&a.ID, &a.Name, &a.Age)
	if err != nil {
		if database.IsUniqueViolation(err, authorsNameConstraint) {
			return nil, model.ErrDuplicateAuthorName
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Author, error) {
	query := `
        SELECT id, name, age
        FROM authors
        ORDER BY id
    `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]model.Author, 0)
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Age); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	query := `
        SELECT id, name, age
        FROM authors
        WHERE id = $1
    `

	var a model.Author
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Age)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) NameTakenByOther(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE name = $1 AND id <> $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author name: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ListBooks(ctx context.Context, authorID int64) ([]model.BookSummary, error) {
	query := `
        SELECT id, name, genre, publisher, publication_date
        FROM books
        WHERE author_id = $1
        ORDER BY id
    `

	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list author books: %w", err)
	}
	defer rows.Close()

	books := make([]model.BookSummary, 0)
	for rows.Next() {
		var (
			b         model.BookSummary
			published time.Time
		)
		if err := rows.Scan(&b.ID, &b.Name, &b.Genre, &b.Publisher, &published); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		b.PublicationDate = utils.FormatDate(published)
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate author books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) CountBooks(ctx context.Context, authorID int64) (int, error) {
	query := `SELECT COUNT(*) FROM books WHERE author_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count author books: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, name string, age int) (*model.Author, error) {
	query := `
        UPDATE authors
        SET name = $2, age = $3
        WHERE id = $1
        RETURNING id, name, age
    `

	var a model.Author
	err := r.db.QueryRow(ctx, query, id, name, age).Scan(&a.ID, &a.Name, &a.Age)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		if database.IsUniqueViolation(err, authorsNameConstraint) {
			return nil, model.ErrDuplicateAuthorName
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM authors WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		// A book inserted after the count check still trips the foreign key
		if database.IsForeignKeyViolation(err) {
			return model.ErrAuthorHasBooks
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrAuthorNotFound
	}

	return nil
}
