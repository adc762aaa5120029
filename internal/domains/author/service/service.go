package service

import (
	"context"

	"bookstore-catalog/internal/domains/author/model"
)

// ServiceInterface defines the author use cases
type ServiceInterface interface {
	// Create validates the request, rejects duplicate names and inserts the author
	Create(ctx context.Context, req model.AuthorRequest) (*model.Author, error)

	// List returns every author
	List(ctx context.Context) ([]model.Author, error)

	// GetByIDWithBooks returns the author and its books; an author without books has an empty list
	GetByIDWithBooks(ctx context.Context, id int64) (*model.AuthorWithBooks, error)

	// Update replaces name and age. Checks run in order: payload, existence, name uniqueness.
	Update(ctx context.Context, id int64, req model.AuthorRequest) (*model.Author, error)

	// Delete removes an author that owns no books
	Delete(ctx context.Context, id int64) error
}
