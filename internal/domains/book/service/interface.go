package service

import (
	"context"

	"bookstore-catalog/internal/domains/book/model"
)

// ServiceInterface defines the book use cases
type ServiceInterface interface {
	CreateBook(ctx context.Context, authorID int64, req model.BookRequest) (*model.Book, error)
	ListBooks(ctx context.Context) ([]model.BookWithAuthor, error)
	GetBookDetail(ctx context.Context, id int64) (*model.BookDetail, error)
	UpdateBook(ctx context.Context, id int64, req model.BookRequest) (*model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}
