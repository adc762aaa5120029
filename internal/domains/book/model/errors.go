package model

import "bookstore-catalog/internal/shared/apperror"

var (
	ErrInvalidBook     = apperror.Validation("INVALID_BOOK", "invalid book payload")
	ErrInvalidBookID   = apperror.Validation("INVALID_BOOK_ID", "book id must be a positive integer")
	ErrInvalidAuthorID = apperror.Validation("INVALID_AUTHOR_ID", "author id must be a positive integer")

	ErrBookNotFound      = apperror.NotFound("BOOK_NOT_FOUND", "book not found")
	ErrAuthorNotFound    = apperror.NotFound("AUTHOR_NOT_FOUND", "author not found")
	ErrDuplicateBookName = apperror.Conflict("DUPLICATE_BOOK_NAME", "a book with this name already exists")
)
