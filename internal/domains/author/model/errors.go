package model

import "bookstore-catalog/internal/shared/apperror"

var (
	// Validation Errors
	ErrInvalidAuthor   = apperror.Validation("INVALID_AUTHOR", "invalid author payload")
	ErrInvalidAuthorID = apperror.Validation("INVALID_AUTHOR_ID", "author id must be a positive integer")

	// Business Rule Errors
	ErrAuthorNotFound      = apperror.NotFound("AUTHOR_NOT_FOUND", "author not found")
	ErrDuplicateAuthorName = apperror.Conflict("DUPLICATE_AUTHOR_NAME", "an author with this name already exists")
	ErrAuthorHasBooks      = apperror.Conflict("AUTHOR_HAS_BOOKS", "author owns books and cannot be deleted")
)
