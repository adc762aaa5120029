package model

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookstore-catalog/internal/shared/utils"
)

const MaxFieldLength = 255

// BookRequest is the body of POST /livros/:id/livro and PATCH /livros/:id
type BookRequest struct {
	Name            string `json:"name"`
	Genre           string `json:"genre"`
	Publisher       string `json:"publisher"`
	PublicationDate string `json:"publication_date"`
}

// Normalize trims surrounding whitespace from every field
func (r *BookRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Genre = strings.TrimSpace(r.Genre)
	r.Publisher = strings.TrimSpace(r.Publisher)
	r.PublicationDate = strings.TrimSpace(r.PublicationDate)
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, MaxFieldLength).Error("name must be at most 255 characters"),
		),
		validation.Field(&r.Genre,
			validation.Required.Error("genre is required"),
			validation.RuneLength(1, MaxFieldLength).Error("genre must be at most 255 characters"),
		),
		validation.Field(&r.Publisher,
			validation.Required.Error("publisher is required"),
			validation.RuneLength(1, MaxFieldLength).Error("publisher must be at most 255 characters"),
		),
		validation.Field(&r.PublicationDate,
			validation.Required.Error("publication_date is required"),
			validation.Date(utils.DateLayout).Error("publication_date must be a valid YYYY-MM-DD date"),
		),
	)
}

// ValidationError wraps an ozzo result into the catalog taxonomy
func ValidationError(err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return ErrInvalidBook.WithMessage(verrs.Error())
	}
	return ErrInvalidBook.Wrap(err)
}
