package model

import (
	"encoding/json"
	"errors"
	"math"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const MaxNameLength = 255

// AuthorRequest is the body of POST /autor and PATCH /autor/:id.
// Age stays untyped until validated so that "30" and 30 can be told apart.
type AuthorRequest struct {
	Name string `json:"name"`
	Age  any    `json:"age"`
}

// Normalize trims surrounding whitespace from string fields
func (r *AuthorRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, MaxNameLength).Error("name must be at most 255 characters"),
		),
		validation.Field(&r.Age,
			validation.Required.Error("age is required"),
			validation.By(wholeNumber),
		),
	)
}

// AgeValue returns the validated age. Call Validate first.
func (r AuthorRequest) AgeValue() int {
	n, _ := toWholeNumber(r.Age)
	return int(n)
}

var (
	errNotNumber  = validation.NewError("validation_age_not_number", "age must be a number")
	errNotWhole   = validation.NewError("validation_age_not_whole", "age must be a whole number")
	errNotInRange = validation.NewError("validation_age_out_of_range", "age must be a positive number")
)

func wholeNumber(value interface{}) error {
	_, err := toWholeNumber(value)
	return err
}

func toWholeNumber(value interface{}) (int64, error) {
	var f float64

	switch v := value.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, errNotNumber
		}
		f = parsed
	default:
		return 0, errNotNumber
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotNumber
	}
	if f != math.Trunc(f) {
		return 0, errNotWhole
	}
	if f <= 0 || f > math.MaxInt32 {
		return 0, errNotInRange
	}
	return int64(f), nil
}

// ValidationError wraps an ozzo result into the catalog taxonomy
func ValidationError(err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return ErrInvalidAuthor.WithMessage(verrs.Error())
	}
	return ErrInvalidAuthor.Wrap(err)
}
