package utils

import (
	"errors"
	"strconv"
)

var ErrInvalidID = errors.New("id must be an integer")

// ParseID parses a path parameter into a surrogate key.
// Zero and negative values parse fine; they simply never match a row.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
