package utils

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// DateLayout is the only accepted wire format for calendar dates
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders the calendar component of t in UTC
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ToPgDate converts a YYYY-MM-DD string into a DATE parameter.
// The string is expected to be validated already.
func ToPgDate(s string) (pgtype.Date, error) {
	t, err := ParseDate(s)
	if err != nil {
		return pgtype.Date{}, err
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}
