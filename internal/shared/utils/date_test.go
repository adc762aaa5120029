package utils

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2020-05-17")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, "2020-05-17", FormatDate(d))
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, s := range []string{"17/05/2020", "2020-5-17", "2020-05-17T00:00:00Z", "2020-13-01", "2021-02-29", ""} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestFormatDateWestOfUTC(t *testing.T) {
	// A driver handing back local midnight in a zone west of UTC must not shift the day backwards
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	local := time.Date(1949, 6, 8, 0, 0, 0, 0, saoPaulo)
	assert.Equal(t, "1949-06-08", FormatDate(local))

	utcMidnight := time.Date(1949, 6, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1949-06-08", FormatDate(utcMidnight))
}

func TestPgDateConversion(t *testing.T) {
	d, err := ToPgDate("1949-06-08")
	require.NoError(t, err)
	assert.True(t, d.Valid)
	assert.Equal(t, "1949-06-08", FormatDate(d.Time))
	assert.Equal(t, pgtype.Finite, d.InfinityModifier)

	_, err = ToPgDate("08-06-1949")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, false},
		{"-3", -3, false},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"99999999999999999999", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseID(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
