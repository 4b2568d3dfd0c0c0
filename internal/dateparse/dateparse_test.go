package dateparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func istanbul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)
	return loc
}

func TestParseNumericDateRoundTrip(t *testing.T) {
	loc := istanbul(t)
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, loc)

	tests := []struct {
		input    string
		readable string
		iso      string
	}{
		{"20.02.2026 14:00", "20.02.2026 14:00", "2026-02-20T14:00:00+03:00"},
		{"20/02/2026 14.00", "20.02.2026 14:00", "2026-02-20T14:00:00+03:00"},
		{"20-02-2026 14:00", "20.02.2026 14:00", "2026-02-20T14:00:00+03:00"},
		{"1.3.2026 9:05", "01.03.2026 09:05", "2026-03-01T09:05:00+03:00"},
		{"lütfen 28.02.2026 saat 16:45 olsun", "28.02.2026 16:45", "2026-02-28T16:45:00+03:00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := Parse(tt.input, now, loc)
			require.NoError(t, err)
			assert.Equal(t, tt.readable, res.Readable)
			assert.Equal(t, tt.iso, res.ISO)
		})
	}
}

func TestParseMonthNames(t *testing.T) {
	loc := istanbul(t)
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, loc)

	tests := []struct {
		input    string
		readable string
	}{
		{"20 şubat saat 15.30", "20.02.2026 15:30"},
		{"20 subat 15:30", "20.02.2026 15:30"},
		{"3 mart", "03.03.2026 10:00"},
		{"3 mart 2027", "03.03.2027 10:00"},
		{"5 eylül", "05.09.2026 10:00"},
		{"5 eylul", "05.09.2026 10:00"},
		{"12 ağustos saat 11.15", "12.08.2026 11:15"},
		{"12 agustos saat 11.15", "12.08.2026 11:15"},
		{"1 aralık 2027 saat 18.00", "01.12.2027 18:00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := Parse(tt.input, now, loc)
			require.NoError(t, err)
			assert.Equal(t, tt.readable, res.Readable)
		})
	}
}

func TestParseRelativeKeywordsFollowNow(t *testing.T) {
	loc := istanbul(t)

	now := time.Date(2026, 3, 5, 12, 0, 0, 0, loc)
	res, err := Parse("bugün 14.30", now, loc)
	require.NoError(t, err)
	assert.Equal(t, "05.03.2026 14:30", res.Readable)

	res, err = Parse("yarın", now, loc)
	require.NoError(t, err)
	assert.Equal(t, "06.03.2026 10:00", res.Readable)

	// Same keyword, different now, different date.
	later := time.Date(2026, 7, 20, 8, 0, 0, 0, loc)
	res, err = Parse("bugun", later, loc)
	require.NoError(t, err)
	assert.Equal(t, "20.07.2026 10:00", res.Readable)

	res, err = Parse("yarin saat 9.00", later, loc)
	require.NoError(t, err)
	assert.Equal(t, "21.07.2026 09:00", res.Readable)

	// Month rollover.
	eom := time.Date(2026, 3, 31, 23, 0, 0, 0, loc)
	res, err = Parse("yarın", eom, loc)
	require.NoError(t, err)
	assert.Equal(t, "01.04.2026 10:00", res.Readable)
}

func TestParsePrecedence(t *testing.T) {
	loc := istanbul(t)
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, loc)

	// Numeric date beats a month name in the same text.
	res, err := Parse("15.04.2026 3 mart saat 11:00", now, loc)
	require.NoError(t, err)
	assert.Equal(t, "15.04.2026 11:00", res.Readable)

	// An explicitly marked time beats a trailing one.
	res, err = Parse("3 mart saat 9.15 ya da 12.30", now, loc)
	require.NoError(t, err)
	assert.Equal(t, "03.03.2026 09:15", res.Readable)

	// A trailing time beats one embedded earlier in the text.
	res, err = Parse("12.30 yerine 3 mart 14.00", now, loc)
	require.NoError(t, err)
	assert.Equal(t, "03.03.2026 14:00", res.Readable)
}

func TestParseBareNumericDatePicksEmbeddedTime(t *testing.T) {
	loc := istanbul(t)
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, loc)

	// The day.month pair of a bare numeric date also matches the
	// anywhere-in-text time pattern, so 20.02 doubles as 20:02.
	res, err := Parse("20.02.2026", now, loc)
	require.NoError(t, err)
	assert.Equal(t, "20.02.2026 20:02", res.Readable)
}

func TestParseFailures(t *testing.T) {
	loc := istanbul(t)
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, loc)

	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"empty", "", ErrEmpty},
		{"no date content", "merhaba", ErrUnparsed},
		{"time only", "saat 15.30", ErrUnparsed},
		{"hour out of range", "3 mart saat 25.00", ErrInvalidTime},
		{"minute out of range", "3 mart 10:99", ErrInvalidTime},
		{"day out of range", "32.01.2026 10:00", ErrInvalidDayMonth},
		{"month out of range", "10.13.2026 10:00", ErrInvalidDayMonth},
		{"calendar overflow april", "31.04.2026 10:00", ErrInvalidDate},
		{"calendar overflow february", "30.02.2026 10:00", ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(tt.input, now, loc)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseDefaultTime(t *testing.T) {
	loc := istanbul(t)
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, loc)

	res, err := Parse("3 mart", now, loc)
	require.NoError(t, err)
	assert.Equal(t, "03.03.2026 10:00", res.Readable)
}
