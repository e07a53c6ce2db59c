package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexible(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"2024-03-01", true},
		{"2024-03-01T23:00:00Z", true},
		{"2024-03-01T08:30:00+05:30", true},
		{"2024-03-01T23:00:00", true},
		{"01-03-2024", false},
		{"not-a-date", false},
		{"", false},
	}
	for _, c := range cases {
		_, err := ParseFlexible(c.input, time.UTC)
		if c.valid {
			assert.NoError(t, err, "input %q", c.input)
		} else {
			assert.Error(t, err, "input %q", c.input)
		}
	}
}

// Different instant-representations of the same calendar day must collapse
// to the same stored day.
func TestDayOf_SameDayDifferentInstants(t *testing.T) {
	dateOnly, err := ParseFlexible("2024-03-01", time.UTC)
	require.NoError(t, err)
	lateEvening, err := ParseFlexible("2024-03-01T23:00:00Z", time.UTC)
	require.NoError(t, err)

	assert.Equal(t, DayOf(dateOnly, time.UTC), DayOf(lateEvening, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), DayOf(lateEvening, time.UTC))
}

func TestDayOf_ResolvesInConfiguredZone(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 23:00 UTC on March 1 is already March 2 in UTC+7.
	instant := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), DayOf(instant, jakarta))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), DayOf(instant, time.UTC))
}

func TestDayOf_DateOnlyAnchoredInZone(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// A plain date means that calendar day in the canonical zone, no matter
	// how far the zone is from UTC.
	parsed, err := ParseFlexible("2024-03-01", jakarta)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), DayOf(parsed, jakarta))
}

func TestDayBounds_HalfOpenInterval(t *testing.T) {
	instant := time.Date(2024, 3, 1, 14, 45, 12, 0, time.UTC)
	start, end := DayBounds(instant, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))

	// Any instant of the day falls inside [start, end); the next midnight
	// belongs to the following day.
	assert.True(t, !instant.Before(start) && instant.Before(end))
	assert.False(t, end.Before(end))
}

func TestToday(t *testing.T) {
	today := Today(time.UTC)
	assert.Equal(t, time.UTC, today.Location())
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
}
