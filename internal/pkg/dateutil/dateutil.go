// Package dateutil collapses arbitrary date-time inputs to canonical calendar
// days. A canonical day is midnight UTC labeled with the year/month/day the
// instant falls on in a single configured timezone, so the same record is
// matched regardless of what time-of-day or offset a client supplied.
package dateutil

import (
	"fmt"
	"time"
)

// Accepted input layouts, tried in order. Date-only inputs are interpreted
// as that calendar day in the canonical timezone.
var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseFlexible parses a raw date string. Date-only values are anchored in
// loc; timestamped values keep their own offset.
func ParseFlexible(raw string, loc *time.Location) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %q", raw)
}

// DayOf returns the canonical day of t: the instant is resolved in loc and
// its calendar date is stored as midnight UTC.
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// DayBounds returns the half-open interval [day, day+24h) covering the
// canonical day of t.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	day := DayOf(t, loc)
	return day, day.Add(24 * time.Hour)
}

// Today returns the canonical day for the current instant.
func Today(loc *time.Location) time.Time {
	return DayOf(time.Now(), loc)
}
