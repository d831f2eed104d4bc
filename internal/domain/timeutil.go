package domain

import (
	"fmt"
	"time"
)

// naiveLayouts are accepted for timestamps that carry no offset; they are read as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

const dateLayout = "2006-01-02"

// ToUTC converts t to UTC. All comparisons and durations use UTC instants.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// ParseTimestamp parses an RFC 3339 timestamp. A timestamp without a zone
// offset is interpreted as UTC. The result is always in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// ParseDate parses a calendar date in YYYY-MM-DD form as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// StartOfDay returns 00:00:00 UTC of the calendar day of d.
func StartOfDay(d time.Time) time.Time {
	d = d.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last representable storage instant of the calendar
// day of d (23:59:59.999999 UTC; PostgreSQL keeps microseconds).
func EndOfDay(d time.Time) time.Time {
	return StartOfDay(d).AddDate(0, 0, 1).Add(-time.Microsecond)
}
