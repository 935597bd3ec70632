// Package biztime provides time utilities for the billing domain.
// All storage and transport use UTC; implicit Local timezone is prohibited.
package biztime

import (
	"fmt"
	"time"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// StartOfDayUTC returns the start of day (00:00:00) of the given time, in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatEventTime formats a UTC time for storage in event payloads using
// RFC3339 format. This ensures consistent timestamp serialization across
// the audit log.
func FormatEventTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseEventTime parses a timestamp from an event payload (RFC3339 format).
// This is the counterpart to FormatEventTime.
func ParseEventTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid event timestamp format %q: %w", s, err)
	}
	return t, nil
}
