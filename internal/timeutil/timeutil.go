package timeutil

import (
	"fmt"
	"time"
)

// DefaultZone is the civil-time zone events are interpreted in when the model
// omits an offset.
const DefaultZone = "Asia/Seoul"

// ResolveLocation returns the named location, falling back to the default
// zone (and then UTC) when the name is empty or unknown.
func ResolveLocation(timezone string) *time.Location {
	if timezone == "" {
		timezone = DefaultZone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseDateTime parses a model-produced datetime. An explicit offset (RFC3339)
// is preserved; offset-less layouts are read in the provided timezone.
func ParseDateTime(value, timezone string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("time value is required")
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	loc := ResolveLocation(timezone)

	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse time: %s", value)
}

// EnsureEnd returns an end time that is never before start: the given end when
// it is valid and not earlier than start, otherwise start plus one hour.
func EnsureEnd(start, end time.Time) time.Time {
	if end.IsZero() || end.Before(start) {
		return start.Add(time.Hour)
	}
	return end
}
