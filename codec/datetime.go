// Package codec converts between OParl wire timestamps and time.Time.
package codec

import (
	"errors"
	"fmt"
	"time"
)

// Wire layouts. DateTimeLayout requires a numeric offset; "Z" and fractional
// seconds are rejected.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05-07:00"
)

// ErrNotTimestamp is wrapped by ParseDateOrDateTime when s matches neither
// layout.
var ErrNotTimestamp = errors.New("codec: not a date or datetime")

// ParseDate parses YYYY-MM-DD as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// ParseDateTime parses YYYY-MM-DDTHH:MM:SS±HH:MM. time.Parse accepts a
// fraction after the seconds even when the layout has none, so the length is
// checked first.
func ParseDateTime(s string) (time.Time, error) {
	if len(s) != len(DateTimeLayout) {
		return time.Time{}, fmt.Errorf("codec: datetime %q: want layout %s", s, DateTimeLayout)
	}
	return time.Parse(DateTimeLayout, s)
}

// ParseDateOrDateTime accepts either layout. A bare date is midnight UTC.
func ParseDateOrDateTime(s string) (time.Time, error) {
	if len(s) == len(DateLayout) {
		if t, err := ParseDate(s); err == nil {
			return t, nil
		}
	} else if t, err := ParseDateTime(s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrNotTimestamp, s)
}

// FormatDate renders t in its own location as YYYY-MM-DD.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// FormatDateTime renders t with a numeric offset. UTC is written as +00:00.
func FormatDateTime(t time.Time) string { return t.Format(DateTimeLayout) }
