// Package dateutil provides release date parsing and formatting utilities.
package dateutil

import (
	"errors"
	"time"
)

const (
	// ISOLayout is the storage format of release dates.
	ISOLayout = "2006-01-02"
	// DisplayLayout is the format shown on cards and in the detail view.
	DisplayLayout = "Jan 2, 2006"
)

// ErrInvalidDateFormat is returned for dates that are not YYYY-MM-DD.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// FormatDisplay formats a YYYY-MM-DD date as "Jan 2, 2006".
// Unparseable dates are returned unchanged.
func FormatDisplay(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(DisplayLayout)
}

// Year returns the year of a YYYY-MM-DD date, or 0 if it cannot be parsed.
func Year(s string) int {
	t, err := ParseDate(s)
	if err != nil {
		return 0
	}
	return t.Year()
}
