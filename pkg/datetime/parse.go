// Package datetime provides date utility functions for calendar dates without
// a time component.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/iwvelando/cesantias/pkg/constants"
)

const (
	// DateLayout is the format expected in config files and on the command line.
	DateLayout = constants.DateLayout
)

// ParseDate parses a YYYY-MM-DD string into a civil.Date.
func ParseDate(date string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(date))
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid date %q, expected %s: %w", date, DateLayout, err)
	}
	return d, nil
}

// MustParseDate parses a date string and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(date string) civil.Date {
	d, err := ParseDate(date)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDate builds a civil.Date from its components.
func NewDate(year int, month time.Month, day int) civil.Date {
	return civil.Date{Year: year, Month: month, Day: day}
}

// FormatDisplay renders a date day-first, e.g. 31/12/2024.
func FormatDisplay(d civil.Date) string {
	return d.In(time.UTC).Format(constants.DisplayDateLayout)
}

// Latest returns the later of two dates.
func Latest(a, b civil.Date) civil.Date {
	if a.After(b) {
		return a
	}
	return b
}

// Earliest returns the earlier of two dates.
func Earliest(a, b civil.Date) civil.Date {
	if a.Before(b) {
		return a
	}
	return b
}

// SemesterStart returns the first day of the given semester (1 or 2) of year.
func SemesterStart(year, semester int) (civil.Date, error) {
	switch semester {
	case 1:
		return NewDate(year, time.January, 1), nil
	case 2:
		return NewDate(year, time.July, 1), nil
	default:
		return civil.Date{}, fmt.Errorf("semester must be 1 or 2, got %d", semester)
	}
}

// SemesterEnd returns the last day of the given semester (1 or 2) of year.
func SemesterEnd(year, semester int) (civil.Date, error) {
	switch semester {
	case 1:
		return NewDate(year, time.June, 30), nil
	case 2:
		return NewDate(year, time.December, 31), nil
	default:
		return civil.Date{}, fmt.Errorf("semester must be 1 or 2, got %d", semester)
	}
}
