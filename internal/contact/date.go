package contact

import (
	"fmt"
	"strings"
	"time"
)

// DisplayLayout is the user-facing date format (DD.MM.YYYY).
const DisplayLayout = "02.01.2006"

// inputLayout accepts one- or two-digit day and month.
const inputLayout = "2.1.2006"

// isoLayout is the storage date format.
const isoLayout = "2006-01-02"

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year, month and day, normalizing overflow the
// way time.Date does (e.g. February 29 in a non-leap year becomes March 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a user-entered DD.MM.YYYY date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(inputLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q (use DD.MM.YYYY)", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// ParseISODate parses a YYYY-MM-DD date.
func ParseISODate(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q (use YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats d as DD.MM.YYYY.
func (d Date) String() string {
	return d.Time().Format(DisplayLayout)
}

// ISO formats d as YYYY-MM-DD.
func (d Date) ISO() string {
	return d.Time().Format(isoLayout)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}
