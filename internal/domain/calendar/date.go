// Package calendar implements the holiday calendar provider and business-day
// arithmetic for Brazilian tribunals.
//
// Functional positioning: leaf domain package.  Everything above it (deadline
// pipeline, matrix builder) depends on the calendar; the calendar depends only
// on pkg/errors, the logging interface, and the ports declared here.
package calendar

import (
	"time"

	"github.com/juristech/prazo/pkg/errors"
)

// isoLayout is the interchange format for dates.  Display formatting uses
// the Brazilian convention, see Format.
const isoLayout = "2006-01-02"

// displayLayout is the localized display format.
const displayLayout = "02/01/2006"

// Date is a civil date with no time component.  The legal day boundary is the
// calendar day; hours never participate in deadline arithmetic.  Internally
// normalized to midnight UTC so Date values are comparable with == and usable
// as map keys.
type Date struct {
	t time.Time
}

// NewDate constructs a Date from year, month, day.  Out-of-range components
// are normalized the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its civil date.  The instant's own location
// determines which calendar day it falls on.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses an ISO-8601 date string (YYYY-MM-DD).
// Returns an ErrCodeInvalidDate error for anything unparseable.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, errors.New(errors.ErrCodeInvalidDate, "invalid date").WithDetail(s).WithCause(err)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of month.
func (d Date) Day() int { return d.t.Day() }

// Weekday returns the day of week.
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// IsWeekend reports whether d falls on Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddDays returns d shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal reports whether d and other denote the same civil date.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// DaysUntil returns the number of calendar days from d to other
// (negative when other is before d).
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// Time returns the underlying instant (midnight UTC).
func (d Date) Time() time.Time { return d.t }

// String returns the ISO-8601 form, YYYY-MM-DD.
func (d Date) String() string { return d.t.Format(isoLayout) }

// Format returns the localized display form, DD/MM/YYYY.
func (d Date) Format() string { return d.t.Format(displayLayout) }

// MarshalJSON encodes the date as a quoted ISO-8601 string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a quoted ISO-8601 string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

//Personal.AI order the ending
