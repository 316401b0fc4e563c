/*
Package calendar provides the date primitives shared by the quoting and
pricing engines.

PURPOSE:
  Both pipelines (points quoting and price-cap evaluation) operate on plain
  UTC calendar dates and expand a stay into its individual nights. This
  package owns that logic so the two engines cannot drift apart.

KEY CONCEPTS:
  - Date:     A calendar day (no time-of-day, no timezone, always UTC)
  - MonthDay: A year-independent month/day key for banded calendars
  - Window:   A possibly wrap-around month/day range (e.g., Dec 15 → Jan 5)

DESIGN PRINCIPLES:
  1. Dates are values: small, comparable, immutable
  2. Wire format is always "YYYY-MM-DD"
  3. Stay expansion is [check-in, check-out): check-out night is never
     included

SEE ALSO:
  - stay.go: Stay-to-nights expansion
  - window.go: Cyclic month/day containment
*/
package calendar

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - A UTC calendar day
// =============================================================================

type Date struct {
	t time.Time
}

// NewDate builds a Date from year/month/day. Out-of-range values normalize
// the way time.Date does (Feb 30 → Mar 1/2).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" wire date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return Date{t: t.UTC()}, nil
}

// MustParseDate is for static reference data and tests.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int            { return d.t.Year() }
func (d Date) Month() time.Month    { return d.t.Month() }
func (d Date) Day() int             { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool         { return d.t.IsZero() }

// WithYear re-anchors the date into another year, keeping month/day.
// Feb 29 in a non-leap target normalizes to Mar 1.
func (d Date) WithYear(year int) Date { return NewDate(year, d.Month(), d.Day()) }

func (d Date) MonthDay() MonthDay { return MonthDay{Month: d.Month(), Day: d.Day()} }

func (d Date) String() string { return d.t.Format("2006-01-02") }

// DaysBetween returns the number of days from `from` to `to` (negative when
// `to` precedes `from`).
func DaysBetween(from, to Date) int {
	return int(to.t.Sub(from.t).Hours() / 24)
}
