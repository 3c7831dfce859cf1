// Package calendar implements the civil-date arithmetic used by the timeline:
// leap years, month lengths, whole-day differences and ISO-8601 week numbers.
//
// All values are time.Time normalised to midnight UTC, so day differences are
// exact multiples of 24 hours and never affected by DST transitions.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// ErrInvalidDate is returned by Parse when no supported layout matches.
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are tried in order by Parse.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02.01.2006",
	"01/02/2006",
}

// Date returns midnight UTC of the given calendar day. Out-of-range values
// are normalised the same way time.Date does.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize drops the clock component of t, keeping its calendar day in t's
// own location, and returns that day at midnight UTC.
func Normalize(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return Date(y, m, d)
}

// Parse reads a calendar date in one of the supported layouts.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Normalize(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// IsLeapYear reports whether year has 366 days in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days of month in year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// DaysBetween returns the number of whole calendar days from a to b.
// The result is negative when b falls before a.
func DaysBetween(a, b time.Time) int {
	a, b = Normalize(a), Normalize(b)
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

// AddDays moves t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return Normalize(t).AddDate(0, 0, n)
}

// ISOWeekday returns the weekday of t with Monday=1 through Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ISOWeek returns the ISO-8601 week number of t. The date is moved to the
// Thursday of its week, whose year owns the week, and the week number is the
// ordinal of that Thursday divided into sevens.
func ISOWeek(t time.Time) int {
	d := Normalize(t)
	thursday := d.AddDate(0, 0, 4-ISOWeekday(d))
	jan1 := Date(thursday.Year(), time.January, 1)
	ordinal := DaysBetween(jan1, thursday) + 1
	return (ordinal + 6) / 7
}

// FirstMonday returns the day of month of the first Monday in month.
func FirstMonday(year int, month time.Month) int {
	return 1 + (8-ISOWeekday(Date(year, month, 1)))%7
}

// YearBounds returns Jan 1 and Dec 31 of year.
func YearBounds(year int) (time.Time, time.Time) {
	return Date(year, time.January, 1), Date(year, time.December, 31)
}
