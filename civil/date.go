// Copyright 2026 The Whenever Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package civil provides immutable calendar date, time-of-day, and UTC
// instant values on the proleptic Gregorian calendar.
//
// The package defines four small, pure components:
//
//	Date       -- a validated (year, month, day) triple
//	TimeOfDay  -- a validated (hour, minute, second, nanosecond) quadruple
//	DateTime   -- a Date paired with a TimeOfDay; a wall-clock moment
//	Instant    -- an absolute UTC moment as (seconds, nanoseconds)
//
// Values are created fully formed by validating constructors and never
// mutated afterwards. All operations are pure functions over value
// types; they may be called concurrently without synchronization.
//
// Time zones, UTC offsets, daylight saving, and leap seconds are out of
// scope. The only absolute timestamp is UTC.
package civil

import (
	"errors"
	"fmt"
)

// Supported year range. Dates outside it are rejected by MakeDate.
const (
	MinYear = 1
	MaxYear = 9999
)

// Errors reported by MakeDate, in checking order: year is validated
// first, then month, then day, so the error identifies the first
// offending field.
var (
	ErrYearRange  = errors.New("year is out of range")
	ErrMonthRange = errors.New("month must be in 1..12")
	ErrDayRange   = errors.New("day is out of range")
)

// monthDays[m] is the length of month m in a non-leap year.
// Entry 0 pads the table so months index it directly.
var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// A Date is a calendar date on the proleptic Gregorian calendar.
//
// The zero value is January 1 of year 1. Date is comparable; == agrees
// with Compare reporting zero.
type Date struct {
	// Fields hold year-1, month-1, day-1 so that the zero value
	// is a valid date (0001-01-01, ordinal 0).
	year       uint16
	month, day uint8
}

// MakeDate validates a (year, month, day) triple and returns the
// corresponding Date.
//
// Arguments are deliberately wide: callers may pass raw, untrusted
// integers, and any value outside a field's valid range — however far
// outside — yields the range error for that field, never undefined
// behavior. On failure the returned error is ErrYearRange,
// ErrMonthRange, or ErrDayRange, identifying the first invalid field.
func MakeDate(year, month, day int64) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, ErrYearRange
	}
	if month < 1 || month > 12 {
		return Date{}, ErrMonthRange
	}
	if day < 1 || day > int64(DaysInMonth(int(year), int(month))) {
		return Date{}, ErrDayRange
	}
	return Date{uint16(year - 1), uint8(month - 1), uint8(day - 1)}, nil
}

// IsLeap reports whether year is a leap year under the proleptic
// Gregorian rule: divisible by 4 and either not divisible by 100 or
// divisible by 400.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the
// given year: 28 or 29 for February, the fixed 30/31 pattern otherwise.
// Month must be in 1..12.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthDays[month]
}

// Year returns the year, in 1..9999.
func (d Date) Year() int { return int(d.year) + 1 }

// Month returns the month, in 1..12.
func (d Date) Month() int { return int(d.month) + 1 }

// Day returns the day of the month, in 1..31.
func (d Date) Day() int { return int(d.day) + 1 }

// Compare returns -1, 0, or +1 according to whether d is before, equal
// to, or after other in calendar order.
func (d Date) Compare(other Date) int {
	switch {
	case d == other:
		return 0
	case d.year < other.year,
		d.year == other.year && d.month < other.month,
		d.year == other.year && d.month == other.month && d.day < other.day:
		return -1
	}
	return +1
}

// String returns the canonical form of the date, e.g. "2021-01-02".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}
