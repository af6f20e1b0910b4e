// Copyright 2026 The Whenever Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import "fmt"

// A TimeOfDay is a clock reading on a 24-hour clock with nanosecond
// resolution, unattached to any date or zone.
//
// The zero value is midnight. TimeOfDay is comparable; == agrees with
// Compare reporting zero.
type TimeOfDay struct {
	hour, minute, second uint8
	nanos                uint32
}

// MakeTime validates an (hour, minute, second, nanosecond) quadruple
// and returns the corresponding TimeOfDay. The four fields are
// independent: hour must be in 0..23, minute and second in 0..59, and
// nanosecond in 0..999999999 (there are no leap seconds). It reports
// ok=false if any field is out of range; callers needing per-field
// diagnostics must check ranges themselves.
func MakeTime(hour, minute, second, nanosecond int64) (t TimeOfDay, ok bool) {
	if hour < 0 || hour > 23 ||
		minute < 0 || minute > 59 ||
		second < 0 || second > 59 ||
		nanosecond < 0 || nanosecond > 999_999_999 {
		return TimeOfDay{}, false
	}
	return TimeOfDay{uint8(hour), uint8(minute), uint8(second), uint32(nanosecond)}, true
}

// Hour returns the hour, in 0..23.
func (t TimeOfDay) Hour() int { return int(t.hour) }

// Minute returns the minute, in 0..59.
func (t TimeOfDay) Minute() int { return int(t.minute) }

// Second returns the second, in 0..59.
func (t TimeOfDay) Second() int { return int(t.second) }

// Nanosecond returns the sub-second nanoseconds, in 0..999999999.
func (t TimeOfDay) Nanosecond() int { return int(t.nanos) }

// daySeconds returns the clock reading as seconds since midnight,
// ignoring nanoseconds.
func (t TimeOfDay) daySeconds() uint64 {
	return uint64(t.hour)*3600 + uint64(t.minute)*60 + uint64(t.second)
}

// Compare returns -1, 0, or +1 according to whether t is before, equal
// to, or after other within a day.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	a, b := t.daySeconds(), other.daySeconds()
	switch {
	case t == other:
		return 0
	case a < b, a == b && t.nanos < other.nanos:
		return -1
	}
	return +1
}

// String returns the canonical form of the clock reading, e.g.
// "03:04:05" or "03:04:05.000000006" when nanoseconds are nonzero.
func (t TimeOfDay) String() string {
	if t.nanos == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.hour, t.minute, t.second, t.nanos)
}
