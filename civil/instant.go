// Copyright 2026 The Whenever Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import "time"

const (
	secondsPerDay = 86400

	// unixEpochSeconds counts the seconds from 0001-01-01T00:00:00Z,
	// instant zero, to the Unix epoch 1970-01-01T00:00:00Z.
	unixEpochSeconds = 719162 * secondsPerDay

	// maxInstantSeconds is one past the last representable second,
	// the first second of the unsupported year 10000.
	maxInstantSeconds = (MaxOrdinal + 1) * secondsPerDay
)

// A DateTime is a civil wall-clock moment: a Date paired with a
// TimeOfDay, with no associated zone. Both components carry their own
// invariants, so any DateTime assembled from validated values is valid.
type DateTime struct {
	Date Date
	Time TimeOfDay
}

// An Instant is an absolute UTC moment, stored as whole seconds since
// 0001-01-01T00:00:00Z plus sub-second nanoseconds. The (seconds,
// nanoseconds) pair is the stable interchange representation; ordering
// it lexicographically is chronological ordering.
//
// Instant is comparable; == is structural over the pair.
type Instant struct {
	secs  uint64
	nanos uint32
}

// Instant converts the wall-clock moment to its absolute form. The
// seconds field is the date's ordinal scaled to days plus the clock
// reading; for the supported year range the result fits a uint64 with
// room to spare, so no overflow is possible.
func (dt DateTime) Instant() Instant {
	secs := uint64(dt.Date.Ordinal())*secondsPerDay + dt.Time.daySeconds()
	return Instant{secs, dt.Time.nanos}
}

// DateTime decomposes the instant back into its wall-clock form. It is
// the exact inverse of DateTime.Instant: the round trip reproduces
// every field bit for bit.
func (i Instant) DateTime() DateTime {
	rem := i.secs % secondsPerDay
	return DateTime{
		Date: FromOrdinal(uint32(i.secs / secondsPerDay)),
		Time: TimeOfDay{
			hour:   uint8(rem / 3600),
			minute: uint8(rem % 3600 / 60),
			second: uint8(rem % 60),
			nanos:  i.nanos,
		},
	}
}

// MakeInstant validates a raw (seconds, nanoseconds) pair — for
// example one read back from storage — and returns the corresponding
// Instant. It reports ok=false if seconds lies past the year 9999 or
// nanoseconds is a full second or more.
func MakeInstant(seconds uint64, nanoseconds uint32) (i Instant, ok bool) {
	if seconds >= maxInstantSeconds || nanoseconds > 999_999_999 {
		return Instant{}, false
	}
	return Instant{seconds, nanoseconds}, true
}

// UncheckedInstant assembles an Instant directly from a (seconds,
// nanoseconds) pair without validation. It exists for callers that
// hold a pair already known valid, typically one produced by
// Instant.Seconds and Instant.Nanoseconds; feeding it anything else
// breaks the preconditions of every method on the result. Untrusted
// input belongs in MakeInstant.
func UncheckedInstant(seconds uint64, nanoseconds uint32) Instant {
	return Instant{seconds, nanoseconds}
}

// Seconds returns the whole seconds since 0001-01-01T00:00:00Z.
func (i Instant) Seconds() uint64 { return i.secs }

// Nanoseconds returns the sub-second nanoseconds, in 0..999999999.
func (i Instant) Nanoseconds() uint32 { return i.nanos }

// Compare returns -1, 0, or +1 according to whether i is before, equal
// to, or after other in time.
func (i Instant) Compare(other Instant) int {
	switch {
	case i == other:
		return 0
	case i.secs < other.secs, i.secs == other.secs && i.nanos < other.nanos:
		return -1
	}
	return +1
}

// GoTime returns the instant as a standard library time.Time in UTC.
func (i Instant) GoTime() time.Time {
	return time.Unix(int64(i.secs)-unixEpochSeconds, int64(i.nanos)).UTC()
}

// InstantOfGoTime converts a standard library time.Time to an Instant.
// It reports ok=false if the time falls outside years 1..9999.
func InstantOfGoTime(t time.Time) (i Instant, ok bool) {
	secs := t.Unix() + unixEpochSeconds
	if secs < 0 || secs >= maxInstantSeconds {
		return Instant{}, false
	}
	return Instant{uint64(secs), uint32(t.Nanosecond())}, true
}

// String returns the canonical form of the corresponding wall-clock
// moment, e.g. "2021-01-02T03:04:05Z".
func (i Instant) String() string { return i.DateTime().String() }

// String returns the canonical form of the moment, e.g.
// "2021-01-02T03:04:05Z", with nanoseconds appended when nonzero.
func (dt DateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String() + "Z"
}
