// Copyright 2026 The Whenever Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil_test

import (
	"math"
	"testing"

	"github.com/whenever-go/whenever/civil"
)

func mustTime(t *testing.T, hour, minute, second, nanosecond int64) civil.TimeOfDay {
	t.Helper()
	tod, ok := civil.MakeTime(hour, minute, second, nanosecond)
	if !ok {
		t.Fatalf("MakeTime(%d, %d, %d, %d) failed", hour, minute, second, nanosecond)
	}
	return tod
}

func TestMakeTime(t *testing.T) {
	for _, test := range []struct {
		hour, minute, second, nanosecond int64
		ok                               bool
	}{
		{0, 0, 0, 0, true},
		{23, 59, 59, 999_999_999, true},
		{12, 30, 45, 123_456_789, true},

		{24, 0, 0, 0, false},
		{-1, 0, 0, 0, false},
		{0, 60, 0, 0, false},
		{0, -1, 0, 0, false},
		{0, 0, 60, 0, false}, // no leap seconds
		{0, 0, -1, 0, false},
		{0, 0, 0, 1_000_000_000, false},
		{0, 0, 0, -1, false},
		{math.MaxInt64, 0, 0, 0, false},
		{0, 0, 0, math.MinInt64, false},
	} {
		tod, ok := civil.MakeTime(test.hour, test.minute, test.second, test.nanosecond)
		if ok != test.ok {
			t.Errorf("MakeTime(%d, %d, %d, %d) ok = %t, want %t",
				test.hour, test.minute, test.second, test.nanosecond, ok, test.ok)
			continue
		}
		if !ok {
			if tod != (civil.TimeOfDay{}) {
				t.Errorf("MakeTime(%d, %d, %d, %d) returned %v on failure, want zero",
					test.hour, test.minute, test.second, test.nanosecond, tod)
			}
			continue
		}
		if int64(tod.Hour()) != test.hour || int64(tod.Minute()) != test.minute ||
			int64(tod.Second()) != test.second || int64(tod.Nanosecond()) != test.nanosecond {
			t.Errorf("MakeTime(%d, %d, %d, %d) = %v",
				test.hour, test.minute, test.second, test.nanosecond, tod)
		}
	}
}

func TestTimeOfDayCompare(t *testing.T) {
	times := []civil.TimeOfDay{
		mustTime(t, 0, 0, 0, 0),
		mustTime(t, 0, 0, 0, 1),
		mustTime(t, 0, 0, 1, 0),
		mustTime(t, 0, 59, 59, 0),
		mustTime(t, 1, 0, 0, 0),
		mustTime(t, 23, 59, 59, 999_999_999),
	}
	for i, a := range times {
		for j, b := range times {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = +1
			}
			if got := a.Compare(b); got != want {
				t.Errorf("%v.Compare(%v) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	for _, test := range []struct {
		time civil.TimeOfDay
		want string
	}{
		{civil.TimeOfDay{}, "00:00:00"},
		{mustTime(t, 3, 4, 5, 0), "03:04:05"},
		{mustTime(t, 3, 4, 5, 6), "03:04:05.000000006"},
		{mustTime(t, 23, 59, 59, 999_999_999), "23:59:59.999999999"},
	} {
		if got := test.time.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}
