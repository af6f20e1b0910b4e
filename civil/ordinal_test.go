// Copyright 2026 The Whenever Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil_test

import (
	"testing"
	"time"

	"github.com/whenever-go/whenever/civil"
)

func TestOrdinalKnownValues(t *testing.T) {
	for _, test := range []struct {
		year, month, day int64
		want             uint32
	}{
		{1, 1, 1, 0},
		{1, 1, 2, 1},
		{1, 12, 31, 364},
		{1, 3, 1, 59},
		{4, 2, 29, 1154}, // first leap day of the era
		{8, 2, 29, 2615},
		{12, 2, 29, 4076},
		{1970, 1, 1, 719162}, // Unix epoch
		{2000, 2, 29, 730178},
		{2000, 3, 1, 730179},
		{9999, 12, 31, civil.MaxOrdinal},
	} {
		d := mustDate(t, test.year, test.month, test.day)
		if got := d.Ordinal(); got != test.want {
			t.Errorf("%v.Ordinal() = %d, want %d", d, got, test.want)
		}
		if got := civil.FromOrdinal(test.want); got != d {
			t.Errorf("FromOrdinal(%d) = %v, want %v", test.want, got, d)
		}
	}
}

// TestOrdinalRoundTrip sweeps every date in the supported range and
// checks that Ordinal and FromOrdinal are mutually inverse and that
// ordinals advance by exactly one per day.
func TestOrdinalRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("full-range sweep skipped in short mode")
	}
	var prev uint32
	first := true
	for year := civil.MinYear; year <= civil.MaxYear; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= civil.DaysInMonth(year, month); day++ {
				d := mustDate(t, int64(year), int64(month), int64(day))
				ord := d.Ordinal()
				if !first && ord != prev+1 {
					t.Fatalf("%v.Ordinal() = %d, want %d", d, ord, prev+1)
				}
				if got := civil.FromOrdinal(ord); got != d {
					t.Fatalf("FromOrdinal(%d) = %v, want %v", ord, got, d)
				}
				prev, first = ord, false
			}
		}
	}
	if prev != civil.MaxOrdinal {
		t.Errorf("last ordinal = %d, want MaxOrdinal (%d)", prev, civil.MaxOrdinal)
	}
}

func TestOrdinalLeapBoundaries(t *testing.T) {
	for _, test := range []struct {
		year int64
		leap bool
	}{
		{1900, false},
		{2000, true},
		{2004, true},
		{2100, false},
	} {
		feb28 := mustDate(t, test.year, 2, 28)
		next := civil.FromOrdinal(feb28.Ordinal() + 1)
		if test.leap {
			if next.Month() != 2 || next.Day() != 29 {
				t.Errorf("day after %v = %v, want %04d-02-29", feb28, next, test.year)
			}
		} else {
			if next.Month() != 3 || next.Day() != 1 {
				t.Errorf("day after %v = %v, want %04d-03-01", feb28, next, test.year)
			}
		}
	}
}

// TestOrdinalLeapDays round-trips every leap day in the supported
// range. Unlike the exhaustive sweep this always runs: the year-of-era
// recovery in FromOrdinal is most easily broken exactly on the last
// day of a March-based leap year, and such a defect mis-converts every
// leap day while leaving all other dates intact.
func TestOrdinalLeapDays(t *testing.T) {
	for year := civil.MinYear; year <= civil.MaxYear; year++ {
		if !civil.IsLeap(year) {
			continue
		}
		d := mustDate(t, int64(year), 2, 29)
		got := civil.FromOrdinal(d.Ordinal())
		if got != d {
			t.Errorf("FromOrdinal(%d) = %v, want %v", d.Ordinal(), got, d)
		}
		if got.Day() > civil.DaysInMonth(got.Year(), got.Month()) {
			t.Errorf("FromOrdinal(%d) = %v: day out of range for month", d.Ordinal(), got)
		}
	}
}

// TestOrdinalAgainstStdlib cross-checks day counts against the
// standard library's calendar over a sample of dates.
func TestOrdinalAgainstStdlib(t *testing.T) {
	epoch := mustDate(t, 1970, 1, 1).Ordinal()
	for _, d := range []civil.Date{
		mustDate(t, 1970, 1, 1),
		mustDate(t, 1969, 12, 31),
		mustDate(t, 1900, 2, 28),
		mustDate(t, 2000, 2, 29),
		mustDate(t, 2038, 1, 19),
		mustDate(t, 2100, 3, 1),
		mustDate(t, 9999, 12, 31),
	} {
		want := time.Date(d.Year(), time.Month(d.Month()), d.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400
		got := int64(d.Ordinal()) - int64(epoch)
		if got != want {
			t.Errorf("%v: %d days since epoch, stdlib says %d", d, got, want)
		}
	}
}

func TestFromOrdinalOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FromOrdinal(MaxOrdinal+1) did not panic")
		}
	}()
	civil.FromOrdinal(civil.MaxOrdinal + 1)
}
