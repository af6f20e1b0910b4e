// Copyright 2026 The Whenever Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

// This file converts between a Date and its day ordinal: a single
// integer counting days since 0001-01-01 (ordinal 0). The conversion is
// the closed-form civil-calendar algorithm described at
// https://howardhinnant.github.io/date_algorithms.html: the year is
// shifted to start on March 1 so that the variable-length February
// falls at the end, the day count is decomposed over the 400/100/4-year
// leap cycles, and the result is shifted back. Both directions run in
// constant time using only integer arithmetic.

const (
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461

	// Days from 0000-03-01, the March-based internal epoch, to
	// 0001-01-01, ordinal 0.
	marchEpochShift = 306
)

// MaxOrdinal is the ordinal of 9999-12-31, the last supported date.
const MaxOrdinal = 3652058

// Ordinal returns the day ordinal of d: the number of days since
// 0001-01-01. Ordinals increase by exactly 1 per calendar day, so the
// mapping is a bijection over the supported range and ordering of
// ordinals agrees with calendar ordering.
func (d Date) Ordinal() uint32 {
	y, m, day := d.Year(), d.Month(), d.Day()
	if m <= 2 {
		y--
	}
	mp := m - 3 // March-based month, 0..11
	if m <= 2 {
		mp = m + 9
	}
	era := y / 400
	yoe := y - era*400                     // year of era, 0..399
	doy := (153*mp+2)/5 + day - 1          // day of March-based year, 0..365
	doe := yoe*365 + yoe/4 - yoe/100 + doy // day of era, 0..146096
	return uint32(era*daysPer400Years + doe - marchEpochShift)
}

// FromOrdinal returns the Date with the given ordinal. It is the exact
// inverse of Date.Ordinal over ordinals 0..MaxOrdinal.
//
// Ordinals past MaxOrdinal do not correspond to any supported date;
// validated construction is the only sanctioned way to obtain an
// ordinal, so FromOrdinal treats an out-of-range argument as a broken
// precondition and panics.
func FromOrdinal(ord uint32) Date {
	if ord > MaxOrdinal {
		panic("civil: ordinal beyond 9999-12-31")
	}
	z := int(ord) + marchEpochShift
	era := z / daysPer400Years
	doe := z - era*daysPer400Years
	yoe := (doe - doe/(daysPer4Years-1) + doe/daysPer100Years - doe/(daysPer400Years-1)) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	y := yoe + era*400
	if m <= 2 {
		y++
	}
	return Date{uint16(y - 1), uint8(m - 1), uint8(day - 1)}
}
