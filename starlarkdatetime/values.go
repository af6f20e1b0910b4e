// Copyright 2026 The Whenever Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starlarkdatetime

import (
	"errors"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/whenever-go/whenever/civil"
)

var (
	errInvalidTime      = errors.New("invalid time")
	errInvalidTimestamp = errors.New("timestamp out of range")
)

// Date is a Starlark representation of a civil.Date.
type Date civil.Date

var (
	_ starlark.Comparable = Date{}
	_ starlark.HasAttrs   = Date{}
)

// String implements the Stringer interface.
func (d Date) String() string { return fmt.Sprintf("Date(%s)", civil.Date(d)) }

// Type returns a short string describing the value's type.
func (d Date) Type() string { return "datetime.date" }

// Freeze renders Date immutable. required by starlark.Value interface
// because Date is already immutable this is a no-op.
func (d Date) Freeze() {}

// Hash returns a function of x such that Equals(x, y) => Hash(x) == Hash(y)
// required by starlark.Value interface.
func (d Date) Hash() (uint32, error) { return civil.Date(d).Ordinal(), nil }

// Truth returns the truth value of an object required by starlark.Value
// interface. Every valid date is true.
func (d Date) Truth() starlark.Bool { return starlark.True }

// Attr gets a value for a string attribute, implementing dot expression
// support. required by starlark.HasAttrs interface.
func (d Date) Attr(name string) (starlark.Value, error) {
	switch name {
	case "year":
		return starlark.MakeInt(civil.Date(d).Year()), nil
	case "month":
		return starlark.MakeInt(civil.Date(d).Month()), nil
	case "day":
		return starlark.MakeInt(civil.Date(d).Day()), nil
	case "ordinal":
		return starlark.MakeUint64(uint64(civil.Date(d).Ordinal())), nil
	}
	return nil, nil
}

// AttrNames lists available dot expression strings. required by
// starlark.HasAttrs interface.
func (d Date) AttrNames() []string {
	return []string{"day", "month", "ordinal", "year"}
}

// CompareSameType implements comparison of two Date values. required by
// starlark.Comparable interface.
func (d Date) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	return threeway(op, civil.Date(d).Compare(civil.Date(y.(Date)))), nil
}

// TimeOfDay is a Starlark representation of a civil.TimeOfDay.
type TimeOfDay civil.TimeOfDay

var (
	_ starlark.Comparable = TimeOfDay{}
	_ starlark.HasAttrs   = TimeOfDay{}
)

// String implements the Stringer interface.
func (t TimeOfDay) String() string { return fmt.Sprintf("Time(%s)", civil.TimeOfDay(t)) }

// Type returns a short string describing the value's type.
func (t TimeOfDay) Type() string { return "datetime.time" }

// Freeze is a no-op; the value is already immutable.
func (t TimeOfDay) Freeze() {}

// Hash returns a function of x such that Equals(x, y) => Hash(x) == Hash(y)
// required by starlark.Value interface.
func (t TimeOfDay) Hash() (uint32, error) {
	tod := civil.TimeOfDay(t)
	return uint32(tod.Hour()<<17|tod.Minute()<<11|tod.Second()<<5) ^ uint32(tod.Nanosecond()), nil
}

// Truth returns the truth value of an object required by starlark.Value
// interface. Every valid time is true, including midnight.
func (t TimeOfDay) Truth() starlark.Bool { return starlark.True }

// Attr gets a value for a string attribute, implementing dot expression
// support. required by starlark.HasAttrs interface.
func (t TimeOfDay) Attr(name string) (starlark.Value, error) {
	switch name {
	case "hour":
		return starlark.MakeInt(civil.TimeOfDay(t).Hour()), nil
	case "minute":
		return starlark.MakeInt(civil.TimeOfDay(t).Minute()), nil
	case "second":
		return starlark.MakeInt(civil.TimeOfDay(t).Second()), nil
	case "nanosecond":
		return starlark.MakeInt(civil.TimeOfDay(t).Nanosecond()), nil
	}
	return nil, nil
}

// AttrNames lists available dot expression strings. required by
// starlark.HasAttrs interface.
func (t TimeOfDay) AttrNames() []string {
	return []string{"hour", "minute", "nanosecond", "second"}
}

// CompareSameType implements comparison of two TimeOfDay values.
// required by starlark.Comparable interface.
func (t TimeOfDay) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	return threeway(op, civil.TimeOfDay(t).Compare(civil.TimeOfDay(y.(TimeOfDay)))), nil
}

// UTCDateTime is a Starlark representation of a civil.Instant: an
// absolute UTC moment. Calendar attributes are projections recomputed
// from the (seconds, nanoseconds) pair on each access.
type UTCDateTime civil.Instant

var (
	_ starlark.Comparable = UTCDateTime{}
	_ starlark.HasAttrs   = UTCDateTime{}
)

// String implements the Stringer interface.
func (u UTCDateTime) String() string { return fmt.Sprintf("UTCDateTime(%s)", civil.Instant(u)) }

// Type returns a short string describing the value's type.
func (u UTCDateTime) Type() string { return "datetime.utc" }

// Freeze is a no-op; the value is already immutable.
func (u UTCDateTime) Freeze() {}

// Hash returns a function of x such that Equals(x, y) => Hash(x) == Hash(y)
// required by starlark.Value interface.
func (u UTCDateTime) Hash() (uint32, error) {
	x := civil.Instant(u).Seconds() ^ uint64(civil.Instant(u).Nanoseconds())
	return uint32(x) ^ uint32(x>>32), nil
}

// Truth returns the truth value of an object required by starlark.Value
// interface.
func (u UTCDateTime) Truth() starlark.Bool { return starlark.True }

// Attr gets a value for a string attribute, implementing dot expression
// support. required by starlark.HasAttrs interface.
func (u UTCDateTime) Attr(name string) (starlark.Value, error) {
	i := civil.Instant(u)
	switch name {
	case "year":
		return starlark.MakeInt(i.DateTime().Date.Year()), nil
	case "month":
		return starlark.MakeInt(i.DateTime().Date.Month()), nil
	case "day":
		return starlark.MakeInt(i.DateTime().Date.Day()), nil
	case "hour":
		return starlark.MakeInt(i.DateTime().Time.Hour()), nil
	case "minute":
		return starlark.MakeInt(i.DateTime().Time.Minute()), nil
	case "second":
		return starlark.MakeInt(i.DateTime().Time.Second()), nil
	case "nanosecond":
		return starlark.MakeInt(i.DateTime().Time.Nanosecond()), nil
	case "timestamp":
		return starlark.MakeUint64(i.Seconds()), nil
	case "date":
		return Date(i.DateTime().Date), nil
	case "time":
		return TimeOfDay(i.DateTime().Time), nil
	}
	return nil, nil
}

// AttrNames lists available dot expression strings. required by
// starlark.HasAttrs interface.
func (u UTCDateTime) AttrNames() []string {
	return []string{
		"date", "day", "hour", "minute", "month",
		"nanosecond", "second", "time", "timestamp", "year",
	}
}

// CompareSameType implements comparison of two UTCDateTime values.
// required by starlark.Comparable interface.
func (u UTCDateTime) CompareSameType(op syntax.Token, y starlark.Value, depth int) (bool, error) {
	return threeway(op, civil.Instant(u).Compare(civil.Instant(y.(UTCDateTime)))), nil
}

// threeway interprets a three-way comparison value cmp (-1, 0, +1)
// as a boolean comparison (e.g. x < y).
func threeway(op syntax.Token, cmp int) bool {
	switch op {
	case syntax.EQL:
		return cmp == 0
	case syntax.NEQ:
		return cmp != 0
	case syntax.LE:
		return cmp <= 0
	case syntax.LT:
		return cmp < 0
	case syntax.GE:
		return cmp >= 0
	case syntax.GT:
		return cmp > 0
	}
	panic(op)
}
