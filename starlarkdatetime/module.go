// Copyright 2026 The Whenever Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package starlarkdatetime exposes the civil date/time values as a
// Starlark module.
//
//	datetime = module(
//	   date,
//	   time,
//	   utc,
//	   from_timestamp,
//	)
//
// def date(year, month, day):
//	The date function validates a (year, month, day) triple against
//	proleptic Gregorian rules and returns it as a date value, or fails
//	with an error naming the first invalid field. Date values carry
//	year, month, day, and ordinal attributes and are totally ordered
//	by calendar order.
//
// def time(hour=0, minute=0, second=0, nanosecond=0):
//	The time function validates a clock reading on a 24-hour clock
//	and returns it as a time value, or fails with "invalid time".
//
// def utc(year, month, day, hour=0, minute=0, second=0, nanosecond=0):
//	The utc function validates the full civil datetime and returns
//	the corresponding absolute UTC value. Its timestamp attribute
//	holds whole seconds since 0001-01-01T00:00:00Z; the calendar
//	attributes (year .. nanosecond) are recomputed from that
//	timestamp on access.
//
// def from_timestamp(seconds, nanosecond=0):
//	The from_timestamp function rebuilds a utc value from the pair
//	produced by its timestamp and nanosecond attributes, the stable
//	interchange representation.
package starlarkdatetime

import (
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"github.com/whenever-go/whenever/civil"
)

// ModuleName defines the expected name for this Module when used in
// the starlark runtime.
const ModuleName = "datetime"

// Module datetime is a Starlark module of civil date/time values.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"date":           starlark.NewBuiltin("date", newDate),
		"time":           starlark.NewBuiltin("time", newTime),
		"utc":            starlark.NewBuiltin("utc", newUTC),
		"from_timestamp": starlark.NewBuiltin("from_timestamp", fromTimestamp),
	},
}

// LoadModule loads the datetime module.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		ModuleName: Module,
	}, nil
}

func newDate(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var year, month, day int64
	if err := starlark.UnpackArgs("date", args, kwargs, "year", &year, "month", &month, "day", &day); err != nil {
		return nil, err
	}
	d, err := civil.MakeDate(year, month, day)
	if err != nil {
		return nil, err
	}
	return Date(d), nil
}

func newTime(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var hour, minute, second, nanosecond int64
	if err := starlark.UnpackArgs("time", args, kwargs,
		"hour?", &hour, "minute?", &minute, "second?", &second, "nanosecond?", &nanosecond); err != nil {
		return nil, err
	}
	t, ok := civil.MakeTime(hour, minute, second, nanosecond)
	if !ok {
		return nil, errInvalidTime
	}
	return TimeOfDay(t), nil
}

func newUTC(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var year, month, day int64
	var hour, minute, second, nanosecond int64
	if err := starlark.UnpackArgs("utc", args, kwargs,
		"year", &year, "month", &month, "day", &day,
		"hour?", &hour, "minute?", &minute, "second?", &second, "nanosecond?", &nanosecond); err != nil {
		return nil, err
	}
	d, err := civil.MakeDate(year, month, day)
	if err != nil {
		return nil, err
	}
	t, ok := civil.MakeTime(hour, minute, second, nanosecond)
	if !ok {
		return nil, errInvalidTime
	}
	return UTCDateTime(civil.DateTime{Date: d, Time: t}.Instant()), nil
}

func fromTimestamp(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var seconds uint64
	var nanosecond int64
	if err := starlark.UnpackArgs("from_timestamp", args, kwargs,
		"seconds", &seconds, "nanosecond?", &nanosecond); err != nil {
		return nil, err
	}
	if nanosecond < 0 || nanosecond > 999_999_999 {
		return nil, errInvalidTimestamp
	}
	i, ok := civil.MakeInstant(seconds, uint32(nanosecond))
	if !ok {
		return nil, errInvalidTimestamp
	}
	return UTCDateTime(i), nil
}
