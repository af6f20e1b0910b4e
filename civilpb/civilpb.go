// Copyright 2026 The Whenever Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package civilpb converts between civil.Instant and the protobuf
// well-known Timestamp message.
//
// The two representations cover the same domain: google.protobuf.Timestamp
// is specified as valid exactly for the years 1..9999, so every
// civil.Instant has a Timestamp form and every valid Timestamp has an
// Instant form. Only the epoch differs (Unix versus 0001-01-01).
package civilpb

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/whenever-go/whenever/civil"
)

// ToProto converts an instant to a protobuf Timestamp.
func ToProto(i civil.Instant) *timestamppb.Timestamp {
	return timestamppb.New(i.GoTime())
}

// FromProto converts a protobuf Timestamp to an instant. It returns an
// error if the message violates the Timestamp validity rules or falls
// outside the years 1..9999.
func FromProto(ts *timestamppb.Timestamp) (civil.Instant, error) {
	if err := ts.CheckValid(); err != nil {
		return civil.Instant{}, err
	}
	i, ok := civil.InstantOfGoTime(ts.AsTime())
	if !ok {
		return civil.Instant{}, fmt.Errorf("timestamp %v out of range", ts.AsTime())
	}
	return i, nil
}
