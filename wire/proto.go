package wire

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/blockberries/unixts"
)

// ErrProtoRange is returned when a duration magnitude cannot even be
// expressed in the int64 seconds of a durationpb.Duration.
var ErrProtoRange = errors.New("wire: duration outside protobuf range")

// ToProto converts ts to a protobuf Timestamp. The protobuf type only
// covers years 1 to 9999; the CheckValid error is returned for
// anything outside.
func ToProto(ts unixts.Timestamp) (*timestamppb.Timestamp, error) {
	pb := &timestamppb.Timestamp{Seconds: ts.Seconds(), Nanos: int32(ts.Nanos())}
	if err := pb.CheckValid(); err != nil {
		return nil, fmt.Errorf("wire: to proto: %w", err)
	}
	return pb, nil
}

// FromProto converts a protobuf Timestamp.
func FromProto(pb *timestamppb.Timestamp) (unixts.Timestamp, error) {
	if err := pb.CheckValid(); err != nil {
		return unixts.Timestamp{}, fmt.Errorf("wire: from proto: %w", err)
	}
	return unixts.MustNew(pb.GetSeconds(), uint32(pb.GetNanos())), nil
}

// ToProtoDuration converts d to a protobuf Duration, whose range is
// about ±10,000 years.
func ToProtoDuration(d unixts.Duration) (*durationpb.Duration, error) {
	if d.Seconds() > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %v", ErrProtoRange, d)
	}
	secs, nanos := int64(d.Seconds()), int32(d.Nanos())
	if d.Negative() {
		secs, nanos = -secs, -nanos
	}
	pb := &durationpb.Duration{Seconds: secs, Nanos: nanos}
	if err := pb.CheckValid(); err != nil {
		return nil, fmt.Errorf("wire: to proto duration: %w", err)
	}
	return pb, nil
}

// FromProtoDuration converts a protobuf Duration.
func FromProtoDuration(pb *durationpb.Duration) (unixts.Duration, error) {
	if err := pb.CheckValid(); err != nil {
		return unixts.Duration{}, fmt.Errorf("wire: from proto duration: %w", err)
	}
	secs, nanos := pb.GetSeconds(), pb.GetNanos()
	negative := secs < 0 || nanos < 0
	if negative {
		secs, nanos = -secs, -nanos
	}
	d := unixts.MustNewDuration(uint64(secs), uint32(nanos))
	if negative {
		d = d.Neg()
	}
	return d, nil
}
