// Package wire provides deterministic wire forms for unixts values:
// cramberry-tagged structs, protobuf well-known types and a gRPC
// service that speaks cramberry.
//
// No protobuf code generation is required. The structs below are
// serialized directly via cramberry struct tags.
package wire

import (
	"errors"
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"

	"github.com/blockberries/unixts"
)

// ErrInvalidNanos is returned when a decoded value carries a
// nanosecond field of one second or more.
var ErrInvalidNanos = errors.New("wire: nanos out of range")

// Timestamp is the wire-safe representation of a unixts.Timestamp.
type Timestamp struct {
	Seconds int64  `cramberry:"1"`
	Nanos   uint32 `cramberry:"2"`
}

// FromTimestamp converts a unixts.Timestamp to its wire form.
func FromTimestamp(ts unixts.Timestamp) Timestamp {
	return Timestamp{Seconds: ts.Seconds(), Nanos: ts.Nanos()}
}

// Validate reports whether w holds a normalized nanosecond field.
func (w Timestamp) Validate() error {
	if w.Nanos >= unixts.NanosPerSecond {
		return fmt.Errorf("%w: timestamp nanos %d", ErrInvalidNanos, w.Nanos)
	}
	return nil
}

// Timestamp converts w back to a unixts.Timestamp.
func (w Timestamp) Timestamp() (unixts.Timestamp, error) {
	if err := w.Validate(); err != nil {
		return unixts.Timestamp{}, err
	}
	return unixts.MustNew(w.Seconds, w.Nanos), nil
}

// Duration is the wire-safe representation of a unixts.Duration.
// Sign and magnitude are kept apart so every span between two
// timestamps survives the trip.
type Duration struct {
	Negative bool   `cramberry:"1"`
	Seconds  uint64 `cramberry:"2"`
	Nanos    uint32 `cramberry:"3"`
}

// FromDuration converts a unixts.Duration to its wire form.
func FromDuration(d unixts.Duration) Duration {
	return Duration{Negative: d.Negative(), Seconds: d.Seconds(), Nanos: d.Nanos()}
}

// Validate reports whether w holds a normalized nanosecond field.
func (w Duration) Validate() error {
	if w.Nanos >= unixts.NanosPerSecond {
		return fmt.Errorf("%w: duration nanos %d", ErrInvalidNanos, w.Nanos)
	}
	return nil
}

// Duration converts w back to a unixts.Duration. A negative zero
// decodes as zero.
func (w Duration) Duration() (unixts.Duration, error) {
	if err := w.Validate(); err != nil {
		return unixts.Duration{}, err
	}
	d, err := unixts.NewDuration(w.Seconds, w.Nanos)
	if err != nil {
		return unixts.Duration{}, err
	}
	if w.Negative {
		d = d.Neg()
	}
	return d, nil
}

// Marshal encodes ts with cramberry.
func Marshal(ts unixts.Timestamp) ([]byte, error) {
	data, err := cramberry.Marshal(FromTimestamp(ts))
	if err != nil {
		return nil, fmt.Errorf("wire: marshal timestamp: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a cramberry-encoded timestamp.
func Unmarshal(data []byte) (unixts.Timestamp, error) {
	var w Timestamp
	if err := cramberry.Unmarshal(data, &w); err != nil {
		return unixts.Timestamp{}, fmt.Errorf("wire: unmarshal timestamp: %w", err)
	}
	return w.Timestamp()
}

// MarshalDuration encodes d with cramberry.
func MarshalDuration(d unixts.Duration) ([]byte, error) {
	data, err := cramberry.Marshal(FromDuration(d))
	if err != nil {
		return nil, fmt.Errorf("wire: marshal duration: %w", err)
	}
	return data, nil
}

// UnmarshalDuration decodes a cramberry-encoded duration.
func UnmarshalDuration(data []byte) (unixts.Duration, error) {
	var w Duration
	if err := cramberry.Unmarshal(data, &w); err != nil {
		return unixts.Duration{}, fmt.Errorf("wire: unmarshal duration: %w", err)
	}
	return w.Duration()
}
