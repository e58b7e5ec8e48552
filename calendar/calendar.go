// Package calendar converts unixts timestamps to and from calendar
// date-times. The calendar itself is Go's time package: zone rules and
// date decomposition come from time.Time and *time.Location.
package calendar

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/blockberries/unixts"
)

// unixToInternal is the number of seconds between year 1 and 1970,
// the offset time.Time adds to every Unix second.
const unixToInternal = (1969*365 + 1969/4 - 1969/100 + 1969/400) * 86400

// MaxSeconds is the largest Unix second a time.Time can hold.
const MaxSeconds = math.MaxInt64 - unixToInternal

var (
	// ErrOutOfRange is wrapped by every conversion that leaves the
	// range shared by unixts.Timestamp and time.Time.
	ErrOutOfRange = errors.New("calendar: timestamp outside time.Time range")

	// ErrNilLocation is returned by ToTime when no location is given.
	ErrNilLocation = errors.New("calendar: nil location")
)

// RangeError reports a timestamp whose seconds exceed MaxSeconds.
type RangeError struct {
	Seconds int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("calendar: unix second %d exceeds maximum %d", e.Seconds, int64(MaxSeconds))
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// ToTime returns ts as a time.Time in loc.
func ToTime(ts unixts.Timestamp, loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, ErrNilLocation
	}
	if ts.Seconds() > MaxSeconds {
		return time.Time{}, &RangeError{Seconds: ts.Seconds()}
	}
	return time.Unix(ts.Seconds(), int64(ts.Nanos())).In(loc), nil
}

// ToUTC returns ts as a time.Time in UTC.
func ToUTC(ts unixts.Timestamp) (time.Time, error) {
	return ToTime(ts, time.UTC)
}

// ToZone returns ts in the IANA zone called name, for example
// "America/New_York". An empty name or "UTC" is UTC and "Local" is the
// system zone, as with time.LoadLocation.
func ToZone(ts unixts.Timestamp, name string) (time.Time, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, fmt.Errorf("calendar: load zone %q: %w", name, err)
	}
	return ToTime(ts, loc)
}

// earliest is the first instant whose Unix second fits in an int64.
var earliest = time.Unix(math.MinInt64, 0)

// FromTime returns the instant of t. The location and monotonic clock
// reading of t are ignored.
func FromTime(t time.Time) (unixts.Timestamp, error) {
	if t.Before(earliest) {
		return unixts.Timestamp{}, fmt.Errorf("%w: %s precedes unix second %d", ErrOutOfRange, t, int64(math.MinInt64))
	}
	return unixts.MustNew(t.Unix(), uint32(t.Nanosecond())), nil
}
