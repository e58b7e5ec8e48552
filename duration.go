package unixts

import (
	"math"
	"strconv"
	"time"
)

// Duration is a signed span of time with nanosecond precision, stored
// as sign and magnitude.
//
// Unlike time.Duration, which is limited to about 292 years, a
// Duration can hold the difference between any two Timestamps, so
// Timestamp.Duration and FromDuration round-trip without loss.
type Duration struct {
	negative bool
	secs     uint64
	nanos    uint32
}

func durationOf(negative bool, secs uint64, nanos uint32) Duration {
	if secs == 0 && nanos == 0 {
		negative = false
	}
	return Duration{negative: negative, secs: secs, nanos: nanos}
}

// NewDuration creates a non-negative duration. A nanos value of one
// second or more is folded into secs.
func NewDuration(secs uint64, nanos uint32) (Duration, error) {
	if nanos >= NanosPerSecond {
		carry := uint64(nanos / NanosPerSecond)
		if secs > math.MaxUint64-carry {
			return Duration{}, overflow("new duration")
		}
		secs += carry
		nanos %= NanosPerSecond
	}
	return durationOf(false, secs, nanos), nil
}

// MustNewDuration is like NewDuration but panics on overflow.
func MustNewDuration(secs uint64, nanos uint32) Duration {
	d, err := NewDuration(secs, nanos)
	if err != nil {
		panic(err)
	}
	return d
}

// DurationFromStd converts a time.Duration. It never fails.
func DurationFromStd(d time.Duration) Duration {
	if d >= 0 {
		return durationOf(false, uint64(d/time.Second), uint32(d%time.Second))
	}
	m := uint64(-(d + 1)) + 1
	return durationOf(true, m/NanosPerSecond, uint32(m%NanosPerSecond))
}

func secondsDuration(n int64) Duration {
	if n >= 0 {
		return durationOf(false, uint64(n), 0)
	}
	return durationOf(true, uint64(-(n+1))+1, 0)
}

// Seconds returns the whole seconds of the magnitude.
func (d Duration) Seconds() uint64 { return d.secs }

// Nanos returns the sub-second part of the magnitude, in [0, 1e9).
func (d Duration) Nanos() uint32 { return d.nanos }

// Negative reports whether d points backwards in time.
func (d Duration) Negative() bool { return d.negative }

// IsZero reports whether d is the empty span.
func (d Duration) IsZero() bool { return d.secs == 0 && d.nanos == 0 }

// Neg returns -d. The zero duration stays non-negative.
func (d Duration) Neg() Duration {
	return durationOf(!d.negative, d.secs, d.nanos)
}

// Compare returns -1, 0 or +1 depending on whether d is shorter than,
// equal to, or longer than e, taking the sign into account.
func (d Duration) Compare(e Duration) int {
	if d.negative != e.negative {
		if d.negative {
			return -1
		}
		return +1
	}
	c := compareMagnitude(d, e)
	if d.negative {
		return -c
	}
	return c
}

func compareMagnitude(d, e Duration) int {
	switch {
	case d.secs < e.secs:
		return -1
	case d.secs > e.secs:
		return +1
	case d.nanos < e.nanos:
		return -1
	case d.nanos > e.nanos:
		return +1
	}
	return 0
}

// Std converts d to a time.Duration, reporting an *OverflowError when
// it does not fit in int64 nanoseconds.
func (d Duration) Std() (time.Duration, error) {
	if d.secs > math.MaxUint64/NanosPerSecond {
		return 0, overflow("std duration")
	}
	m := d.secs*NanosPerSecond + uint64(d.nanos)
	if m < uint64(d.nanos) {
		return 0, overflow("std duration")
	}
	if d.negative {
		if m > 1<<63 {
			return 0, overflow("std duration")
		}
		return time.Duration(-int64(m)), nil
	}
	if m > math.MaxInt64 {
		return 0, overflow("std duration")
	}
	return time.Duration(m), nil
}

// String formats d as a decimal number of seconds with an "s" suffix,
// for example "-1.5s". No precision is lost.
func (d Duration) String() string {
	b := make([]byte, 0, 32)
	if d.negative {
		b = append(b, '-')
	}
	b = strconv.AppendUint(b, d.secs, 10)
	b = appendFraction(b, d.nanos, -1)
	return string(append(b, 's'))
}

// Duration returns the span from the epoch to t. The conversion is
// exact: FromDuration(t.Duration()) == t for every t.
func (t Timestamp) Duration() Duration {
	switch {
	case t.seconds >= 0:
		return durationOf(false, uint64(t.seconds), t.nanos)
	case t.nanos == 0:
		return durationOf(true, uint64(-(t.seconds+1))+1, 0)
	default:
		return durationOf(true, uint64(-(t.seconds + 1)), NanosPerSecond-t.nanos)
	}
}

// StdDuration returns the span from the epoch to t as a time.Duration.
// Instants more than about 292 years from the epoch do not fit and
// report an *OverflowError.
func (t Timestamp) StdDuration() (time.Duration, error) {
	return t.Duration().Std()
}

// FromDuration returns the instant d after the epoch.
func FromDuration(d Duration) (Timestamp, error) {
	return Timestamp{}.addDuration(d, "from duration")
}

// FromStdDuration returns the instant d after the epoch. It never fails.
func FromStdDuration(d time.Duration) Timestamp {
	return FromNanos(int64(d))
}
