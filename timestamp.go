package unixts

import (
	"math"
	"math/big"
)

const (
	// NanosPerSecond is the exclusive upper bound of the nanosecond field.
	NanosPerSecond = 1_000_000_000

	// MaxSubsecPrecision is the largest exponent accepted by Subsec.
	MaxSubsecPrecision = 19
)

// pow10[i] = 10^i for every i whose power fits in a uint64.
var pow10 = [MaxSubsecPrecision + 1]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// Timestamp is an instant expressed as whole seconds since the Unix
// epoch plus a nanosecond offset in [0, 1e9).
//
// The zero value is the epoch itself.
type Timestamp struct {
	seconds int64
	nanos   uint32
}

// New creates a timestamp from seconds and a nanosecond offset.
//
// A nanos value of one second or more is folded into seconds. For
// instants before the epoch nanos is still a forward offset, so
// -0.25 seconds is New(-1, 750_000_000). New fails with an
// *OverflowError only if the carry pushes seconds past math.MaxInt64.
func New(seconds int64, nanos uint32) (Timestamp, error) {
	if nanos >= NanosPerSecond {
		carry := int64(nanos / NanosPerSecond)
		if seconds > math.MaxInt64-carry {
			return Timestamp{}, overflow("new")
		}
		seconds += carry
		nanos %= NanosPerSecond
	}
	return Timestamp{seconds: seconds, nanos: nanos}, nil
}

// MustNew is like New but panics on overflow. It simplifies
// initialization of package-level variables and test tables.
func MustNew(seconds int64, nanos uint32) Timestamp {
	t, err := New(seconds, nanos)
	if err != nil {
		panic(err)
	}
	return t
}

// FromWholeSeconds creates a timestamp with no sub-second component.
func FromWholeSeconds(seconds int64) Timestamp {
	return Timestamp{seconds: seconds}
}

// FromMillis creates a timestamp from milliseconds since the epoch.
// Negative inputs are floor-divided: FromMillis(-500) is
// New(-1, 500_000_000).
func FromMillis(ms int64) Timestamp {
	return fromUnits(ms, 1_000, 1_000_000)
}

// FromMicros creates a timestamp from microseconds since the epoch,
// with the same floor semantics as FromMillis.
func FromMicros(us int64) Timestamp {
	return fromUnits(us, 1_000_000, 1_000)
}

// FromNanos creates a timestamp from nanoseconds since the epoch,
// with the same floor semantics as FromMillis.
func FromNanos(ns int64) Timestamp {
	return fromUnits(ns, NanosPerSecond, 1)
}

func fromUnits(v, perSecond int64, nanosPerUnit uint32) Timestamp {
	s, r := v/perSecond, v%perSecond
	if r < 0 {
		s--
		r += perSecond
	}
	return Timestamp{seconds: s, nanos: uint32(r) * nanosPerUnit}
}

// FromPrecision is the inverse of AtPrecision: it interprets v as a
// count of 10^-e second ticks since the epoch. The split into seconds
// uses floor division. Digits finer than a nanosecond (e > 9) are
// floored away.
func FromPrecision(v *big.Int, e uint) (Timestamp, error) {
	q, m := new(big.Int).DivMod(v, bigPow10(e), new(big.Int))
	if !q.IsInt64() {
		return Timestamp{}, overflow("from precision")
	}

	var nanos uint64
	if e <= 9 {
		nanos = m.Uint64() * pow10[9-e]
	} else {
		nanos = m.Quo(m, bigPow10(e-9)).Uint64()
	}
	return Timestamp{seconds: q.Int64(), nanos: uint32(nanos)}, nil
}

// Seconds returns the whole seconds since the epoch.
// Sub-second values are discarded.
func (t Timestamp) Seconds() int64 {
	return t.seconds
}

// Nanos returns the nanosecond offset within the second, in [0, 1e9).
func (t Timestamp) Nanos() uint32 {
	return t.nanos
}

// Unix returns the timestamp as a plain integer of seconds.
//
// The conversion is lossy: the sub-second component is dropped (the
// result is the floor of the instant). Use AtPrecision, UnixNano or
// Duration for exact forms.
func (t Timestamp) Unix() int64 {
	return t.seconds
}

// IsZero reports whether t is the Unix epoch.
func (t Timestamp) IsZero() bool {
	return t.seconds == 0 && t.nanos == 0
}

// AtPrecision returns the time since the epoch as an integer count of
// 10^-e second ticks (3 for milliseconds, 6 for microseconds, ...).
//
// For e <= 9 finer digits are floored away. For e > 9 the nanosecond
// offset is zero-padded, so the result is exact at any precision.
func (t Timestamp) AtPrecision(e uint) *big.Int {
	v := new(big.Int).Mul(big.NewInt(t.seconds), bigPow10(e))
	var sub big.Int
	if e <= 9 {
		sub.SetUint64(uint64(t.nanos) / pow10[9-e])
	} else {
		sub.Mul(new(big.Int).SetUint64(uint64(t.nanos)), bigPow10(e-9))
	}
	return v.Add(v, &sub)
}

// UnixMilli returns AtPrecision(3) as an int64.
func (t Timestamp) UnixMilli() (int64, error) {
	return t.scaled(3, "unix milli")
}

// UnixMicro returns AtPrecision(6) as an int64.
func (t Timestamp) UnixMicro() (int64, error) {
	return t.scaled(6, "unix micro")
}

// UnixNano returns AtPrecision(9) as an int64. Timestamps outside the
// years 1678 to 2262 do not fit and report an *OverflowError.
func (t Timestamp) UnixNano() (int64, error) {
	return t.scaled(9, "unix nano")
}

func (t Timestamp) scaled(e uint, op string) (int64, error) {
	p := int64(pow10[e])
	s, sub := t.seconds, int64(uint64(t.nanos)/pow10[9-e])
	if s < 0 && sub > 0 {
		// Borrow so the product stays in range for results near math.MinInt64.
		s++
		sub -= p
	}
	v := s * p
	if s != 0 && v/p != s {
		return 0, overflow(op)
	}
	if sub >= 0 && v > math.MaxInt64-sub || sub < 0 && v < math.MinInt64-sub {
		return 0, overflow(op)
	}
	return v + sub, nil
}

// Subsec returns the sub-second component at 10^-e resolution, for
// example Subsec(3) is the millisecond part.
//
// For e <= 9 finer digits are floored away; for 9 < e <= 19 the value
// is zero-padded. Larger exponents cannot be represented and panic
// with a *PrecisionError.
func (t Timestamp) Subsec(e uint) uint64 {
	switch {
	case e <= 9:
		return uint64(t.nanos) / pow10[9-e]
	case e <= MaxSubsecPrecision:
		return uint64(t.nanos) * pow10[e-9]
	default:
		panic(&PrecisionError{E: e, Max: MaxSubsecPrecision})
	}
}

func bigPow10(e uint) *big.Int {
	if e < uint(len(pow10)) {
		return new(big.Int).SetUint64(pow10[e])
	}
	return new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(uint64(e)), nil)
}
