package unixts

import (
	"math"
	"time"
)

// Compare returns -1 if t is before u, +1 if t is after u and 0 if
// they are the same instant. Ordering is lexicographic on
// (seconds, nanos), which is valid because both are normalized.
func (t Timestamp) Compare(u Timestamp) int {
	switch {
	case t.seconds < u.seconds:
		return -1
	case t.seconds > u.seconds:
		return +1
	case t.nanos < u.nanos:
		return -1
	case t.nanos > u.nanos:
		return +1
	}
	return 0
}

// Before reports whether t is before u.
func (t Timestamp) Before(u Timestamp) bool {
	return t.seconds < u.seconds || t.seconds == u.seconds && t.nanos < u.nanos
}

// After reports whether t is after u.
func (t Timestamp) After(u Timestamp) bool {
	return t.seconds > u.seconds || t.seconds == u.seconds && t.nanos > u.nanos
}

// Equal reports whether t and u are the same instant. It is the same
// as t == u.
func (t Timestamp) Equal(u Timestamp) bool {
	return t == u
}

// Add returns t+d.
func (t Timestamp) Add(d time.Duration) (Timestamp, error) {
	return t.addDuration(DurationFromStd(d), "add")
}

// Sub returns t-d.
func (t Timestamp) Sub(d time.Duration) (Timestamp, error) {
	return t.addDuration(DurationFromStd(d).Neg(), "sub")
}

// AddDuration returns t+d.
func (t Timestamp) AddDuration(d Duration) (Timestamp, error) {
	return t.addDuration(d, "add")
}

// SubDuration returns t-d.
func (t Timestamp) SubDuration(d Duration) (Timestamp, error) {
	return t.addDuration(d.Neg(), "sub")
}

// AddSeconds returns t moved n whole seconds forward. The nanosecond
// offset is kept.
func (t Timestamp) AddSeconds(n int64) (Timestamp, error) {
	return t.addDuration(secondsDuration(n), "add")
}

// SubSeconds returns t moved n whole seconds backward.
func (t Timestamp) SubSeconds(n int64) (Timestamp, error) {
	return t.addDuration(secondsDuration(n).Neg(), "sub")
}

// Diff returns the exact span t-u. The magnitude of any difference
// between two Timestamps fits in a Duration, so Diff never fails.
func (t Timestamp) Diff(u Timestamp) Duration {
	if t.Before(u) {
		return u.Diff(t).Neg()
	}
	secs := uint64(t.seconds) - uint64(u.seconds)
	n := t.nanos
	if u.nanos > n {
		secs--
		n += NanosPerSecond
	}
	return durationOf(false, secs, n-u.nanos)
}

// Rem returns t with its seconds replaced by seconds % n. The
// nanosecond offset is kept and the sign of the remainder follows the
// % operator. Rem panics if n is zero.
func (t Timestamp) Rem(n int64) Timestamp {
	return Timestamp{seconds: t.seconds % n, nanos: t.nanos}
}

func (t Timestamp) addDuration(d Duration, op string) (Timestamp, error) {
	if d.negative {
		return t.subMagnitude(d.secs, d.nanos, op)
	}
	return t.addMagnitude(d.secs, d.nanos, op)
}

func (t Timestamp) addMagnitude(secs uint64, nanos uint32, op string) (Timestamp, error) {
	// math.MaxInt64 - t.seconds, exact in uint64 arithmetic.
	headroom := uint64(math.MaxInt64) - uint64(t.seconds)
	if secs > headroom {
		return Timestamp{}, overflow(op)
	}
	s := int64(uint64(t.seconds) + secs)
	n := t.nanos + nanos
	if n >= NanosPerSecond {
		if s == math.MaxInt64 {
			return Timestamp{}, overflow(op)
		}
		s++
		n -= NanosPerSecond
	}
	return Timestamp{seconds: s, nanos: n}, nil
}

func (t Timestamp) subMagnitude(secs uint64, nanos uint32, op string) (Timestamp, error) {
	// t.seconds - math.MinInt64, exact in uint64 arithmetic.
	room := uint64(t.seconds) + 1<<63
	if secs > room {
		return Timestamp{}, overflow(op)
	}
	s := int64(uint64(t.seconds) - secs)
	n := t.nanos
	if nanos > n {
		if s == math.MinInt64 {
			return Timestamp{}, overflow(op)
		}
		s--
		n += NanosPerSecond
	}
	return Timestamp{seconds: s, nanos: n - nanos}, nil
}
