// Package unixtstest provides test utilities for code built on
// unixts: random generators, a fatal-on-error harness and a property
// suite that checks the Timestamp invariants.
package unixtstest

import (
	"math"
	"math/rand"

	"github.com/blockberries/unixts"
)

// NanoRange bounds the seconds produced by Near so that every value
// fits in UnixNano (about 292 years either side of the epoch).
const NanoRange = math.MaxInt64/unixts.NanosPerSecond - 1

// Random returns a timestamp drawn from the whole int64 seconds range,
// with extremes and the epoch boundary over-represented.
func Random(r *rand.Rand) unixts.Timestamp {
	nanos := uint32(r.Int63n(unixts.NanosPerSecond))
	switch r.Intn(8) {
	case 0:
		return unixts.MustNew(math.MaxInt64-r.Int63n(3), nanos)
	case 1:
		return unixts.MustNew(math.MinInt64+r.Int63n(3), nanos)
	case 2:
		return unixts.MustNew(r.Int63n(5)-2, nanos)
	default:
		return unixts.MustNew(int64(r.Uint64()), nanos)
	}
}

// Near returns a timestamp within NanoRange seconds of the epoch.
func Near(r *rand.Rand) unixts.Timestamp {
	return unixts.MustNew(r.Int63n(2*NanoRange)-NanoRange, uint32(r.Int63n(unixts.NanosPerSecond)))
}

// RandomDuration returns a duration whose magnitude is below one
// billion seconds, positive or negative with equal probability.
func RandomDuration(r *rand.Rand) unixts.Duration {
	d := unixts.MustNewDuration(uint64(r.Int63n(1_000_000_000)), uint32(r.Int63n(unixts.NanosPerSecond)))
	if r.Intn(2) == 0 {
		return d.Neg()
	}
	return d
}
