package unixtstest

import (
	"bytes"
	"encoding/json"
	"math/big"
	"math/rand"
	"testing"

	"github.com/blockberries/unixts"
)

// Iterations is the number of generated values per property.
const Iterations = 500

// RunPropertySuite checks the Timestamp invariants against values from
// gen. The generator is seeded deterministically so failures
// reproduce.
func RunPropertySuite(t *testing.T, gen func(*rand.Rand) unixts.Timestamp) {
	t.Helper()

	each := func(t *testing.T, fn func(t *testing.T, r *rand.Rand)) {
		r := rand.New(rand.NewSource(1335020400))
		for i := 0; i < Iterations; i++ {
			fn(t, r)
		}
	}

	t.Run("normalized", func(t *testing.T) {
		each(t, func(t *testing.T, r *rand.Rand) {
			RequireNormalized(t, gen(r))
		})
	})

	t.Run("total_order", func(t *testing.T) {
		each(t, func(t *testing.T, r *rand.Rand) {
			a, b, c := gen(r), gen(r), gen(r)

			if a.Compare(b) != -b.Compare(a) {
				t.Fatalf("Compare not antisymmetric for %v, %v", a, b)
			}
			if (a.Compare(b) == 0) != (a == b) {
				t.Fatalf("Compare(%v, %v) = %d disagrees with ==", a, b, a.Compare(b))
			}
			if a.Before(b) != (a.Compare(b) < 0) || a.After(b) != (a.Compare(b) > 0) {
				t.Fatalf("Before/After disagree with Compare for %v, %v", a, b)
			}
			if a.Before(b) && b.Before(c) && !a.Before(c) {
				t.Fatalf("%v < %v < %v but not %v < %v", a, b, c, a, c)
			}
		})
	})

	t.Run("duration_round_trip", func(t *testing.T) {
		each(t, func(t *testing.T, r *rand.Rand) {
			ts := gen(r)
			got, err := unixts.FromDuration(ts.Duration())
			if err != nil {
				t.Fatalf("FromDuration(%v.Duration()) failed: %v", ts, err)
			}
			if got != ts {
				t.Fatalf("duration round-trip: got %v, want %v", got, ts)
			}
		})
	})

	t.Run("diff_add_inverse", func(t *testing.T) {
		each(t, func(t *testing.T, r *rand.Rand) {
			a, b := gen(r), gen(r)
			got, err := a.AddDuration(b.Diff(a))
			if err != nil {
				t.Fatalf("%v.AddDuration(%v) failed: %v", a, b.Diff(a), err)
			}
			if got != b {
				t.Fatalf("a + (b-a): got %v, want %v", got, b)
			}

			back, err := b.SubDuration(b.Diff(a))
			if err != nil {
				t.Fatalf("%v.SubDuration(%v) failed: %v", b, b.Diff(a), err)
			}
			if back != a {
				t.Fatalf("b - (b-a): got %v, want %v", back, a)
			}
		})
	})

	t.Run("precision_round_trip", func(t *testing.T) {
		each(t, func(t *testing.T, r *rand.Rand) {
			ts := gen(r)
			for _, e := range []uint{9, 12} {
				got, err := unixts.FromPrecision(ts.AtPrecision(e), e)
				if err != nil {
					t.Fatalf("FromPrecision(e=%d) failed: %v", e, err)
				}
				if got != ts {
					t.Fatalf("precision %d round-trip: got %v, want %v", e, got, ts)
				}
			}

			// Coarser precisions floor the nanoseconds.
			got, err := unixts.FromPrecision(ts.AtPrecision(3), 3)
			if err != nil {
				t.Fatalf("FromPrecision(e=3) failed: %v", err)
			}
			if got.Seconds() != ts.Seconds() || got.Nanos() != ts.Nanos()-ts.Nanos()%1_000_000 {
				t.Fatalf("precision 3 of %v: got %v", ts, got)
			}
			if ts.Subsec(3) != uint64(got.Nanos()/1_000_000) {
				t.Fatalf("Subsec(3) of %v = %d, want %d", ts, ts.Subsec(3), got.Nanos()/1_000_000)
			}
		})
	})

	t.Run("unix_nano_round_trip", func(t *testing.T) {
		each(t, func(t *testing.T, r *rand.Rand) {
			ts := gen(r)
			ns, err := ts.UnixNano()
			if err != nil {
				if _, ok := unixts.IsOverflow(err); !ok {
					t.Fatalf("unexpected error: %v", err)
				}
				if ts.AtPrecision(9).IsInt64() {
					t.Fatalf("UnixNano of %v overflowed but the value fits", ts)
				}
				return
			}
			if ts.AtPrecision(9).Cmp(big.NewInt(ns)) != 0 {
				t.Fatalf("UnixNano of %v = %d disagrees with AtPrecision(9)", ts, ns)
			}
			if got := unixts.FromNanos(ns); got != ts {
				t.Fatalf("FromNanos(%d) = %v, want %v", ns, got, ts)
			}
		})
	})

	t.Run("text_round_trip", func(t *testing.T) {
		each(t, func(t *testing.T, r *rand.Rand) {
			ts := gen(r)
			got, err := unixts.Parse(ts.String())
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", ts.String(), err)
			}
			if got != ts {
				t.Fatalf("text round-trip: got %v, want %v", got, ts)
			}
		})
	})

	t.Run("json_round_trip", func(t *testing.T) {
		each(t, func(t *testing.T, r *rand.Rand) {
			ts := gen(r)
			data, err := json.Marshal(ts)
			if err != nil {
				t.Fatalf("json.Marshal(%v) failed: %v", ts, err)
			}
			var got unixts.Timestamp
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("json.Unmarshal(%s) failed: %v", data, err)
			}
			if got != ts {
				t.Fatalf("json round-trip: got %v, want %v", got, ts)
			}
		})
	})

	t.Run("binary_order", func(t *testing.T) {
		each(t, func(t *testing.T, r *rand.Rand) {
			a, b := gen(r), gen(r)
			ea, err := a.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary(%v) failed: %v", a, err)
			}
			eb, err := b.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary(%v) failed: %v", b, err)
			}
			if got, want := bytes.Compare(ea, eb), a.Compare(b); got != want {
				t.Fatalf("bytes.Compare = %d, Compare(%v, %v) = %d", got, a, b, want)
			}

			var got unixts.Timestamp
			if err := got.UnmarshalBinary(ea); err != nil {
				t.Fatalf("UnmarshalBinary failed: %v", err)
			}
			if got != a {
				t.Fatalf("binary round-trip: got %v, want %v", got, a)
			}
		})
	})
}
