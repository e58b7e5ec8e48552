package unixtstest

import (
	"testing"
	"time"

	"github.com/blockberries/unixts"
)

// Harness wraps a *testing.T and turns unixts errors into test
// failures, keeping table-driven tests free of error plumbing.
type Harness struct {
	t *testing.T
}

// NewHarness creates a harness reporting to t.
func NewHarness(t *testing.T) *Harness {
	t.Helper()
	return &Harness{t: t}
}

// Parse parses a literal and fails the test on error.
func (h *Harness) Parse(literal string) unixts.Timestamp {
	h.t.Helper()
	ts, err := unixts.Parse(literal)
	if err != nil {
		h.t.Fatalf("Parse(%q) failed: %v", literal, err)
	}
	h.RequireNormalized(ts)
	return ts
}

// Add adds a time.Duration and fails the test on overflow.
func (h *Harness) Add(ts unixts.Timestamp, d time.Duration) unixts.Timestamp {
	h.t.Helper()
	got, err := ts.Add(d)
	if err != nil {
		h.t.Fatalf("%v.Add(%v) failed: %v", ts, d, err)
	}
	h.RequireNormalized(got)
	return got
}

// AddDuration adds a Duration and fails the test on overflow.
func (h *Harness) AddDuration(ts unixts.Timestamp, d unixts.Duration) unixts.Timestamp {
	h.t.Helper()
	got, err := ts.AddDuration(d)
	if err != nil {
		h.t.Fatalf("%v.AddDuration(%v) failed: %v", ts, d, err)
	}
	h.RequireNormalized(got)
	return got
}

// RequireNormalized asserts that the nanosecond field is in [0, 1e9).
func (h *Harness) RequireNormalized(ts unixts.Timestamp) {
	h.t.Helper()
	RequireNormalized(h.t, ts)
}

// RequireOverflow asserts that err is an *unixts.OverflowError.
func (h *Harness) RequireOverflow(err error) {
	h.t.Helper()
	if _, ok := unixts.IsOverflow(err); !ok {
		h.t.Fatalf("expected overflow error, got %v", err)
	}
}

// RequireNormalized asserts that the nanosecond field of ts is in
// [0, 1e9).
func RequireNormalized(t testing.TB, ts unixts.Timestamp) {
	t.Helper()
	if ts.Nanos() >= unixts.NanosPerSecond {
		t.Fatalf("nanos not normalized: %d", ts.Nanos())
	}
}
