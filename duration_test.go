package unixts_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/unixts"
	unixtstest "github.com/blockberries/unixts/testing"
)

func TestNewDuration(t *testing.T) {
	d, err := unixts.NewDuration(1, 1_500_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), d.Seconds())
	assert.Equal(t, uint32(500_000_000), d.Nanos())
	assert.False(t, d.Negative())
	assert.Equal(t, "2.5s", d.String())

	_, err = unixts.NewDuration(math.MaxUint64, unixts.NanosPerSecond)
	unixtstest.NewHarness(t).RequireOverflow(err)
}

func TestDurationFromStd(t *testing.T) {
	tests := []struct {
		in       time.Duration
		negative bool
		secs     uint64
		nanos    uint32
	}{
		{0, false, 0, 0},
		{1500 * time.Millisecond, false, 1, 500_000_000},
		{-1500 * time.Millisecond, true, 1, 500_000_000},
		{-time.Nanosecond, true, 0, 1},
		{math.MaxInt64, false, 9223372036, 854775807},
		{math.MinInt64, true, 9223372036, 854775808},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			d := unixts.DurationFromStd(tt.in)
			assert.Equal(t, tt.negative, d.Negative())
			assert.Equal(t, tt.secs, d.Seconds())
			assert.Equal(t, tt.nanos, d.Nanos())

			back, err := d.Std()
			require.NoError(t, err)
			assert.Equal(t, tt.in, back)
		})
	}
}

func TestDuration_StdOverflow(t *testing.T) {
	h := unixtstest.NewHarness(t)

	d, err := unixts.NewDuration(9223372037, 0)
	require.NoError(t, err)
	_, err = d.Std()
	h.RequireOverflow(err)
	_, err = d.Neg().Std()
	h.RequireOverflow(err)

	d, err = unixts.NewDuration(math.MaxUint64, 0)
	require.NoError(t, err)
	_, err = d.Std()
	h.RequireOverflow(err)
}

func TestDuration_Compare(t *testing.T) {
	short := unixts.DurationFromStd(time.Second)
	long := unixts.DurationFromStd(2 * time.Second)

	assert.Equal(t, -1, short.Compare(long))
	assert.Equal(t, +1, long.Compare(short))
	assert.Equal(t, 0, short.Compare(short))
	assert.Equal(t, +1, short.Neg().Compare(long.Neg()))
	assert.Equal(t, -1, long.Neg().Compare(short))

	var zero unixts.Duration
	assert.False(t, zero.Neg().Negative())
	assert.Equal(t, 0, zero.Compare(zero.Neg()))
	assert.Equal(t, "0s", zero.String())
}

func TestTimestamp_Duration(t *testing.T) {
	tests := []struct {
		ts       unixts.Timestamp
		negative bool
		secs     uint64
		nanos    uint32
	}{
		{unixts.Timestamp{}, false, 0, 0},
		{unixts.MustNew(1335020400, 250_000_000), false, 1335020400, 250_000_000},
		{unixts.FromMillis(-500), true, 0, 500_000_000},
		{unixts.MustNew(-10001, 750_000_000), true, 10000, 250_000_000},
		{unixts.FromWholeSeconds(math.MinInt64), true, 1 << 63, 0},
		{unixts.MustNew(math.MinInt64, 1), true, 1<<63 - 1, 999_999_999},
		{unixts.MustNew(math.MaxInt64, 999_999_999), false, math.MaxInt64, 999_999_999},
	}
	for _, tt := range tests {
		t.Run(tt.ts.String(), func(t *testing.T) {
			d := tt.ts.Duration()
			assert.Equal(t, tt.negative, d.Negative())
			assert.Equal(t, tt.secs, d.Seconds())
			assert.Equal(t, tt.nanos, d.Nanos())

			back, err := unixts.FromDuration(d)
			require.NoError(t, err)
			assert.Equal(t, tt.ts, back)
		})
	}
}

func TestFromDuration_Overflow(t *testing.T) {
	h := unixtstest.NewHarness(t)

	d, err := unixts.NewDuration(1<<63, 0)
	require.NoError(t, err)
	_, err = unixts.FromDuration(d)
	h.RequireOverflow(err)

	ts, err := unixts.FromDuration(d.Neg())
	require.NoError(t, err)
	assert.Equal(t, unixts.FromWholeSeconds(math.MinInt64), ts)

	d, err = unixts.NewDuration(1<<63, 1)
	require.NoError(t, err)
	_, err = unixts.FromDuration(d.Neg())
	h.RequireOverflow(err)
}

func TestStdDuration(t *testing.T) {
	d, err := unixts.MustNew(1335020400, 5).StdDuration()
	require.NoError(t, err)
	assert.Equal(t, 1335020400*time.Second+5, d)
	assert.Equal(t, unixts.MustNew(1335020400, 5), unixts.FromStdDuration(d))

	d, err = unixts.FromMillis(-1).StdDuration()
	require.NoError(t, err)
	assert.Equal(t, -time.Millisecond, d)

	_, err = unixts.FromWholeSeconds(1 << 40).StdDuration()
	unixtstest.NewHarness(t).RequireOverflow(err)
}
