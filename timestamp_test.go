package unixts_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/unixts"
	unixtstest "github.com/blockberries/unixts/testing"
)

func TestTimestamp_Properties(t *testing.T) {
	t.Run("full_range", func(t *testing.T) {
		unixtstest.RunPropertySuite(t, unixtstest.Random)
	})
	t.Run("near_epoch", func(t *testing.T) {
		unixtstest.RunPropertySuite(t, unixtstest.Near)
	})
}

func TestNew_Normalizes(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		nanos   uint32
		want    [2]int64
	}{
		{"in_range", 1335020400, 500_000_000, [2]int64{1335020400, 500_000_000}},
		{"one_carry", 1335020400, 1_500_000_000, [2]int64{1335020401, 500_000_000}},
		{"exact_second", 7, 1_000_000_000, [2]int64{8, 0}},
		{"max_nanos", 0, math.MaxUint32, [2]int64{4, 294_967_295}},
		{"negative_seconds", -1, 1_250_000_000, [2]int64{0, 250_000_000}},
		{"max_seconds_no_carry", math.MaxInt64, 999_999_999, [2]int64{math.MaxInt64, 999_999_999}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unixts.New(tt.seconds, tt.nanos)
			require.NoError(t, err)
			assert.Equal(t, tt.want[0], got.Seconds())
			assert.Equal(t, uint32(tt.want[1]), got.Nanos())
		})
	}
}

func TestNew_Overflow(t *testing.T) {
	_, err := unixts.New(math.MaxInt64, 1_000_000_000)
	o, ok := unixts.IsOverflow(err)
	require.True(t, ok, "expected overflow, got %v", err)
	assert.Equal(t, "new", o.Op)

	_, err = unixts.New(math.MaxInt64-3, math.MaxUint32)
	_, ok = unixts.IsOverflow(err)
	assert.True(t, ok)

	ts, err := unixts.New(math.MaxInt64-4, math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), ts.Seconds())

	assert.Panics(t, func() { unixts.MustNew(math.MaxInt64, 1_000_000_000) })
}

func TestFromWholeSeconds(t *testing.T) {
	ts := unixts.FromWholeSeconds(1335020400)
	assert.Equal(t, int64(1335020400), ts.Seconds())
	assert.Equal(t, uint32(0), ts.Nanos())
	assert.Equal(t, unixts.MustNew(1335020400, 0), ts)
	assert.True(t, unixts.FromWholeSeconds(0).IsZero())
	assert.True(t, unixts.Timestamp{}.IsZero())
}

func TestFromSubsecondUnits(t *testing.T) {
	tests := []struct {
		name  string
		got   unixts.Timestamp
		secs  int64
		nanos uint32
	}{
		{"millis", unixts.FromMillis(1335020400_250), 1335020400, 250_000_000},
		{"millis_negative_half", unixts.FromMillis(-500), -1, 500_000_000},
		{"millis_negative_whole", unixts.FromMillis(-2000), -2, 0},
		{"millis_negative_mixed", unixts.FromMillis(-1001), -2, 999_000_000},
		{"micros", unixts.FromMicros(1_500_001), 1, 500_001_000},
		{"micros_negative", unixts.FromMicros(-1), -1, 999_999_000},
		{"nanos", unixts.FromNanos(1335020400_123456789), 1335020400, 123_456_789},
		{"nanos_negative", unixts.FromNanos(-1), -1, 999_999_999},
		{"nanos_min", unixts.FromNanos(math.MinInt64), -9223372037, 145_224_192},
		{"nanos_max", unixts.FromNanos(math.MaxInt64), 9223372036, 854_775_807},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unixtstest.RequireNormalized(t, tt.got)
			assert.Equal(t, tt.secs, tt.got.Seconds())
			assert.Equal(t, tt.nanos, tt.got.Nanos())
		})
	}
}

func TestSeconds_IsLossy(t *testing.T) {
	ts := unixts.MustNew(1335020400, 999_999_999)
	assert.Equal(t, int64(1335020400), ts.Seconds())
	assert.Equal(t, int64(1335020400), ts.Unix())

	// The floor, not truncation toward zero.
	assert.Equal(t, int64(-1), unixts.FromMillis(-500).Unix())
}

func TestAtPrecision(t *testing.T) {
	ts := unixts.MustNew(1335020400, 123456789)
	tests := []struct {
		e    uint
		want string
	}{
		{0, "1335020400"},
		{1, "13350204001"},
		{3, "1335020400123"},
		{6, "1335020400123456"},
		{9, "1335020400123456789"},
		{12, "1335020400123456789000"},
		{30, "1335020400123456789000000000000000000000"},
	}
	for _, tt := range tests {
		got := ts.AtPrecision(tt.e)
		assert.Equal(t, tt.want, got.String(), "AtPrecision(%d)", tt.e)
	}

	assert.Equal(t, "100250", unixts.MustNew(100, 250_000_000).AtPrecision(3).String())
	assert.Equal(t, "-500", unixts.FromMillis(-500).AtPrecision(3).String())
	assert.Equal(t, "-1", unixts.FromMillis(-500).AtPrecision(0).String())

	// Wider than int64.
	maxNano := unixts.MustNew(math.MaxInt64, 999_999_999).AtPrecision(9)
	want, ok := new(big.Int).SetString("9223372036854775807999999999", 10)
	require.True(t, ok)
	assert.Equal(t, 0, want.Cmp(maxNano))
}

func TestFromPrecision(t *testing.T) {
	ts, err := unixts.FromPrecision(big.NewInt(-500), 3)
	require.NoError(t, err)
	assert.Equal(t, unixts.FromMillis(-500), ts)

	ts, err = unixts.FromPrecision(big.NewInt(1335020400123456789), 9)
	require.NoError(t, err)
	assert.Equal(t, unixts.MustNew(1335020400, 123456789), ts)

	// Sub-nanosecond digits are floored.
	ts, err = unixts.FromPrecision(big.NewInt(-1), 12)
	require.NoError(t, err)
	assert.Equal(t, unixts.MustNew(-1, 999_999_999), ts)

	tooBig := new(big.Int).Lsh(big.NewInt(1), 63)
	_, err = unixts.FromPrecision(tooBig, 0)
	_, ok := unixts.IsOverflow(err)
	assert.True(t, ok)
}

func TestUnixMilliMicroNano(t *testing.T) {
	ts := unixts.MustNew(100, 250_000_000)

	ms, err := ts.UnixMilli()
	require.NoError(t, err)
	assert.Equal(t, int64(100_250), ms)

	us, err := ts.UnixMicro()
	require.NoError(t, err)
	assert.Equal(t, int64(100_250_000), us)

	ns, err := ts.UnixNano()
	require.NoError(t, err)
	assert.Equal(t, int64(100_250_000_000), ns)

	ns, err = unixts.FromNanos(math.MinInt64).UnixNano()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), ns)

	ns, err = unixts.FromNanos(math.MaxInt64).UnixNano()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), ns)

	h := unixtstest.NewHarness(t)
	_, err = unixts.MustNew(9223372036, 854_775_808).UnixNano()
	h.RequireOverflow(err)
	_, err = unixts.FromWholeSeconds(-9223372037).UnixNano()
	h.RequireOverflow(err)
	_, err = unixts.FromWholeSeconds(math.MaxInt64).UnixMilli()
	h.RequireOverflow(err)
}

func TestSubsec(t *testing.T) {
	ts := unixts.MustNew(1335020400, 123456789)
	assert.Equal(t, uint64(0), ts.Subsec(0))
	assert.Equal(t, uint64(1), ts.Subsec(1))
	assert.Equal(t, uint64(123), ts.Subsec(3))
	assert.Equal(t, uint64(123456), ts.Subsec(6))
	assert.Equal(t, uint64(123456789), ts.Subsec(9))
	assert.Equal(t, uint64(123456789000), ts.Subsec(12))
	assert.Equal(t, uint64(1234567890000000000), ts.Subsec(19))

	assert.Equal(t, uint64(250), unixts.MustNew(100, 250_000_000).Subsec(3))
	assert.Equal(t, uint64(9999999990000000000), unixts.MustNew(0, 999_999_999).Subsec(19))

	assert.PanicsWithError(t, "unixts: precision 10^-20 exceeds maximum 10^-19", func() {
		ts.Subsec(20)
	})
}
