// Package unixts provides Timestamp, a Unix timestamp with nanosecond
// precision, and conversions to and from integers, durations and
// literal strings.
//
// A Timestamp is a plain value: whole seconds since the Unix epoch
// (negative before 1970) plus a nanosecond offset that is always
// normalized into [0, 1e9). Every construction path normalizes, so
// two Timestamps compare equal with == exactly when they denote the
// same instant, and ordering is lexicographic on (seconds, nanos).
//
// The nanosecond offset is always a forward offset, also for instants
// before the epoch. Half a second before the epoch is therefore
// seconds=-1, nanos=500_000_000:
//
//	t := unixts.FromMillis(-500)
//	t.Seconds() // -1
//	t.Nanos()   // 500000000
//
// Operations that could move the seconds field outside int64 return an
// *OverflowError instead of wrapping around. Everything else
// (normalization, comparison, the lossy Unix conversion) never fails.
//
// Calendar views live in the calendar subpackage and deterministic wire
// forms (cramberry, protobuf, gRPC) in the wire subpackage, so importing
// this package alone pulls in neither.
package unixts
