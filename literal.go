package unixts

import (
	"math"
	"strconv"
	"strings"
)

// maxFractionDigits is the number of decimal places a nanosecond
// offset can hold.
const maxFractionDigits = 9

// Parse decodes a decimal literal of seconds since the epoch, such as
// "1335020400", "1335020400.25", "-86400" or ".5".
//
// The literal is an optional sign followed by digits with at most one
// decimal point. The fractional digits are a base-10 fraction of a
// second; more than nine of them is rejected rather than truncated.
// Negative values keep the forward nanosecond offset, so "-10000.25"
// is New(-10001, 750_000_000).
//
// Malformed input reports a *SyntaxError; an integer part outside
// int64 reports an *OverflowError.
func Parse(literal string) (Timestamp, error) {
	s := strings.TrimSpace(literal)
	if s == "" {
		return Timestamp{}, syntaxError(literal, "empty literal")
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return Timestamp{}, syntaxError(literal, "missing digits")
	}
	if strings.Contains(frac, ".") {
		return Timestamp{}, syntaxError(literal, "multiple decimal points")
	}
	if c, ok := firstNonDigit(whole + frac); ok {
		return Timestamp{}, syntaxError(literal, "unexpected character "+strconv.QuoteRune(c))
	}
	if len(frac) > maxFractionDigits {
		return Timestamp{}, syntaxError(literal, "more than 9 fractional digits")
	}

	var mag uint64
	if whole != "" {
		var err error
		if mag, err = strconv.ParseUint(whole, 10, 64); err != nil {
			return Timestamp{}, overflow("parse")
		}
	}

	var nanos uint32
	for i := 0; i < maxFractionDigits; i++ {
		nanos *= 10
		if i < len(frac) {
			nanos += uint32(frac[i] - '0')
		}
	}

	switch {
	case !neg:
		if mag > math.MaxInt64 {
			return Timestamp{}, overflow("parse")
		}
		return Timestamp{seconds: int64(mag), nanos: nanos}, nil
	case nanos == 0:
		if mag > 1<<63 {
			return Timestamp{}, overflow("parse")
		}
		return Timestamp{seconds: -int64(mag)}, nil
	default:
		// -(mag + nanos/1e9) floors to -(mag+1), offset 1e9-nanos.
		if mag >= 1<<63 {
			return Timestamp{}, overflow("parse")
		}
		return Timestamp{seconds: -int64(mag) - 1, nanos: NanosPerSecond - nanos}, nil
	}
}

// MustParse is like Parse but panics if the literal cannot be parsed.
// It stands in for a timestamp literal:
//
//	var launch = unixts.MustParse("1335020400.25")
func MustParse(literal string) Timestamp {
	t, err := Parse(literal)
	if err != nil {
		panic(err)
	}
	return t
}

func firstNonDigit(s string) (rune, bool) {
	for _, c := range s {
		if c < '0' || c > '9' {
			return c, true
		}
	}
	return 0, false
}

func syntaxError(literal, reason string) error {
	return &SyntaxError{Literal: literal, Reason: reason}
}
