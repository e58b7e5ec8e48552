package unixts

import (
	"fmt"
	"strconv"
)

var _ fmt.Formatter = Timestamp{}

// String returns the exact decimal number of seconds since the epoch
// in its shortest form, for example "1335020400", "1335020400.25" or
// "-0.5". Parse accepts every string String produces.
func (t Timestamp) String() string {
	return string(t.appendDecimal(make([]byte, 0, 32), -1))
}

// Format implements fmt.Formatter.
//
//	%d      whole seconds, the same value as Unix
//	%v %s   exact decimal as returned by String
//	%.Nv    decimal with N fractional digits
//	%f %.Nf decimal with N fractional digits (9 when N is omitted)
//	%q      quoted String
//
// When a precision shorter than nanoseconds is requested the value is
// rounded toward negative infinity, matching the floor semantics of
// Unix and Subsec. Width and the '-' flag pad with spaces.
func (t Timestamp) Format(f fmt.State, verb rune) {
	prec, hasPrec := f.Precision()
	var b []byte
	switch verb {
	case 'd':
		b = strconv.AppendInt(nil, t.seconds, 10)
	case 'f', 'F':
		if !hasPrec {
			prec = 9
		}
		b = t.appendDecimal(nil, prec)
	case 'v', 's':
		if !hasPrec {
			prec = -1
		}
		b = t.appendDecimal(nil, prec)
	case 'q':
		b = strconv.AppendQuote(nil, t.String())
	default:
		fmt.Fprintf(f, "%%!%c(unixts.Timestamp=%s)", verb, t.String())
		return
	}

	if w, ok := f.Width(); ok && len(b) < w {
		pad := make([]byte, w-len(b))
		for i := range pad {
			pad[i] = ' '
		}
		if f.Flag('-') {
			b = append(b, pad...)
		} else {
			b = append(pad, b...)
		}
	}
	f.Write(b)
}

// appendDecimal appends t as a decimal with prec fractional digits,
// or in its shortest exact form when prec is negative.
func (t Timestamp) appendDecimal(b []byte, prec int) []byte {
	frac := t.nanos
	if prec >= 0 && prec < 9 {
		frac -= frac % uint32(pow10[9-prec])
	}

	// Rewrite (seconds, forward offset) as sign and magnitude.
	var mag uint64
	switch {
	case t.seconds >= 0:
		mag = uint64(t.seconds)
	case frac == 0:
		mag = uint64(-(t.seconds+1)) + 1
		b = append(b, '-')
	default:
		mag = uint64(-(t.seconds + 1))
		frac = NanosPerSecond - frac
		b = append(b, '-')
	}

	b = strconv.AppendUint(b, mag, 10)
	return appendFraction(b, frac, prec)
}

// appendFraction appends nanos as ".ddddddddd" with prec digits, or
// trimmed of trailing zeros when prec is negative. Nothing is
// appended for prec 0 or for a zero fraction in shortest form.
func appendFraction(b []byte, nanos uint32, prec int) []byte {
	digits := 9
	switch {
	case prec < 0:
		if nanos == 0 {
			return b
		}
		for nanos%10 == 0 {
			nanos /= 10
			digits--
		}
	case prec < 9:
		nanos /= uint32(pow10[9-prec])
		digits = prec
	}
	if digits == 0 {
		return b
	}

	var buf [9]byte
	for i := digits - 1; i >= 0; i-- {
		buf[i] = byte('0' + nanos%10)
		nanos /= 10
	}
	b = append(b, '.')
	b = append(b, buf[:digits]...)
	for i := 9; i < prec; i++ {
		b = append(b, '0')
	}
	return b
}
