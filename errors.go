package unixts

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is returned when a binary encoding has the wrong
// length or carries an un-normalized nanosecond field.
var ErrInvalidEncoding = errors.New("unixts: invalid encoding")

// OverflowError signals that an operation would move the seconds field
// (or a derived integer) outside the signed 64-bit range. Results are
// never wrapped around; the operation reports this error instead.
type OverflowError struct {
	Op string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("unixts: %s overflows int64", e.Op)
}

// IsOverflow checks whether an error is an OverflowError and returns it.
func IsOverflow(err error) (*OverflowError, bool) {
	var o *OverflowError
	if errors.As(err, &o) {
		return o, true
	}
	return nil, false
}

// SyntaxError reports a malformed timestamp literal.
type SyntaxError struct {
	Literal string
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("unixts: invalid literal %q: %s", e.Literal, e.Reason)
}

// IsSyntax checks whether an error is a SyntaxError and returns it.
func IsSyntax(err error) (*SyntaxError, bool) {
	var s *SyntaxError
	if errors.As(err, &s) {
		return s, true
	}
	return nil, false
}

// PrecisionError is the panic value of Subsec when asked for a
// resolution whose values cannot be held in a uint64.
type PrecisionError struct {
	E   uint
	Max uint
}

func (e *PrecisionError) Error() string {
	return fmt.Sprintf("unixts: precision 10^-%d exceeds maximum 10^-%d", e.E, e.Max)
}

func overflow(op string) error {
	return &OverflowError{Op: op}
}
