package unixts

import (
	"encoding"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
)

// Compile-time interface checks.
var (
	_ encoding.TextMarshaler     = Timestamp{}
	_ encoding.TextUnmarshaler   = (*Timestamp)(nil)
	_ encoding.BinaryMarshaler   = Timestamp{}
	_ encoding.BinaryAppender    = Timestamp{}
	_ encoding.BinaryUnmarshaler = (*Timestamp)(nil)
	_ json.Marshaler             = Timestamp{}
	_ json.Unmarshaler           = (*Timestamp)(nil)
)

// description of binary record
const (
	secondsSize = 8
	nanosSize   = 4
	BinarySize  = secondsSize + nanosSize

	signBit = 1 << 63
)

// MarshalText implements encoding.TextMarshaler using String.
func (t Timestamp) MarshalText() ([]byte, error) {
	return t.appendDecimal(make([]byte, 0, 32), -1), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (t *Timestamp) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalJSON encodes t as a JSON number holding the exact decimal.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return t.MarshalText()
}

// UnmarshalJSON accepts a JSON number or a quoted literal. As with
// other JSON decoders null leaves t unchanged. Exponent notation is
// rejected because it cannot be decoded exactly.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("unixts: json string: %w", err)
		}
		s = unquoted
	}
	return t.UnmarshalText([]byte(s))
}

// MarshalBinary encodes t as BinarySize bytes: the seconds in
// big-endian order with the sign bit flipped, then the nanoseconds.
// Flipping the sign bit makes bytes.Compare on two encodings agree
// with Compare on the timestamps, so encodings can serve as sorted
// database keys.
func (t Timestamp) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(make([]byte, 0, BinarySize))
}

// AppendBinary implements encoding.BinaryAppender.
func (t Timestamp) AppendBinary(b []byte) ([]byte, error) {
	b = binary.BigEndian.AppendUint64(b, uint64(t.seconds)^signBit)
	b = binary.BigEndian.AppendUint32(b, t.nanos)
	return b, nil
}

// UnmarshalBinary decodes the MarshalBinary form. It fails with
// ErrInvalidEncoding on a wrong length or un-normalized nanoseconds.
func (t *Timestamp) UnmarshalBinary(data []byte) error {
	if len(data) != BinarySize {
		return fmt.Errorf("%w: length %d, expected %d", ErrInvalidEncoding, len(data), BinarySize)
	}
	nanos := binary.BigEndian.Uint32(data[secondsSize:])
	if nanos >= NanosPerSecond {
		return fmt.Errorf("%w: nanos %d out of range", ErrInvalidEncoding, nanos)
	}
	t.seconds = int64(binary.BigEndian.Uint64(data[:secondsSize]) ^ signBit)
	t.nanos = nanos
	return nil
}
