package bigint

import (
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v4"
)

// MsgpackExtID is the msgpack extension type under which Int is registered.
const MsgpackExtID = 1

func init() {
	msgpack.RegisterExt(MsgpackExtID, (*Int)(nil))
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON encodes x as a quoted decimal string so that no precision is
// lost in JSON number handling.
func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

// UnmarshalJSON accepts a quoted decimal string or a bare JSON integer. A
// JSON null leaves x unchanged.
func (x *Int) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("decoding json %s: %w", s, ErrFmtInvalid)
		}
		s = unquoted
	}
	return x.UnmarshalText([]byte(s))
}

// MarshalMsgpack encodes x as the payload of a msgpack extension: a sign byte
// (0 or 1) followed by the big-endian magnitude.
func (x Int) MarshalMsgpack() ([]byte, error) {
	return x.appendBinary(nil), nil
}

// UnmarshalMsgpack decodes the payload written by MarshalMsgpack.
func (x *Int) UnmarshalMsgpack(data []byte) error {
	v, err := decodeBinary(data)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int) appendBinary(buf []byte) []byte {
	sign := byte(0)
	if x.neg {
		sign = 1
	}
	return append(append(buf, sign), x.Bytes()...)
}

func decodeBinary(data []byte) (Int, error) {
	if len(data) == 0 || data[0] > 1 {
		return Int{}, fmt.Errorf("decoding msgpack %x: %w", data, ErrFmtInvalid)
	}
	return FromBytes(data[0] == 1, data[1:]), nil
}
