package ratio

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/kbolino/ratio/bigint"
	"github.com/vmihailenco/msgpack/v4"
)

// MsgpackExtID is the msgpack extension type under which N is registered.
const MsgpackExtID = 2

func init() {
	msgpack.RegisterExt(MsgpackExtID, (*N)(nil))
}

// MarshalText implements encoding.TextMarshaler using the m/n form.
func (x N) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is parsed with
// ParseRationalString, so it need not be in lowest terms.
func (x *N) UnmarshalText(text []byte) error {
	v, err := ParseRationalString(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON encodes x as a quoted "m/n" string.
func (x N) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

// UnmarshalJSON decodes a quoted "m/n" string. A JSON null leaves x
// unchanged.
func (x *N) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("decoding json %s: %w", b, ErrFmtInvalid)
	}
	return x.UnmarshalText([]byte(unquoted))
}

// MarshalMsgpack encodes x as the payload of a msgpack extension: a sign
// byte, the length of the numerator magnitude as a uvarint, the numerator
// magnitude and then the denominator magnitude, both big-endian.
func (x N) MarshalMsgpack() ([]byte, error) {
	m, n := x.num.Bytes(), x.Den().Bytes()
	buf := make([]byte, 0, 1+binary.MaxVarintLen64+len(m)+len(n))
	sign := byte(0)
	if x.num.Sign() < 0 {
		sign = 1
	}
	buf = append(buf, sign)
	buf = binary.AppendUvarint(buf, uint64(len(m)))
	buf = append(buf, m...)
	return append(buf, n...), nil
}

// UnmarshalMsgpack decodes the payload written by MarshalMsgpack. The decoded
// value is reduced again, and a zero denominator is rejected.
func (x *N) UnmarshalMsgpack(data []byte) error {
	if len(data) == 0 || data[0] > 1 {
		return fmt.Errorf("decoding msgpack %x: %w", data, ErrFmtInvalid)
	}
	size, k := binary.Uvarint(data[1:])
	if k <= 0 || size > uint64(len(data)-1-k) {
		return fmt.Errorf("decoding msgpack %x: bad numerator length: %w", data, ErrFmtInvalid)
	}
	rest := data[1+k:]
	num := bigint.FromBytes(data[0] == 1, rest[:size])
	den := bigint.FromBytes(false, rest[size:])
	v, err := TryBig(num, den)
	if err != nil {
		return err
	}
	*x = v
	return nil
}
