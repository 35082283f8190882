// Package bigint provides arbitrary-precision signed integers with value
// semantics. See the Int type for details.
package bigint

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// Common errors returned by functions in this package.
var (
	ErrDivByZero  = errors.New("division by zero")
	ErrFmtInvalid = errors.New("invalid number format")
)

// Int is a signed integer of unbounded magnitude.
//
// The zero value of Int is 0 and is valid. Zero is never negative.
//
// Int has value semantics: no method modifies its receiver or arguments and
// every result is backed by its own storage, so values can be freely copied
// and shared between goroutines. Int values cannot be compared with ==; use
// Equal or Cmp.
type Int struct {
	neg bool
	abs nat
}

// makeInt builds an Int, fixing the sign of zero.
func makeInt(neg bool, abs nat) Int {
	abs = abs.norm()
	if len(abs) == 0 {
		return Int{}
	}
	return Int{neg, abs}
}

// FromInt64 returns x as an Int.
func FromInt64(x int64) Int {
	u := uint64(x)
	if x < 0 {
		// two's complement negation also covers math.MinInt64
		u = -u
	}
	return makeInt(x < 0, natFromUint64(u))
}

// FromUint64 returns x as an Int.
func FromUint64(x uint64) Int {
	return makeInt(false, natFromUint64(x))
}

// Parse parses a base 10 integer: an optional sign ('+' or '-') followed by
// one or more ASCII digits. Leading zeroes are allowed.
func Parse(s string) (Int, error) {
	digits := s
	neg := false
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	if digits == "" {
		return Int{}, fmt.Errorf("parsing %q: %w", s, ErrFmtInvalid)
	}
	abs, ok := parseDecimal(digits)
	if !ok {
		return Int{}, fmt.Errorf("parsing %q: %w", s, ErrFmtInvalid)
	}
	return makeInt(neg, abs), nil
}

// MustParse is like Parse but panics if s is not a valid integer.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// FromBytes returns the integer whose magnitude is the big-endian buf,
// negated if neg is true.
func FromBytes(neg bool, buf []byte) Int {
	return makeInt(neg, natFromBytes(buf))
}

// FromBigInt converts a big.Int to an Int.
func FromBigInt(b *big.Int) Int {
	return FromBytes(b.Sign() < 0, b.Bytes())
}

// Sign returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x Int) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero returns true if x is equal to 0.
func (x Int) IsZero() bool {
	return len(x.abs) == 0
}

// Neg returns -x.
func (x Int) Neg() Int {
	return makeInt(!x.neg, x.abs.clone())
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return makeInt(false, x.abs.clone())
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
// Signs are compared first, then magnitudes.
func (x Int) Cmp(y Int) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	c := x.abs.cmp(y.abs)
	if x.neg {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y|.
func (x Int) CmpAbs(y Int) int {
	return x.abs.cmp(y.abs)
}

// Equal reports whether x and y are the same integer.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Add returns x+y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return makeInt(x.neg, addNat(x.abs, y.abs))
	}
	// the signs differ; the operand with the larger magnitude wins
	switch x.abs.cmp(y.abs) {
	case 1:
		return makeInt(x.neg, subNat(x.abs, y.abs))
	case -1:
		return makeInt(y.neg, subNat(y.abs, x.abs))
	}
	return Int{}
}

// Sub returns x-y.
func (x Int) Sub(y Int) Int {
	return x.Add(Int{!y.neg, y.abs})
}

// Mul returns x*y.
func (x Int) Mul(y Int) Int {
	return makeInt(x.neg != y.neg, mulNat(x.abs, y.abs))
}

// QuoRem returns the quotient x/y truncated toward zero and the remainder
// r = x - y*q, which has the sign of x and satisfies |r| < |y|.
// QuoRem returns a non-nil error if y is zero.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, fmt.Errorf("dividing %s by 0: %w", x, ErrDivByZero)
	}
	qa, ra := divNat(x.abs, y.abs)
	return makeInt(x.neg != y.neg, qa), makeInt(x.neg, ra), nil
}

// Quo returns x/y truncated toward zero. It panics if y is zero.
func (x Int) Quo(y Int) Int {
	q, _, err := x.QuoRem(y)
	if err != nil {
		panic(err)
	}
	return q
}

// Rem returns the remainder of x/y truncated toward zero. It panics if y is
// zero.
func (x Int) Rem(y Int) Int {
	_, r, err := x.QuoRem(y)
	if err != nil {
		panic(err)
	}
	return r
}

// Lsh returns x*2^n.
func (x Int) Lsh(n uint) Int {
	return makeInt(x.neg, lshNat(x.abs, n))
}

// BitLen returns the length of |x| in bits. The bit length of 0 is 0.
func (x Int) BitLen() int {
	return x.abs.bitLen()
}

// Int64 returns x as an int64. If x does not fit, ok is false.
func (x Int) Int64() (v int64, ok bool) {
	if len(x.abs) > 2 {
		return 0, false
	}
	var u uint64
	for i := len(x.abs) - 1; i >= 0; i-- {
		u = u<<_W | uint64(x.abs[i])
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true // -int64(1<<63) wraps to math.MinInt64
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Bytes returns |x| as big-endian bytes. Bytes of 0 is empty.
func (x Int) Bytes() []byte {
	return bytesNat(x.abs)
}

// BigInt converts x to a new big.Int.
func (x Int) BigInt() *big.Int {
	b := new(big.Int).SetBytes(x.Bytes())
	if x.neg {
		b.Neg(b)
	}
	return b
}

// String returns x in base 10, with a leading '-' if x is negative and no
// leading zeroes.
func (x Int) String() string {
	buf := make([]byte, 0, 1+len(x.abs)*10)
	if x.neg {
		buf = append(buf, '-')
	}
	return string(appendDecimal(buf, x.abs))
}
