// Package ratio provides exact rational numbers of unbounded precision.
// See the N type and New function for details.
package ratio

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strings"

	"github.com/kbolino/ratio/bigint"
)

// Common errors returned by functions in this package.
//
// ErrDivByZero and ErrFmtInvalid are the same values as in package bigint, so
// errors.Is matches either regardless of which layer reported them.
var (
	ErrDivByZero  = bigint.ErrDivByZero
	ErrFmtInvalid = bigint.ErrFmtInvalid
	ErrNotFinite  = errors.New("value is not finite")
)

var one = bigint.FromInt64(1)

// N is a rational number whose numerator and denominator are arbitrary
// precision integers.
//
// Valid values are always in lowest terms with a positive denominator, and a
// zero numerator always has denominator 1. No arithmetic on N can overflow.
// The zero value of N is equal to 0/1 and thus valid.
//
// Valid values are obtained in the following ways:
//   - the zero value of the type N
//   - returned by the New, Try and Parse* functions
//   - returned by arithmetic on any valid values
//   - copied from a valid value
//
// N has proper value semantics and its values can be freely copied. Since
// the representation is canonical, two values are equal exactly when their
// numerators and denominators are; use Equal, not ==, to compare them.
type N struct {
	num bigint.Int
	den bigint.Int // stored as 0 when num is 0; Den reads it as 1
}

// Try creates a new rational number with the given numerator and denominator.
// Try returns an error if the denominator is zero. A negative denominator is
// allowed; the sign moves to the numerator.
func Try(num, den int64) (N, error) {
	return TryBig(bigint.FromInt64(num), bigint.FromInt64(den))
}

// New is like Try but panics if the denominator is zero.
func New(num, den int64) N {
	n, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return n
}

// TryBig is like Try but takes arbitrary precision integers.
func TryBig(num, den bigint.Int) (N, error) {
	if den.IsZero() {
		return N{}, fmt.Errorf("denominator of %s/0: %w", num, ErrDivByZero)
	}
	return reduce(num, den), nil
}

// NewBig is like TryBig but panics if the denominator is zero.
func NewBig(num, den bigint.Int) N {
	n, err := TryBig(num, den)
	if err != nil {
		panic(err)
	}
	return n
}

// FromInt returns the integer x as a rational number x/1.
func FromInt(x bigint.Int) N {
	return reduce(x, one)
}

// ParseRationalString parses a string representation of a rational number.
// The string must be in the form "m/n", where m and n are integers in base 10
// with an optional sign, and n is not zero.
// It is not necessary for m/n to be in lowest terms, but the result will be.
func ParseRationalString(s string) (N, error) {
	m, n, ok := strings.Cut(s, "/")
	if !ok {
		return N{}, fmt.Errorf("parsing %q: missing '/': %w", s, ErrFmtInvalid)
	}
	num, err := bigint.Parse(m)
	if err != nil {
		return N{}, fmt.Errorf("parsing numerator: %w", err)
	}
	den, err := bigint.Parse(n)
	if err != nil {
		return N{}, fmt.Errorf("parsing denominator: %w", err)
	}
	return TryBig(num, den)
}

// FromFloat64 extracts a rational number from a float64. The result is
// exactly equal to v. FromFloat64 returns an error if v is NaN or infinite.
func FromFloat64(v float64) (N, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return N{}, fmt.Errorf("converting %g: %w", v, ErrNotFinite)
	}
	if v == 0 {
		return N{}, nil
	}

	// decompose v such that v = f*2^e with abs(f) in [0.5, 1)
	f, e := math.Frexp(v)

	// convert f to an integer in [2^52, 2^53); m is this integer
	neg := f < 0
	if neg {
		f = -f
	}
	m := uint64(f * 0x1p53)
	e -= 53

	// remove trailing zeros from m; the denominator is then a power of two
	// only if e is still negative
	tz := bits.TrailingZeros64(m)
	m >>= tz
	e += tz

	num := bigint.FromUint64(m)
	if neg {
		num = num.Neg()
	}
	if e >= 0 {
		return N{num.Lsh(uint(e)), one}, nil
	}
	return N{num, one.Lsh(uint(-e))}, nil
}

// FromBigRat converts a big.Rat to N.
func FromBigRat(r *big.Rat) N {
	return reduce(bigint.FromBigInt(r.Num()), bigint.FromBigInt(r.Denom()))
}

// Num returns the numerator of x.
func (x N) Num() bigint.Int {
	return x.num
}

// Den returns the denominator of x.
func (x N) Den() bigint.Int {
	if x.den.IsZero() {
		return one
	}
	return x.den
}

// IsValid returns true if x is a valid rational number.
// Invalid numbers do not arise under normal circumstances, but may occur if
// a value is constructed or manipulated using unsafe operations.
func (x N) IsValid() bool {
	if x.num.IsZero() || x.den.IsZero() {
		return x.num.IsZero() && x.den.IsZero()
	}
	if x.den.Sign() < 0 {
		return false
	}
	return bigint.GCD(x.num, x.den).Equal(one)
}

// IsZero returns true if x is equal to 0.
func (x N) IsZero() bool {
	return x.num.IsZero()
}

// IsInt returns true if the denominator of x is 1.
func (x N) IsInt() bool {
	return x.Den().Equal(one)
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x N) Sign() int {
	return x.num.Sign()
}

// Neg returns the negation of x, -x.
func (x N) Neg() N {
	return N{x.num.Neg(), x.den}
}

// Pos returns x itself, +x.
func (x N) Pos() N {
	return N{x.num, x.den}
}

// TryInv returns the inverse of x, 1/x.
// TryInv returns 0 and a non-nil error if x is zero.
func (x N) TryInv() (N, error) {
	if x.num.IsZero() {
		return N{}, fmt.Errorf("inverting 0: %w", ErrDivByZero)
	}
	return reduce(x.Den(), x.num), nil
}

// Inv is like TryInv but panics if x is zero.
func (x N) Inv() N {
	z, err := x.TryInv()
	if err != nil {
		panic(err)
	}
	return z
}

// Abs returns the absolute value of x, |x|.
func (x N) Abs() N {
	return N{x.num.Abs(), x.den}
}

// Equal reports whether x and y are the same number. Both sides are in
// lowest terms, so comparing the parts is enough.
func (x N) Equal(y N) bool {
	return x.num.Equal(y.num) && x.Den().Equal(y.Den())
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
func (x N) Cmp(y N) int {
	if x.Equal(y) {
		return 0
	}
	// denominators are positive, so cross-multiplying keeps the order
	return x.num.Mul(y.Den()).Cmp(y.num.Mul(x.Den()))
}

// Add adds x and y and returns the result.
func (x N) Add(y N) N {
	mx, nx := x.num, x.Den()
	my, ny := y.num, y.Den()
	if mx.IsZero() {
		return y.Pos()
	} else if my.IsZero() {
		return x.Pos()
	}
	return reduce(mx.Mul(ny).Add(my.Mul(nx)), nx.Mul(ny))
}

// Sub subtracts y from x and returns the result.
// The following are equivalent in outcome and behavior:
//
//	x.Sub(y).Equal(x.Add(y.Neg()))
func (x N) Sub(y N) N {
	return x.Add(y.Neg())
}

// Mul multiplies x and y and returns the result.
func (x N) Mul(y N) N {
	mx, nx := x.num, x.Den()
	my, ny := y.num, y.Den()
	if mx.IsZero() || my.IsZero() {
		return N{}
	}

	// Even though x and y are already reduced, their product may introduce
	// factors from each that aren't present in the other.
	// Since the result is going to be (mx*my)/(nx*ny), we can divide out
	// GCD(mx, ny) and GCD(my, nx) first to keep the products small.
	if d := bigint.GCD(mx, ny); !d.Equal(one) {
		mx, ny = mx.Quo(d), ny.Quo(d)
	}
	if d := bigint.GCD(my, nx); !d.Equal(one) {
		my, nx = my.Quo(d), nx.Quo(d)
	}
	return reduce(mx.Mul(my), nx.Mul(ny))
}

// TryDiv divides x by y and returns the result.
// TryDiv returns 0 and a non-nil error if y is zero.
func (x N) TryDiv(y N) (N, error) {
	if y.num.IsZero() {
		return N{}, fmt.Errorf("dividing %s by 0/1: %w", x, ErrDivByZero)
	}
	return x.Mul(y.Inv()), nil
}

// Div divides x by y and returns the result.
// The following are equivalent in outcome and behavior:
//
//	x.Div(y).Equal(x.Mul(y.Inv()))
func (x N) Div(y N) N {
	return x.Mul(y.Inv())
}

// String returns a string representation of x, as m/n.
func (x N) String() string {
	return x.num.String() + "/" + x.Den().String()
}

// BigRat converts x to a new big.Rat.
func (x N) BigRat() *big.Rat {
	return new(big.Rat).SetFrac(x.num.BigInt(), x.Den().BigInt())
}

// reduce returns num/den in lowest terms with a positive denominator.
// den must not be zero.
func reduce(num, den bigint.Int) N {
	if num.IsZero() {
		return N{}
	}
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	d := bigint.GCD(num, den)
	if d.Equal(one) {
		return N{num, den}
	}
	return N{num.Quo(d), den.Quo(d)}
}
