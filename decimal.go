package ratio

import (
	"fmt"

	"github.com/kbolino/ratio/bigint"
	"github.com/shopspring/decimal"
)

// MaxDecimalExponent bounds the magnitude of the base 10 exponent accepted by
// FromDecimal and ParseDecimalString. 10^MaxDecimalExponent has 332193 bits.
const MaxDecimalExponent = 100_000

var ten = bigint.FromInt64(10)

// FromDecimal converts a decimal number to N. Every finite decimal is a
// rational number, so the conversion is exact. FromDecimal returns an error
// if the exponent of d is beyond MaxDecimalExponent in either direction.
func FromDecimal(d decimal.Decimal) (N, error) {
	exp := int64(d.Exponent())
	if exp > MaxDecimalExponent || exp < -MaxDecimalExponent {
		return N{}, fmt.Errorf("converting decimal with exponent %d: %w", exp, ErrFmtInvalid)
	}
	num := bigint.FromBigInt(d.Coefficient())
	if exp >= 0 {
		return FromInt(num.Mul(pow10(uint(exp)))), nil
	}
	return reduce(num, pow10(uint(-exp))), nil
}

// pow10 returns 10^n by repeated squaring.
func pow10(n uint) bigint.Int {
	z, b := one, ten
	for n != 0 {
		if n&1 != 0 {
			z = z.Mul(b)
		}
		n >>= 1
		if n != 0 {
			b = b.Mul(b)
		}
	}
	return z
}

// ParseDecimalString parses a string representation of a decimal number as a
// rational number. It accepts the forms "A", "A.B" and ".B", where A may have
// a sign and leading zeroes and B may have trailing zeroes, as well as an
// exponent suffix such as "1.5e-3". The result is exact. A value whose
// exponent is beyond MaxDecimalExponent is rejected with ErrFmtInvalid.
func ParseDecimalString(s string) (N, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return N{}, fmt.Errorf("parsing %q: %v: %w", s, err, ErrFmtInvalid)
	}
	n, err := FromDecimal(d)
	if err != nil {
		return N{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return n, nil
}

// Decimal returns x rounded to prec digits after the decimal point. The last
// digit is rounded to nearest, with ties rounded away from zero. A negative
// prec is treated as zero.
func (x N) Decimal(prec int) decimal.Decimal {
	if prec < 0 {
		prec = 0
	}
	m := decimal.NewFromBigInt(x.num.BigInt(), 0)
	n := decimal.NewFromBigInt(x.Den().BigInt(), 0)
	return m.DivRound(n, int32(prec))
}

// DecimalString returns a string representation of x, as a decimal number
// to the given number of digits after the decimal point, rounded as by
// Decimal. If prec <= 0, the decimal point is omitted from the string.
//
// Unlike big.Rat.FloatString, a result that rounds to zero is printed without
// a sign.
func (x N) DecimalString(prec int) string {
	if prec < 0 {
		prec = 0
	}
	return x.Decimal(prec).StringFixed(int32(prec))
}
