package bigint

// GCD returns the greatest common divisor (GCD) of m and n.
// The GCD is the largest integer that divides both m and n. It is never
// negative; GCD(0, n) is |n| and GCD(0, 0) is 0.
func GCD(m, n Int) Int {
	return makeInt(false, gcdNat(m.abs, n.abs))
}

// ExtGCD returns the GCD of m and n along with the Bézout coefficients.
// That is, it returns a, b, d such that:
//
//	a*m + b*n == d == GCD(m, n)
func ExtGCD(m, n Int) (a, b, d Int) {
	// per Donald Knuth, TAOCP Vol 1 (3e), pp 13-14, Algorithm E, run on the
	// magnitudes; the coefficient signs are fixed up at the end
	one := FromInt64(1)
	a0, a1 := one, Int{}
	b0, b1 := Int{}, one
	c, r := m.Abs(), n.Abs()
	for !r.IsZero() {
		q, rem, _ := c.QuoRem(r)
		c, r = r, rem
		a0, a1 = a1, a0.Sub(q.Mul(a1))
		b0, b1 = b1, b0.Sub(q.Mul(b1))
	}
	if m.neg {
		a0 = a0.Neg()
	}
	if n.neg {
		b0 = b0.Neg()
	}
	return a0, b0, c
}
