package bigint

import "math/bits"

// nat is an unsigned magnitude in base 2^32, least-significant word first.
// A normalized nat has no most-significant zero words; zero is nil.
//
// None of the functions below modify their arguments.
type nat []uint32

const (
	_W = 32
	_B = 1 << _W
	_M = _B - 1
)

// pow10 holds 10^i for i in [0, 9], the decimal chunk sizes that fit a word.
var pow10 = [...]uint32{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
}

const chunkDigits = 9

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return nil
	}
	return z[:i]
}

func (x nat) clone() nat {
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x))
	copy(z, x)
	return z
}

func natFromUint64(x uint64) nat {
	switch {
	case x == 0:
		return nil
	case x>>_W == 0:
		return nat{uint32(x)}
	}
	return nat{uint32(x), uint32(x >> _W)}
}

// cmp compares magnitudes: length first, then words from the top down.
func (x nat) cmp(y nat) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (x nat) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*_W + bits.Len32(x[len(x)-1])
}

func addNat(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(nat, len(x)+1)
	var c uint64 // c is for "carry"
	for i := range x {
		s := uint64(x[i]) + c
		if i < len(y) {
			s += uint64(y[i])
		}
		z[i] = uint32(s)
		c = s >> _W
	}
	z[len(x)] = uint32(c)
	return z.norm()
}

// subNat returns x-y; x must be at least y.
func subNat(x, y nat) nat {
	z := make(nat, len(x))
	var b uint64 // b is for "borrow"
	for i := range x {
		d := uint64(x[i]) - b
		if i < len(y) {
			d -= uint64(y[i])
		}
		z[i] = uint32(d)
		// on underflow the high half of d is all ones
		b = (d >> _W) & 1
	}
	return z.norm()
}

// mulNat is the grade-school algorithm; the result has at most
// len(x)+len(y) words.
func mulNat(x, y nat) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make(nat, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var c uint64
		for j, yj := range y {
			// (2^32-1)^2 + 2*(2^32-1) == 2^64-1, so t cannot overflow
			t := uint64(xi)*uint64(yj) + uint64(z[i+j]) + c
			z[i+j] = uint32(t)
			c = t >> _W
		}
		z[i+len(y)] = uint32(c)
	}
	return z.norm()
}

// mulAddWord returns x*y + c.
func mulAddWord(x nat, y, c uint32) nat {
	z := make(nat, len(x)+1)
	cc := uint64(c)
	for i, w := range x {
		t := uint64(w)*uint64(y) + cc
		z[i] = uint32(t)
		cc = t >> _W
	}
	z[len(x)] = uint32(cc)
	return z.norm()
}

// divWord divides x by a single nonzero word.
func divWord(x nat, y uint32) (q nat, r uint32) {
	q = make(nat, len(x))
	var rem uint64
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem<<_W | uint64(x[i])
		q[i] = uint32(cur / uint64(y))
		rem = cur % uint64(y)
	}
	return q.norm(), uint32(rem)
}

// shlBits returns x<<s in a fresh slice one word longer than x, s < 32.
// The result is not normalized.
func shlBits(x nat, s uint) nat {
	z := make(nat, len(x)+1)
	var c uint32
	for i, w := range x {
		z[i] = w<<s | c
		c = w >> (_W - s) // a shift by 32 yields 0
	}
	z[len(x)] = c
	return z
}

// shrBits returns x>>s, s < 32.
func shrBits(x nat, s uint) nat {
	z := make(nat, len(x))
	for i := range x {
		z[i] = x[i] >> s
		if i+1 < len(x) {
			z[i] |= x[i+1] << (_W - s)
		}
	}
	return z.norm()
}

// lshNat returns x<<n for any n.
func lshNat(x nat, n uint) nat {
	if len(x) == 0 {
		return nil
	}
	words, s := int(n/_W), n%_W
	shifted := shlBits(x, s)
	z := make(nat, words+len(shifted))
	copy(z[words:], shifted)
	return z.norm()
}

// divNat returns the quotient and remainder of u/v; v must be nonzero.
func divNat(u, v nat) (q, r nat) {
	if u.cmp(v) < 0 {
		return nil, u.clone()
	}
	if len(v) == 1 {
		q, rw := divWord(u, v[0])
		return q, natFromUint64(uint64(rw))
	}

	// per Donald Knuth, TAOCP Vol 2 (3e), pp 272-273, Algorithm D, with the
	// multiply-and-subtract step of Hacker's Delight (2e) divmnu

	// D1: normalize so the top word of the divisor has its high bit set
	s := uint(bits.LeadingZeros32(v[len(v)-1]))
	vn := shlBits(v, s)[:len(v)]
	un := shlBits(u, s)

	n, m := len(v), len(u)-len(v)
	q = make(nat, m+1)
	vTop, vNext := uint64(vn[n-1]), uint64(vn[n-2])

	for j := m; j >= 0; j-- {
		// D3: estimate qhat from the top two words of the running remainder
		num := uint64(un[j+n])<<_W | uint64(un[j+n-1])
		qhat, rhat := num/vTop, num%vTop
		for qhat >= _B || qhat*vNext > (rhat<<_W|uint64(un[j+n-2])) {
			qhat--
			rhat += vTop
			if rhat >= _B {
				break
			}
		}

		// D4: multiply and subtract
		var k int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			t := int64(un[i+j]) - k - int64(p&_M)
			un[i+j] = uint32(t)
			k = int64(p>>_W) - (t >> _W)
		}
		t := int64(un[j+n]) - k
		un[j+n] = uint32(t)

		// D5, D6: qhat was one too large at most once in 2^32; add back
		q[j] = uint32(qhat)
		if t < 0 {
			q[j]--
			var c uint64
			for i := 0; i < n; i++ {
				sum := uint64(un[i+j]) + uint64(vn[i]) + c
				un[i+j] = uint32(sum)
				c = sum >> _W
			}
			un[j+n] += uint32(c)
		}
	}

	// D8: unnormalize the remainder
	return q.norm(), shrBits(un[:n], s)
}

// gcdNat is the iterative Euclidean algorithm.
func gcdNat(a, b nat) nat {
	for len(b) != 0 {
		_, r := divNat(a, b)
		a, b = b, r
	}
	return a.clone()
}

// appendDecimal appends the base-10 digits of x to buf.
func appendDecimal(buf []byte, x nat) []byte {
	if len(x) == 0 {
		return append(buf, '0')
	}
	// peel off base-10^9 chunks, least significant first
	var chunks []uint32
	for len(x) != 0 {
		var r uint32
		x, r = divWord(x, pow10[chunkDigits])
		chunks = append(chunks, r)
	}
	var tmp [chunkDigits]byte
	for i := len(chunks) - 1; i >= 0; i-- {
		c := chunks[i]
		k := len(tmp)
		for c != 0 {
			k--
			tmp[k] = byte('0' + c%10)
			c /= 10
		}
		if i != len(chunks)-1 {
			// inner chunks are zero-padded to full width
			for k > 0 {
				k--
				tmp[k] = '0'
			}
		}
		buf = append(buf, tmp[k:]...)
	}
	return buf
}

// parseDecimal converts a non-empty run of ASCII digits. It reports false if
// any byte is not a digit.
func parseDecimal(digits string) (nat, bool) {
	var z nat
	first := len(digits) % chunkDigits
	if first == 0 {
		first = chunkDigits
	}
	for start, end := 0, first; start < len(digits); start, end = end, end+chunkDigits {
		var chunk uint32
		for i := start; i < end; i++ {
			c := digits[i]
			if c < '0' || c > '9' {
				return nil, false
			}
			chunk = chunk*10 + uint32(c-'0')
		}
		z = mulAddWord(z, pow10[end-start], chunk)
	}
	return z, true
}

// bytesNat returns x as big-endian bytes without leading zeros.
func bytesNat(x nat) []byte {
	buf := make([]byte, len(x)*4)
	for i, w := range x {
		k := len(buf) - 4*i
		buf[k-1] = byte(w)
		buf[k-2] = byte(w >> 8)
		buf[k-3] = byte(w >> 16)
		buf[k-4] = byte(w >> 24)
	}
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// natFromBytes interprets buf as a big-endian magnitude.
func natFromBytes(buf []byte) nat {
	z := make(nat, (len(buf)+3)/4)
	for i := range buf {
		b := buf[len(buf)-1-i]
		z[i/4] |= uint32(b) << (8 * (i % 4))
	}
	return z.norm()
}
