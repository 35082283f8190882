package bigint_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/kbolino/ratio/bigint"
)

func BenchmarkGCD(b *testing.B) {
	for _, c := range GCDCases {
		m, n := P(c.M), P(c.N)
		b.Run(fmt.Sprintf("GCD(%s,%s)", c.M, c.N), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				bigint.GCD(m, n)
			}
		})
	}
}

func BenchmarkExtGCD(b *testing.B) {
	for _, c := range GCDCases {
		m, n := P(c.M), P(c.N)
		b.Run(fmt.Sprintf("ExtGCD(%s,%s)", c.M, c.N), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				bigint.ExtGCD(m, n)
			}
		})
	}
}

func BenchmarkBigInt_GCD(b *testing.B) {
	z := new(big.Int)
	for _, c := range GCDCases {
		m, n := P(c.M).Abs().BigInt(), P(c.N).Abs().BigInt()
		b.Run(fmt.Sprintf("GCD(%s,%s)", c.M, c.N), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				z.GCD(nil, nil, m, n)
			}
		})
	}
}
