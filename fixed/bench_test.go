// Package fixed_test provides benchmarks for scalar arithmetic and the
// size estimator.
package fixed_test

import (
	"testing"

	"github.com/katalvlaran/blockfp/fixed"
)

// sinks to defeat dead-code elimination
var (
	sinkS fixed.Scalar
	sinkI int
)

func BenchmarkFindSize(b *testing.B) {
	b.Run("exact-guess", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkI = fixed.FindSize(1<<40, 41)
		}
	})
	b.Run("cold-guess", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkI = fixed.FindSize(1<<40, 0)
		}
	})
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	x := fixed.NewScalar(12345, -3)
	y := fixed.NewScalar(-678, 2)
	var out fixed.Scalar
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := fixed.Add(&x, &y, &out); err != nil {
			b.Fatal(err)
		}
	}
	sinkS = out
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	x := fixed.NewScalar(1<<40+12345, -40)
	y := fixed.NewScalar(-(1<<35 + 7), -35)
	var out fixed.Scalar
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := fixed.Mul(&x, &y, &out); err != nil {
			b.Fatal(err)
		}
	}
	sinkS = out
}

func BenchmarkInvert(b *testing.B) {
	b.ReportAllocs()
	x := fixed.NewScalar(12345, -7)
	var out fixed.Scalar
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := fixed.Invert(&x, &out); err != nil {
			b.Fatal(err)
		}
	}
	sinkS = out
}
