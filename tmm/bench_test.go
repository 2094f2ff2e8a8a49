// SPDX-License-Identifier: MIT
// Package tmm_test: benchmarks for the matrix power hot path.

package tmm_test

import (
	"testing"

	"github.com/optikon/spectra/tmm"
)

// benchSink keeps the compiler from eliding the benchmarked computation.
var benchSink tmm.Mat2

// benchmarkPow raises a representative single-period transfer matrix to
// the given power. It resets the timer after building the operand.
func benchmarkPow(b *testing.B, n uint64) {
	up, err := tmm.IndexStep(2.2, 2.0)
	if err != nil {
		b.Fatalf("IndexStep failed: %v", err)
	}
	down, err := tmm.IndexStep(2.0, 2.2)
	if err != nil {
		b.Fatalf("IndexStep failed: %v", err)
	}
	period := tmm.HomogeneousLayer(1.55e-6, 0.18e-6, 2.2, 0).
		Mul(up).
		Mul(tmm.HomogeneousLayer(1.55e-6, 0.20e-6, 2.0, 0)).
		Mul(down)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = period.Pow(n)
	}
}

// BenchmarkMat2_Pow100 exercises a short grating (100 periods, 7 squarings).
func BenchmarkMat2_Pow100(b *testing.B) {
	benchmarkPow(b, 100)
}

// BenchmarkMat2_Pow10000 exercises a long grating (10000 periods, 14 squarings).
func BenchmarkMat2_Pow10000(b *testing.B) {
	benchmarkPow(b, 10000)
}

// BenchmarkMat2_Pow1e6 exercises an extreme period count; the cost grows
// only logarithmically.
func BenchmarkMat2_Pow1e6(b *testing.B) {
	benchmarkPow(b, 1_000_000)
}
