// SPDX-License-Identifier: MIT
// Package sweep_test: full-sweep benchmarks, serial versus pooled.

package sweep_test

import (
	"context"
	"testing"

	"github.com/optikon/spectra/cml"
	"github.com/optikon/spectra/sweep"
	"gonum.org/v1/gonum/floats"
)

var benchResult *sweep.Result

// benchmarkRun sweeps one strong grating over 256 wavelengths around the
// stopband.
func benchmarkRun(b *testing.B, workers int) {
	wavelengths := make([]float64, 256)
	floats.Span(wavelengths, 1.9e-6, 2.3e-6)

	property := func(v float64) *cml.Property {
		p, err := cml.New(cml.WithConstant(v))
		if err != nil {
			b.Fatalf("property failed: %v", err)
		}
		return p
	}
	plan := sweep.Plan{
		Periods:      []float64{0.5e-6},
		DutyCycles:   []float64{0.5},
		PeriodCounts: []float64{100},
		Wavelengths:  wavelengths,
		N1:           property(2.2),
		N2:           property(2.0),
		Loss:         property(0),
		Workers:      workers,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := sweep.Run(context.Background(), plan)
		if err != nil {
			b.Fatalf("Run failed: %v", err)
		}
		benchResult = res
	}
}

// BenchmarkRun_Serial measures the single-goroutine path.
func BenchmarkRun_Serial(b *testing.B) {
	benchmarkRun(b, 1)
}

// BenchmarkRun_Pool measures the default worker pool.
func BenchmarkRun_Pool(b *testing.B) {
	benchmarkRun(b, 0)
}
