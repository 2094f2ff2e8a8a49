// Package sweep drives batch spectrum evaluations over a Bragg grating
// parameter space: the cross product of period, duty-cycle, period-count,
// width and wavelength axes is enumerated in a fixed order, every tuple is
// evaluated independently, and the resulting table can be emitted as CSV
// or rendered as a reflection/transmission plot.
//
// A sweep is described declaratively by a Plan:
//
//	plan := sweep.Plan{
//	    Periods:      []float64{0.5e-6},
//	    DutyCycles:   []float64{0.5},
//	    PeriodCounts: []float64{100},
//	    Wavelengths:  wavelengths,
//	    N1:           n1,
//	    N2:           n2,
//	    Loss:         loss,
//	}
//	res, err := sweep.Run(ctx, plan)
//	...
//	err = res.WriteCSV(os.Stdout, false)
//
// # Enumeration order
//
// Tuples are generated period-major, wavelength-minor:
//
//	period × duty cycle × period count × width1 × width2 × wavelength
//
// The wavelength axis is always innermost, and the sample index of each
// tuple is its position along that axis. Sampled material properties
// (cml.WithSampled) are therefore looked up per wavelength, exactly one
// sample per sweep position. When a width axis is empty it collapses to a
// single zero and its column is omitted from the CSV output.
//
// # Group delay
//
// A non-zero DeltaLambda adds a group_delay column: each tuple is
// re-evaluated at wavelength ∓ DeltaLambda and the transmission phases are
// differenced into τ_g = −Δφ/Δω. Loss is held at its centre value during
// the offset evaluations. Sampled properties have no value between sweep
// positions, so when any property is sampled the column is still present
// but stays zero.
//
// # Concurrency
//
// Every tuple is an independent unit of work. Workers > 1 dispatches
// tuples to a fixed pool of goroutines; results land in their enumeration
// slot, so the output order is identical to a serial run. Workers ≤ 0
// defaults to GOMAXPROCS, Workers == 1 forces the serial path. The first
// evaluation error cancels the remaining work and is returned.
package sweep
