// SPDX-License-Identifier: MIT
// Package sweep: plan and result types.
// Plan declares the parameter axes and material properties of a sweep;
// Point is one enumerated tuple; Record is one evaluated tuple; Result is
// the ordered table Run produces.

package sweep

import (
	"fmt"

	"github.com/optikon/spectra/cml"
	"github.com/optikon/spectra/tmm"
)

// Plan declares a Bragg grating sweep.
//
// Fields:
//   - Periods, DutyCycles, PeriodCounts — grating geometry axes. Each
//     value combination constructs one grating; invalid values surface as
//     bragg constructor errors during Run, not during Validate.
//   - Widths1, Widths2 — waveguide width axes feeding the width models of
//     n1 and n2. An empty axis collapses to a single zero width and its
//     CSV column is omitted.
//   - Wavelengths — the innermost axis. The position of a tuple along it
//     is the tuple's sample index.
//   - N1, N2, Loss — material properties. N1 and N2 are evaluated at
//     (wavelength, width1/width2, sample); Loss always at width zero.
//   - DeltaLambda — half-width of the group-delay difference stencil.
//     Zero disables the group_delay column entirely.
//   - Workers — parallelism of Run. ≤ 0 means GOMAXPROCS, 1 is serial.
type Plan struct {
	Periods      []float64
	DutyCycles   []float64
	PeriodCounts []float64
	Widths1      []float64
	Widths2      []float64
	Wavelengths  []float64

	N1   *cml.Property
	N2   *cml.Property
	Loss *cml.Property

	DeltaLambda float64
	Workers     int
}

// Validate checks that every mandatory axis has at least one value and
// that all three material properties are configured. Axis values
// themselves are not range-checked here; the bragg constructor rejects
// bad geometry per tuple during Run.
func (p Plan) Validate() error {
	if len(p.Wavelengths) == 0 {
		return ErrNoWavelengths
	}
	if len(p.Periods) == 0 {
		return ErrNoPeriods
	}
	if len(p.DutyCycles) == 0 {
		return ErrNoDutyCycles
	}
	if len(p.PeriodCounts) == 0 {
		return ErrNoPeriodCounts
	}
	if p.N1 == nil {
		return fmt.Errorf("n1: %w", ErrMissingProperty)
	}
	if p.N2 == nil {
		return fmt.Errorf("n2: %w", ErrMissingProperty)
	}
	if p.Loss == nil {
		return fmt.Errorf("loss: %w", ErrMissingProperty)
	}
	return nil
}

// Count reports how many tuples the plan enumerates: the product of all
// axis lengths, with empty width axes counting as one.
func (p Plan) Count() int {
	n := len(p.Periods) * len(p.DutyCycles) * len(p.PeriodCounts) * len(p.Wavelengths)
	if len(p.Widths1) > 0 {
		n *= len(p.Widths1)
	}
	if len(p.Widths2) > 0 {
		n *= len(p.Widths2)
	}
	return n
}

// sweepWidth1 reports whether the width1 axis was set explicitly, which
// also controls the presence of the w1 CSV column.
func (p Plan) sweepWidth1() bool { return len(p.Widths1) > 0 }

// sweepWidth2 is the width2 counterpart of sweepWidth1.
func (p Plan) sweepWidth2() bool { return len(p.Widths2) > 0 }

// sampled reports whether any material property is a per-point sample
// table. Group-delay offsets fall between sweep positions, so sampled
// plans keep the group_delay column at zero.
func (p Plan) sampled() bool {
	return p.N1.Sampled() || p.N2.Sampled() || p.Loss.Sampled()
}

// points materializes the cross product in the canonical order:
// period × duty cycle × period count × width1 × width2 × wavelength.
func (p Plan) points() []Point {
	w1 := p.Widths1
	if len(w1) == 0 {
		w1 = []float64{0}
	}
	w2 := p.Widths2
	if len(w2) == 0 {
		w2 = []float64{0}
	}

	pts := make([]Point, 0, p.Count())
	for _, period := range p.Periods {
		for _, duty := range p.DutyCycles {
			for _, count := range p.PeriodCounts {
				for _, width1 := range w1 {
					for _, width2 := range w2 {
						for i, wavelength := range p.Wavelengths {
							pts = append(pts, Point{
								Period:      period,
								DutyCycle:   duty,
								PeriodCount: count,
								Width1:      width1,
								Width2:      width2,
								Wavelength:  wavelength,
								SampleIndex: i,
							})
						}
					}
				}
			}
		}
	}
	return pts
}

// Point is one enumerated parameter tuple.
type Point struct {
	Period      float64
	DutyCycle   float64
	PeriodCount float64
	Width1      float64
	Width2      float64
	Wavelength  float64

	// SampleIndex is the tuple's position along the wavelength axis; it
	// selects the sample of cml.WithSampled properties.
	SampleIndex int
}

// Record is one evaluated tuple: the input point, the material property
// values it resolved to, the scattering coefficients, and the group delay
// (zero unless Plan.DeltaLambda is set and no property is sampled).
type Record struct {
	Point

	N1   float64
	N2   float64
	Loss float64

	tmm.Coefficients

	// GroupDelay is the transmission group delay in seconds.
	GroupDelay float64
}

// Result is the evaluated sweep table, one Record per tuple in
// enumeration order, together with the plan that produced it.
type Result struct {
	Plan    Plan
	Records []Record
}
