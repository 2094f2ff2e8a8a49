// SPDX-License-Identifier: MIT
// Package bragg: the grating descriptor and its spectrum evaluation.

package bragg

import (
	"math"

	"github.com/optikon/spectra/tmm"
)

// maxPeriods bounds the period count to 2^53, the largest range where
// float64 represents every integer exactly; beyond it the float argument
// of New could not name the count it meant.
const maxPeriods = 1 << 53

// Grating is an immutable Bragg grating geometry: period Λ, duty cycle D,
// and period count N. Build it with New; evaluate spectra with the
// methods below. A Grating is safe for concurrent use.
type Grating struct {
	period    float64
	dutyCycle float64
	periods   uint64
}

// New validates the geometry and returns a Grating.
//
// The period count arrives as float64 because sweep axes carry all
// parameters uniformly; it must hold an exact non-negative integer.
//
// Errors:
//   - ErrPeriod — period not a positive finite number.
//   - ErrDutyCycle — duty cycle outside [0, 1] or NaN.
//   - ErrPeriodCount — count negative, fractional, NaN, ±Inf, or > 2^53.
func New(period, dutyCycle, periods float64) (*Grating, error) {
	if math.IsNaN(period) || math.IsInf(period, 0) || period <= 0 {
		return nil, ErrPeriod
	}
	if math.IsNaN(dutyCycle) || dutyCycle < 0 || dutyCycle > 1 {
		return nil, ErrDutyCycle
	}
	if math.IsNaN(periods) || math.IsInf(periods, 0) ||
		periods < 0 || periods != math.Trunc(periods) || periods > maxPeriods {
		return nil, ErrPeriodCount
	}

	return &Grating{
		period:    period,
		dutyCycle: dutyCycle,
		periods:   uint64(periods),
	}, nil
}

// Period returns the grating period Λ in meters.
func (g *Grating) Period() float64 { return g.period }

// DutyCycle returns the high-index fill fraction D.
func (g *Grating) DutyCycle() float64 { return g.dutyCycle }

// Periods returns the period count N.
func (g *Grating) Periods() uint64 { return g.periods }

// BraggWavelength returns the first-order resonance λ_B = Λ·(n1+n2),
// i.e. 2·Λ·n̄ with n̄ the mean index. Reflectance peaks at this
// wavelength for any duty cycle that leaves nonzero contrast coupling.
func (g *Grating) BraggWavelength(n1, n2 float64) float64 {
	return g.period * (n1 + n2)
}

// TransferMatrix returns the transfer matrix of a single period,
//
//	Tp = P(Λ·D, n1) · I(n1→n2) · P(Λ·(1−D), n2) · I(n2→n1)
//
// at the given wavelength and material parameters. The same loss applies
// to both sections.
//
// Errors:
//   - tmm.ErrIndexProduct — n1·n2 ≤ 0.
func (g *Grating) TransferMatrix(wavelength, n1, n2, loss float64) (tmm.Mat2, error) {
	up, err := tmm.IndexStep(n1, n2)
	if err != nil {
		return tmm.Mat2{}, err
	}
	down, err := tmm.IndexStep(n2, n1)
	if err != nil {
		return tmm.Mat2{}, err
	}

	l1 := g.period * g.dutyCycle
	l2 := g.period * (1 - g.dutyCycle)

	return tmm.HomogeneousLayer(wavelength, l1, n1, loss).
		Mul(up).
		Mul(tmm.HomogeneousLayer(wavelength, l2, n2, loss)).
		Mul(down), nil
}

// ScatteringMatrix returns the N-period stack matrix S = Tp^N with
// O(log N) multiplies. For N = 0 it is the identity: an empty grating is
// transparent.
//
// Errors:
//   - tmm.ErrIndexProduct — n1·n2 ≤ 0.
func (g *Grating) ScatteringMatrix(wavelength, n1, n2, loss float64) (tmm.Mat2, error) {
	tp, err := g.TransferMatrix(wavelength, n1, n2, loss)
	if err != nil {
		return tmm.Mat2{}, err
	}

	return tp.Pow(g.periods), nil
}

// ScatteringCoefficients evaluates the grating at one operating point and
// returns the four observables R, T, PhaseR, PhaseT.
//
// Errors:
//   - tmm.ErrIndexProduct — n1·n2 ≤ 0.
//   - tmm.ErrSingular — the stack matrix has S[0][0] == 0.
//
// Complexity: O(log N) matrix multiplies per call, no allocations.
func (g *Grating) ScatteringCoefficients(wavelength, n1, n2, loss float64) (tmm.Coefficients, error) {
	s, err := g.ScatteringMatrix(wavelength, n1, n2, loss)
	if err != nil {
		return tmm.Coefficients{}, err
	}

	return tmm.ScatteringCoefficients(s)
}
