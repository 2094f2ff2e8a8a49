// SPDX-License-Identifier: MIT
// Package cml: Taylor expansion record.

package cml

// Expansion is a Taylor-style polynomial about a reference point X0 with
// variadic coefficients. The sign convention of the i ≥ 1 terms (additive
// for width models, subtractive for wavelength dispersion) belongs to the
// Property fold, not to the record itself; Coeffs are stored as given.
type Expansion struct {
	// X0 is the expansion point the argument is measured against.
	X0 float64

	// Coeffs holds the polynomial coefficients; Coeffs[0] is the value at
	// X0 and Coeffs[i] scales (x−X0)^i.
	Coeffs []float64
}

// tail returns the i ≥ 1 part of the expansion, Σ Coeffs[i]·(x−X0)^i,
// accumulating powers iteratively. Coeffs[0] is intentionally excluded:
// the Property fold decides whether it contributes as a base.
func (e Expansion) tail(x float64) float64 {
	dx := x - e.X0

	var sum float64
	pow := 1.0
	for i := 1; i < len(e.Coeffs); i++ {
		pow *= dx
		sum += e.Coeffs[i] * pow
	}

	return sum
}

// clone returns a deep copy so that a Property never aliases caller-owned
// coefficient slices.
func (e Expansion) clone() Expansion {
	coeffs := make([]float64, len(e.Coeffs))
	copy(coeffs, e.Coeffs)

	return Expansion{X0: e.X0, Coeffs: coeffs}
}
