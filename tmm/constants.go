// SPDX-License-Identifier: MIT
// Package tmm: free-space physical constants and decibel conversions.

package tmm

import "math"

// Free-space constants in SI units. Eps0 and Mu0 are exact compile-time
// constants; C and Eta0 are derived through math.Sqrt and therefore vars.
const (
	// Eps0 is the vacuum permittivity, in F/m.
	Eps0 = 8.854188e-12

	// Mu0 is the vacuum permeability, in H/m.
	Mu0 = 4 * math.Pi * 1e-7
)

var (
	// C is the speed of light in vacuum, 1/√(ε₀μ₀), in m/s.
	C = 1 / math.Sqrt(Eps0*Mu0)

	// Eta0 is the impedance of free space, √(μ₀/ε₀), in Ω.
	Eta0 = math.Sqrt(Mu0 / Eps0)
)

// minLinear floors ToDB inputs so that exact zeros map to -150 dB instead
// of -Inf, which would poison CSV consumers.
const minLinear = 1e-15

// ToDB converts a linear power quantity to decibels, flooring the input
// at 1e-15 (-150 dB) to keep the result finite.
func ToDB(linear float64) float64 {
	return 10 * math.Log10(math.Max(linear, minLinear))
}

// FromDB converts a decibel-per-length loss figure to the natural
// attenuation coefficient used by Beta: α = ln(10)·dB/10.
func FromDB(db float64) float64 {
	return math.Ln10 * db / 10
}
