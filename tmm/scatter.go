// SPDX-License-Identifier: MIT
// Package tmm: scattering-coefficient extraction and group delay.

package tmm

import (
	"math"
	"math/cmplx"
)

// Coefficients bundles the four observable scattering quantities of a
// structure: reflectance and transmittance (power ratios) and their
// phases (radians in (−π, π]).
type Coefficients struct {
	// R is the power reflection coefficient |S10/S00|².
	R float64

	// T is the power transmission coefficient |1/S00|².
	T float64

	// PhaseR is the reflection phase arg(S10/S00).
	PhaseR float64

	// PhaseT is the transmission phase arg(1/S00).
	PhaseT float64
}

// ScatteringCoefficients reduces a total transfer matrix S to its four
// scattering observables:
//
//	r = S[1][0] / S[0][0]   R = |r|²   PhaseR = arg(r)
//	t =       1 / S[0][0]   T = |t|²   PhaseT = arg(t)
//
// For a lossless structure R + T = 1 within rounding; with loss, R + T < 1.
//
// Errors:
//   - ErrSingular — S[0][0] == 0; the matrix has no transmitted solution
//     to normalize against.
func ScatteringCoefficients(s Mat2) (Coefficients, error) {
	s00 := s[0][0]
	if s00 == 0 {
		return Coefficients{}, ErrSingular
	}

	r := s[1][0] / s00
	t := 1 / s00

	ar := cmplx.Abs(r)
	at := cmplx.Abs(t)

	return Coefficients{
		R:      ar * ar,
		T:      at * at,
		PhaseR: cmplx.Phase(r),
		PhaseT: cmplx.Phase(t),
	}, nil
}

// GroupDelay derives the group delay τ_g = −dφ/dω from two phases sampled
// at nearby wavelengths, using the centered difference
//
//	τ_g = −(φ_f − φ_b) / (ω_f − ω_b), ω = 2πc/λ.
//
// The phase difference is wrapped into (−π, π] before dividing: phases come
// from arg(·) and jump by 2π across branch cuts, which would otherwise
// corrupt the slope. The wavelength interval must therefore be small enough
// that the true phase change between the two samples stays below π.
func GroupDelay(phaseBack, phaseFwd, lambdaBack, lambdaFwd float64) float64 {
	omegaBack := 2 * math.Pi * C / lambdaBack
	omegaFwd := 2 * math.Pi * C / lambdaFwd

	return -wrapPhase(phaseFwd-phaseBack) / (omegaFwd - omegaBack)
}

// wrapPhase maps p into (−π, π] by shifting whole turns.
func wrapPhase(p float64) float64 {
	for p > math.Pi {
		p -= 2 * math.Pi
	}
	for p <= -math.Pi {
		p += 2 * math.Pi
	}

	return p
}
