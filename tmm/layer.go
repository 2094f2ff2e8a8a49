// SPDX-License-Identifier: MIT
// Package tmm: elementary layer matrices.
// Two factories cover one-dimensional layered media at normal incidence:
// HomogeneousLayer for propagation through a uniform section and IndexStep
// for the Fresnel scattering at an abrupt index contrast.

package tmm

import (
	"math"
	"math/cmplx"
)

// Beta returns the complex propagation constant of a mode with effective
// index neff at the given wavelength:
//
//	β = k₀·neff − i·loss/2, with k₀ = 2π/wavelength.
//
// Wavelength is in meters, loss in 1/m. The half factor converts the power
// attenuation coefficient to field attenuation.
func Beta(wavelength, neff, loss float64) complex128 {
	k0 := 2 * math.Pi / wavelength
	return complex(k0*neff, -loss/2)
}

// HomogeneousLayer returns the propagation matrix of a uniform layer of
// the given length and effective index:
//
//	P = diag(e^{iβL}, e^{−iβL})
//
// The diagonal entries advance the forward and backward traveling field
// by the accumulated phase βL; the off-diagonal entries are zero because
// a homogeneous layer couples nothing. For loss = 0 both entries have
// unit modulus and det(P) = 1 exactly; with loss ≠ 0 the determinant is
// still 1 because the entries are reciprocal.
//
// Complexity: O(1), one complex exponential pair.
func HomogeneousLayer(wavelength, length, neff, loss float64) Mat2 {
	phase := Beta(wavelength, neff, loss) * complex(length, 0)

	return Mat2{
		{cmplx.Exp(1i * phase), 0},
		{0, cmplx.Exp(-1i * phase)},
	}
}

// IndexStep returns the transfer matrix of an abrupt step between
// refractive indices n1 and n2:
//
//	T = [[a, b], [b, a]]
//	a = (n1+n2)/(2√(n1·n2)), b = (n1−n2)/(2√(n1·n2))
//
// a and b are the normal-incidence Fresnel coefficients; a² − b² = 1, so
// det(T) = 1 for every valid pair. IndexStep(n, n) is the identity, and
// swapping the arguments negates b (the reverse interface).
//
// Errors:
//   - ErrIndexProduct — n1·n2 ≤ 0; the normalization √(n1·n2) would not
//     be a positive real number.
func IndexStep(n1, n2 float64) (Mat2, error) {
	product := n1 * n2
	if product <= 0 {
		return Mat2{}, ErrIndexProduct
	}

	norm := 2 * math.Sqrt(product)
	a := complex((n1+n2)/norm, 0)
	b := complex((n1-n2)/norm, 0)

	return Mat2{
		{a, b},
		{b, a},
	}, nil
}
