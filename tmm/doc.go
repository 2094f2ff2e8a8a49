// Package tmm implements the Transfer Matrix Method primitives for
// one-dimensional layered optical media: a fixed-size complex 2×2 matrix
// type with O(log N) exponentiation, the two elementary layer matrices
// (homogeneous propagation and Fresnel index step), extraction of power
// and phase scattering coefficients, decibel conversions, and the
// free-space physical constants.
//
// The key building blocks are:
//
//   - Mat2
//
//   - A [2][2]complex128 value type; copies are cheap and no aliasing
//     is possible between operands and results.
//
//   - Identity, Mul, Pow (binary exponentiation), Det.
//
//   - Layer factories
//
//   - Beta computes the complex propagation constant
//     β = k₀·neff − i·loss/2 with k₀ = 2π/λ.
//
//   - HomogeneousLayer builds diag(e^{iβL}, e^{−iβL}) for propagation
//     through a uniform section of length L.
//
//   - IndexStep builds [[a, b], [b, a]] with
//     a = (n1+n2)/(2√(n1·n2)) and b = (n1−n2)/(2√(n1·n2)),
//     the normal-incidence Fresnel coefficients of an abrupt index
//     contrast.
//
//   - Coefficients
//
//   - ScatteringCoefficients reduces a total transfer matrix S to
//     R = |S10/S00|², T = |1/S00|², and the corresponding phases
//     arg(S10/S00) and arg(1/S00).
//
//   - GroupDelay converts two transmission phases sampled at nearby
//     wavelengths into τ_g = −Δφ/Δω, the standard group-delay
//     definition, with ω = 2πc/λ.
//
// # Conventions
//
// Wavelengths and lengths are in meters, loss in 1/m, angular frequency
// in rad/s. Every matrix built by this package has unit determinant, so
// products and powers of layer matrices keep det(S) = 1 exactly up to
// rounding; tests rely on this as a composition invariant.
//
// # Errors
//
//	ErrIndexProduct - IndexStep with n1·n2 ≤ 0 (√ of a non-positive product).
//	ErrSingular     - ScatteringCoefficients on a matrix with S[0][0] == 0.
//
// All other operations are total: Pow(0) is the identity for every matrix,
// including the zero matrix.
//
// # Complexity
//
// Mul is O(1) with a fixed 8-multiply kernel; Pow is O(log N) multiplies;
// everything else is constant time and allocation-free.
//
// See the bragg package for the grating engine composed from these
// primitives, and the sweep package for spectrum generation.
package tmm
