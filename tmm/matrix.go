// SPDX-License-Identifier: MIT
// Package tmm: fixed-size complex 2×2 matrix algebra.
// Mat2 is a value type: operands are copied in and results copied out, so
// no operation can alias its inputs. All methods are allocation-free.

package tmm

// Mat2 is a 2×2 complex matrix stored row-major. The zero value is the
// zero matrix, not the identity; use Identity() for the multiplicative
// neutral element.
type Mat2 [2][2]complex128

// Identity returns the 2×2 identity matrix.
func Identity() Mat2 {
	return Mat2{
		{1, 0},
		{0, 1},
	}
}

// Mul returns the matrix product m·n.
//
// The kernel is fully unrolled (8 multiplies, 4 adds); because Mat2 is a
// value type, m.Mul(m) is safe and never observes partial writes.
//
// Complexity: O(1), zero allocations.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		{
			m[0][0]*n[0][0] + m[0][1]*n[1][0],
			m[0][0]*n[0][1] + m[0][1]*n[1][1],
		},
		{
			m[1][0]*n[0][0] + m[1][1]*n[1][0],
			m[1][0]*n[0][1] + m[1][1]*n[1][1],
		},
	}
}

// Pow returns m^n by binary exponentiation.
//
// Algorithm outline:
//  1. result ← I, base ← m.
//  2. While n > 0: if the low bit of n is set, result ← result·base;
//     halve n; square base unless n reached zero.
//
// Pow(0) is Identity() for every m, including the zero matrix, mirroring
// the convention that an empty product is the neutral element.
//
// Complexity: O(log n) matrix multiplies, zero allocations.
func (m Mat2) Pow(n uint64) Mat2 {
	result := Identity()
	base := m
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		// Skip the final squaring once the exponent is exhausted.
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return result
}

// Det returns the determinant m[0][0]·m[1][1] − m[0][1]·m[1][0].
//
// Every layer matrix produced by this package has det = 1, so determinants
// of composed transfer matrices stay at 1 up to rounding; tests use this
// as a cheap correctness probe.
func (m Mat2) Det() complex128 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}
