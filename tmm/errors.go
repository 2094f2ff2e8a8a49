// SPDX-License-Identifier: MIT
// Package tmm: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the tmm
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered conditions.

package tmm

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tmm: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrIndexProduct is returned by IndexStep when n1·n2 ≤ 0: the Fresnel
	// coefficients divide by √(n1·n2), which has no real value there.
	ErrIndexProduct = errors.New("tmm: refractive index product must be positive")

	// ErrSingular is returned by ScatteringCoefficients when S[0][0] == 0,
	// i.e. the transfer matrix admits no transmitted solution to normalize
	// against.
	ErrSingular = errors.New("tmm: singular scattering matrix")
)
