// SPDX-License-Identifier: MIT
// Package sweep: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// sweep package. Plan.Validate MUST return these sentinels and tests MUST
// check them via errors.Is. Evaluation errors are not listed here; they
// come from the bragg, cml and tmm packages and pass through Run intact.

package sweep

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sweep: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNoWavelengths is returned by Validate when the wavelength axis is
	// empty. Every tuple needs a wavelength; there is no default.
	ErrNoWavelengths = errors.New("sweep: at least one wavelength required")

	// ErrNoPeriods is returned by Validate when the period axis is empty.
	ErrNoPeriods = errors.New("sweep: at least one period required")

	// ErrNoDutyCycles is returned by Validate when the duty-cycle axis is
	// empty.
	ErrNoDutyCycles = errors.New("sweep: at least one duty cycle required")

	// ErrNoPeriodCounts is returned by Validate when the period-count axis
	// is empty.
	ErrNoPeriodCounts = errors.New("sweep: at least one period count required")

	// ErrMissingProperty is returned by Validate when one of the three
	// material properties (n1, n2, loss) is nil. Validate wraps it with
	// the property name.
	ErrMissingProperty = errors.New("sweep: material property not configured")
)
