// SPDX-License-Identifier: MIT
// Package bragg: sentinel error set.
// Constructor validation errors only; evaluation errors come from the tmm
// package and pass through unchanged.

package bragg

import "errors"

var (
	// ErrPeriod is returned by New when the period is not a positive
	// finite length.
	ErrPeriod = errors.New("bragg: period must be a positive finite length")

	// ErrDutyCycle is returned by New when the duty cycle is outside
	// [0, 1]. Both endpoints are legal; they degenerate to a single
	// homogeneous layer per period.
	ErrDutyCycle = errors.New("bragg: duty cycle must be within [0, 1]")

	// ErrPeriodCount is returned by New when the period count is
	// negative, fractional, not finite, or too large to represent
	// exactly.
	ErrPeriodCount = errors.New("bragg: period count must be a non-negative integer")
)
