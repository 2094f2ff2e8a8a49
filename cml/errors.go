// SPDX-License-Identifier: MIT
// Package cml: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the cml
// package. Constructors and Eval MUST return these sentinels and tests MUST
// check them via errors.Is.

package cml

import "errors"

var (
	// ErrEmpty is returned by New when no representation was configured:
	// a property must carry at least one of constant, samples, or a model.
	ErrEmpty = errors.New("cml: property needs at least one representation")

	// ErrBaseConflict is returned by New when both a constant and a sample
	// table are configured; the two base representations are exclusive.
	ErrBaseConflict = errors.New("cml: constant and sampled are mutually exclusive")

	// ErrNoSamples is returned by New when WithSampled was given an empty
	// table.
	ErrNoSamples = errors.New("cml: sampled representation needs at least one value")

	// ErrNoCoefficients is returned by New when an expansion carries no
	// coefficients; coeffs[0] must exist even if it is zero.
	ErrNoCoefficients = errors.New("cml: expansion needs at least one coefficient")

	// ErrSampleIndex is returned by Eval when the sample index falls
	// outside the configured table.
	ErrSampleIndex = errors.New("cml: sample index out of range")
)
