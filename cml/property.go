// SPDX-License-Identifier: MIT
// Package cml: the Property sum type, its functional options, and the
// canonical evaluation fold.

package cml

import "fmt"

// baseKind tags which base representation a Property carries.
type baseKind uint8

const (
	// baseNone: no constant and no samples; an expansion must provide
	// the base through its leading coefficient.
	baseNone baseKind = iota

	// baseConstant: the base is a single configured value.
	baseConstant

	// baseSampled: the base is selected from a table by the sample index.
	baseSampled
)

// Property is an immutable compact model of one material quantity.
// Build it with New and the With* options; evaluate it with Eval.
// A Property is safe for concurrent use.
type Property struct {
	kind     baseKind
	constant float64
	samples  []float64

	// nil when the corresponding model is absent.
	wavelength *Expansion
	width      *Expansion
}

// Option configures a Property under construction. Options are applied in
// order with last-writer-wins semantics for repeats of the same kind;
// validation happens once, in New.
type Option func(*settings)

// settings accumulates option state before validation. sampledSet
// distinguishes "WithSampled never called" from "called with no values".
type settings struct {
	constant   *float64
	samples    []float64
	sampledSet bool
	wavelength *Expansion
	width      *Expansion
}

// WithConstant configures a fixed base value.
func WithConstant(v float64) Option {
	return func(s *settings) { s.constant = &v }
}

// WithSampled configures a per-point base table; Eval's sample index
// selects the entry. The values are copied.
func WithSampled(values ...float64) Option {
	return func(s *settings) {
		s.samples = append([]float64(nil), values...)
		s.sampledSet = true
	}
}

// WithWavelengthModel configures the dispersion expansion
// n(λ) = a₀ − a₁·(λ−X0) − a₂·(λ−X0)² − … The record is copied.
func WithWavelengthModel(m Expansion) Option {
	return func(s *settings) {
		c := m.clone()
		s.wavelength = &c
	}
}

// WithWidthModel configures the geometry expansion
// Δn(w) = b₀ + b₁·(w−X0) + b₂·(w−X0)² + … The record is copied.
func WithWidthModel(m Expansion) Option {
	return func(s *settings) {
		c := m.clone()
		s.width = &c
	}
}

// New builds a Property from the given options.
//
// Validation rules, in the order they are checked:
//  1. At least one representation must be configured (ErrEmpty).
//  2. Constant and sampled are mutually exclusive (ErrBaseConflict).
//  3. A configured sample table must be non-empty (ErrNoSamples).
//  4. A configured expansion must carry coefficients (ErrNoCoefficients).
//
// Complexity: O(k) over sample and coefficient counts (copies only).
func New(opts ...Option) (*Property, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	if s.constant == nil && !s.sampledSet && s.wavelength == nil && s.width == nil {
		return nil, ErrEmpty
	}
	if s.constant != nil && s.sampledSet {
		return nil, ErrBaseConflict
	}
	if s.sampledSet && len(s.samples) == 0 {
		return nil, ErrNoSamples
	}
	if s.wavelength != nil && len(s.wavelength.Coeffs) == 0 {
		return nil, fmt.Errorf("wavelength model: %w", ErrNoCoefficients)
	}
	if s.width != nil && len(s.width.Coeffs) == 0 {
		return nil, fmt.Errorf("width model: %w", ErrNoCoefficients)
	}

	p := &Property{
		kind:       baseNone,
		wavelength: s.wavelength,
		width:      s.width,
	}
	switch {
	case s.constant != nil:
		p.kind = baseConstant
		p.constant = *s.constant
	case s.sampledSet:
		p.kind = baseSampled
		p.samples = s.samples
	}

	return p, nil
}

// Eval computes the property value at a (wavelength, width, sample) tuple
// using the canonical fold:
//
//	base  = constant | samples[sample] | first expansion's coeffs[0]
//	value = base − wavelengthTail(λ) + widthTail(w)
//
// where each tail is the i ≥ 1 part of the corresponding expansion. The
// sample index matters only for sampled properties; everything else
// ignores it.
//
// Errors:
//   - ErrSampleIndex — sampled property with sample outside [0, len).
func (p *Property) Eval(wavelength, width float64, sample int) (float64, error) {
	var v float64
	haveBase := true

	switch p.kind {
	case baseConstant:
		v = p.constant
	case baseSampled:
		if sample < 0 || sample >= len(p.samples) {
			return 0, fmt.Errorf("sample %d of %d: %w", sample, len(p.samples), ErrSampleIndex)
		}
		v = p.samples[sample]
	default:
		haveBase = false
	}

	// Base of last resort: the leading coefficient of the first
	// configured expansion, wavelength before width.
	if p.wavelength != nil {
		if !haveBase {
			v = p.wavelength.Coeffs[0]
			haveBase = true
		}
		v -= p.wavelength.tail(wavelength)
	}
	if p.width != nil {
		if !haveBase {
			v = p.width.Coeffs[0]
		}
		v += p.width.tail(width)
	}

	return v, nil
}

// Sampled reports whether the property's base is a sample table. Sweep
// drivers use this to refuse derivative analyses that need a continuous
// wavelength dependence.
func (p *Property) Sampled() bool {
	return p.kind == baseSampled
}

// SampleCount returns the size of the sample table, or zero for
// non-sampled properties.
func (p *Property) SampleCount() int {
	return len(p.samples)
}
