// Package cml is a compact model library for material quantities: one
// small immutable descriptor per physical property (refractive index,
// loss) that can be a constant, a per-point sample table, a Taylor
// expansion, or a combination of those.
//
// A Property is built once from functional options and then evaluated at
// (wavelength, width, sample index) tuples during sweeps:
//
//	n1, err := cml.New(
//	    cml.WithConstant(2.2),
//	    cml.WithWavelengthModel(cml.Expansion{X0: 1.55e-6, Coeffs: []float64{0, 0.1e6}}),
//	)
//	...
//	v, err := n1.Eval(1.56e-6, 0, 0)
//
// # Representations
//
//   - Constant — a single value, independent of everything.
//
//   - Sampled — one value per sweep position; the evaluation index selects
//     the sample, and anything out of range is an error.
//
//   - Wavelength model — a Taylor expansion about λ₀ with the dispersion
//     sign convention n(λ) = a₀ − a₁·(λ−λ₀) − a₂·(λ−λ₀)² − …
//
//   - Width model — a Taylor expansion about w₀ with the additive
//     convention Δn(w) = b₀ + b₁·(w−w₀) + b₂·(w−w₀)² + …
//
// # Combination contract
//
// Evaluation is a single canonical fold, independent of the order options
// were supplied in:
//
//  1. The base is the constant or the selected sample when one of those is
//     configured; otherwise it is coeffs[0] of the first configured
//     expansion (wavelength before width).
//  2. The wavelength model then subtracts its i ≥ 1 terms.
//  3. The width model then adds its i ≥ 1 terms.
//
// An expansion's coeffs[0] therefore only ever acts as a base of last
// resort: combining a constant with a wavelength model uses the constant
// and ignores the model's a₀, and combining both expansions uses only the
// wavelength model's a₀. There is no need to zero out leading
// coefficients by hand when stacking models.
//
// # Errors
//
//	ErrEmpty          - New with no representation at all.
//	ErrBaseConflict   - WithConstant and WithSampled both configured.
//	ErrNoSamples      - WithSampled with an empty table.
//	ErrNoCoefficients - an expansion with no coefficients.
//	ErrSampleIndex    - Eval index outside the sample table.
//
// All errors are package-prefixed sentinels; match them with errors.Is.
//
// # Complexity
//
// Eval is O(k) in the total number of expansion coefficients, with no
// allocations; properties are safe for concurrent use after New.
package cml
