// Package bragg solves the reflection and transmission spectrum of a
// uniform Bragg grating with the Transfer Matrix Method.
//
// A grating is N repetitions of a two-layer period: a high-index section
// of length Λ·D followed by a low-index section of length Λ·(1−D), where
// Λ is the period and D the duty cycle:
//
//	  n1    n2   n1    n2        n1    n2
//	┌─────┬────┬─────┬────┬ ─ ─ ┬─────┬────┐
//	│ Λ·D │rest│     │    │     │     │    │   × N periods
//	└─────┴────┴─────┴────┴ ─ ─ ┴─────┴────┘
//
// One period composes four elementary matrices from the tmm package,
//
//	Tp = P(Λ·D, n1) · I(n1→n2) · P(Λ·(1−D), n2) · I(n2→n1)
//
// and the whole stack is the single matrix power S = Tp^N, evaluated with
// O(log N) multiplies. ScatteringCoefficients then reduces S to the four
// observables R, T, PhaseR, PhaseT.
//
// # Geometry vs. materials
//
// A Grating is an immutable geometric descriptor: period, duty cycle, and
// period count, validated once in New. Material parameters (n1, n2, loss)
// arrive per evaluation call, because they generally depend on wavelength
// and geometry through cml models; the same Grating is reused across a
// whole sweep and is safe for concurrent use.
//
// # Design wavelength
//
// BraggWavelength returns λ_B = Λ·(n1+n2) = 2·Λ·n̄, the first-order
// resonance where each period accumulates half a wave of phase and the
// per-period reflections add coherently. Reflectance peaks there and
// falls off into oscillating sidelobes on either side.
//
// # Errors
//
//	ErrPeriod      - period is not a positive finite number.
//	ErrDutyCycle   - duty cycle outside [0, 1].
//	ErrPeriodCount - period count negative, fractional, or not finite.
//
// Evaluation calls propagate tmm.ErrIndexProduct and tmm.ErrSingular
// unchanged; match all of these with errors.Is.
package bragg
