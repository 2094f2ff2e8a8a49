// Package spectra is your in-memory optical bench for modeling, sweeping,
// and analyzing layered one-dimensional structures — from 2×2 transfer
// matrices to full Bragg grating reflection spectra.
//
// 🚀 What is spectra?
//
//	A compact, deterministic library that brings together:
//		• Transfer matrices: complex 2×2 algebra with O(log N) exponentiation
//		• Layer models: homogeneous propagation & Fresnel index steps
//		• Bragg gratings: N-period stacks reduced to scattering coefficients
//		• Material models: constant, sampled, and Taylor-expanded indices
//		• Sweep driver: Cartesian parameter scans, CSV output, spectrum plots
//
// ✨ Why choose spectra?
//
//   - Physics-first – reflectance, transmittance, phases and group delay
//     straight from the scattering matrix, no fitting involved
//   - Rock-solid guarantees – value types, sentinel errors, exact unit
//     determinants preserved through every composition
//   - Deterministic – identical inputs give identical spectra, serial or
//     parallel
//   - Extensible – build exotic stacks directly from tmm primitives when
//     the Bragg engine is not enough
//
// Under the hood, everything is organized under five subpackages:
//
//	tmm/     — 2×2 complex matrix algebra, layer factories, scattering coefficients
//	cml/     — compact material models (constant, sampled, Taylor expansions)
//	bragg/   — periodic grating engine built on tmm
//	sweep/   — parameter sweeps, CSV serialization, PNG spectrum plots
//	cmd/tmm/ — command-line front end
//
// Quick ASCII example:
//
//	  n1  n2  n1  n2  n1  n2
//	┌────┬──┬────┬──┬────┬──┐
//	│    │  │    │  │    │  │ →  S = (P₁·I₁₂·P₂·I₂₁)ᴺ
//	└────┴──┴────┴──┴────┴──┘
//
//	represents an N-period Bragg grating: each period is two homogeneous
//	layers joined by index steps, and the whole stack is one matrix power.
//
// Dive into the per-package docs for formulas, invariants, and complexity
// notes on every operation.
//
//	go get github.com/optikon/spectra
package spectra
