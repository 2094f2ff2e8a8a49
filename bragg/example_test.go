// SPDX-License-Identifier: MIT
// Package bragg_test: runnable example for the grating engine.

package bragg_test

import (
	"fmt"

	"github.com/optikon/spectra/bragg"
)

// ExampleGrating_ScatteringCoefficients builds a strong 100-period grating
// (κL ≈ 9.5) and probes it on and off resonance: at the design wavelength
// nearly everything reflects, one stopband away nearly everything passes.
func ExampleGrating_ScatteringCoefficients() {
	g, err := bragg.New(0.5e-6, 0.5, 100)
	if err != nil {
		fmt.Println("geometry:", err)
		return
	}

	const n1, n2 = 2.2, 2.0
	design := g.BraggWavelength(n1, n2)
	fmt.Printf("design wavelength: %.2f um\n", design*1e6)

	onPeak, err := g.ScatteringCoefficients(design, n1, n2, 0)
	if err != nil {
		fmt.Println("on-peak:", err)
		return
	}
	detuned, err := g.ScatteringCoefficients(1.6e-6, n1, n2, 0)
	if err != nil {
		fmt.Println("detuned:", err)
		return
	}

	fmt.Printf("R on peak  > 0.99: %t\n", onPeak.R > 0.99)
	fmt.Printf("R detuned  < 0.05: %t\n", detuned.R < 0.05)
	fmt.Printf("energy conserved:  %t\n", onPeak.R+onPeak.T > 0.999999)

	// Output:
	// design wavelength: 2.10 um
	// R on peak  > 0.99: true
	// R detuned  < 0.05: true
	// energy conserved:  true
}
