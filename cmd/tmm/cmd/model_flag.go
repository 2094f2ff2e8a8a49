// SPDX-License-Identifier: MIT
// Package cmd: pflag.Value for Taylor-expansion flags.
// A model flag packs the expansion point and its coefficients into one
// comma-separated argument: "x0,c0,c1,...".

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/optikon/spectra/cml"
)

// modelValue parses "x0,c0,c1,..." into a cml.Expansion and remembers
// whether the flag was set at all.
type modelValue struct {
	model cml.Expansion
	set   bool
}

// Set implements pflag.Value.
func (m *modelValue) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return fmt.Errorf("model needs an expansion point and at least one coefficient, got %q", s)
	}

	vals := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("model term %d: %q is not a number", i, part)
		}
		vals[i] = v
	}

	m.model = cml.Expansion{X0: vals[0], Coeffs: vals[1:]}
	m.set = true
	return nil
}

// String implements pflag.Value; it renders the flag back into the same
// comma-separated form.
func (m *modelValue) String() string {
	if !m.set {
		return ""
	}
	parts := make([]string, 0, len(m.model.Coeffs)+1)
	parts = append(parts, strconv.FormatFloat(m.model.X0, 'g', -1, 64))
	for _, c := range m.model.Coeffs {
		parts = append(parts, strconv.FormatFloat(c, 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}

// Type implements pflag.Value; it names the argument shape in help text.
func (m *modelValue) Type() string { return "x0,c0,c1,..." }
