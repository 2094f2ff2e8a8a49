// SPDX-License-Identifier: MIT
// Package cmd: pflag.Value for bounded numeric list flags.
// Bounds are enforced while parsing, so an out-of-range duty cycle is a
// flag error rather than a late sweep failure.

package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// boundedSliceValue parses a comma-separated float list and rejects any
// element outside [min, max]. Setting the flag again replaces the
// previous list.
type boundedSliceValue struct {
	values   []float64
	min, max float64
}

// Set implements pflag.Value.
func (b *boundedSliceValue) Set(s string) error {
	parts := strings.Split(s, ",")
	vals := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("element %d: %q is not a number", i, part)
		}
		if v < b.min || v > b.max {
			return fmt.Errorf("element %d: %g out of bounds [%g, %g]", i, v, b.min, b.max)
		}
		vals[i] = v
	}

	b.values = vals
	return nil
}

// String implements pflag.Value.
func (b *boundedSliceValue) String() string {
	if len(b.values) == 0 {
		return ""
	}
	parts := make([]string, len(b.values))
	for i, v := range b.values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Type implements pflag.Value.
func (b *boundedSliceValue) Type() string { return "float64Slice" }
