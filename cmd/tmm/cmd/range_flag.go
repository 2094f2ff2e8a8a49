// SPDX-License-Identifier: MIT
// Package cmd: pflag.Value for the wavelength-range flag.
// "start,stop,points" expands into an evenly spaced wavelength list, so
// long scans do not need a thousand-element --wavelength argument.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// rangeValue holds a parsed "start,stop,points" triple.
type rangeValue struct {
	start  float64
	stop   float64
	points int
	set    bool
}

// Set implements pflag.Value.
func (r *rangeValue) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("range needs start,stop,points, got %q", s)
	}

	start, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return fmt.Errorf("range start: %q is not a number", parts[0])
	}
	stop, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return fmt.Errorf("range stop: %q is not a number", parts[1])
	}
	points, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return fmt.Errorf("range points: %q is not an integer", parts[2])
	}
	if points < 2 {
		return fmt.Errorf("range needs at least 2 points, got %d", points)
	}

	r.start, r.stop, r.points, r.set = start, stop, points, true
	return nil
}

// String implements pflag.Value.
func (r *rangeValue) String() string {
	if !r.set {
		return ""
	}
	return fmt.Sprintf("%g,%g,%d", r.start, r.stop, r.points)
}

// Type implements pflag.Value.
func (r *rangeValue) Type() string { return "start,stop,points" }

// expand materializes the evenly spaced wavelength list; the endpoints are
// included exactly.
func (r *rangeValue) expand() []float64 {
	return floats.Span(make([]float64, r.points), r.start, r.stop)
}
