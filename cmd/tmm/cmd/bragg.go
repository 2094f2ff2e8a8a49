// SPDX-License-Identifier: MIT
// Package cmd: the bragg device subcommand.
// Flags select the sweep axes and the material representations; the heavy
// lifting happens in the sweep package. CSV goes to stdout, warnings to
// stderr, and an optional plot to disk.

package cmd

import (
	"fmt"

	"github.com/optikon/spectra/cml"
	"github.com/optikon/spectra/sweep"
	"github.com/spf13/cobra"
)

// Bragg flag state, reset between in-process runs by the tests.
var (
	braggWavelengths []float64
	braggRange       rangeValue
	braggDL          float64

	braggPeriods    []float64
	braggDutyCycles = boundedSliceValue{min: 0, max: 1}
	braggCounts     []float64

	braggN1   []float64
	braggN2   []float64
	braggLoss []float64

	braggN1Model   modelValue
	braggN2Model   modelValue
	braggLossModel modelValue

	braggWidths1      []float64
	braggWidths2      []float64
	braggN1WidthModel modelValue
	braggN2WidthModel modelValue

	braggDB      bool
	braggWorkers int
	braggPlot    string
)

var braggCmd = &cobra.Command{
	Use:   "bragg",
	Short: "Reflection/transmission spectrum of a uniform Bragg grating",
	Long: `Sweeps the cross product of the geometry axes (period, duty cycle,
period count, widths) against the wavelength axis over a uniform Bragg
grating and prints one CSV row per tuple.

Material properties take constant or sampled values (--n1 2.2 versus
--n1 2.20,2.21,...; one sample per wavelength position) and Taylor
expansion models:

  --n1-model l0,a0,a1,...         n(l)  = a0 - a1*(l-l0) - a2*(l-l0)^2 - ...
  --n1-width-model w0,b0,b1,...   dn(w) = b1*(w-w0) + b2*(w-w0)^2 + ...

A constant or sampled base suppresses a model's leading coefficient, so
stacking --n1 with --n1-model needs no hand-zeroed a0.

Examples:
  tmm bragg -l 2.1e-6 -p 0.5e-6 -c 0.5 -N 100 --n1 2.2 --n2 2.0 -a 0
  tmm bragg --wavelength-range 1.9e-6,2.3e-6,256 -p 0.5e-6 -c 0.5 -N 100 \
      --n1-model 2.1e-6,2.2,0.05e6 --n2 2.0 -a 0 --dl 1e-10 --plot out.png`,
	RunE: runBragg,
}

func init() {
	rootCmd.AddCommand(braggCmd)

	f := braggCmd.Flags()
	f.Float64SliceVarP(&braggWavelengths, "wavelength", "l", nil,
		"wavelength(s) to evaluate, in meters")
	f.Var(&braggRange, "wavelength-range",
		"evenly spaced wavelengths appended to the --wavelength list")
	f.Float64Var(&braggDL, "dl", 0,
		"group-delay wavelength interval in meters; 0 disables the column")

	f.Float64SliceVarP(&braggPeriods, "period", "p", nil,
		"grating period(s) in meters")
	f.VarP(&braggDutyCycles, "dutycycle", "c",
		"duty cycle(s), each within [0, 1]")
	f.Float64SliceVarP(&braggCounts, "n-periods", "N", nil,
		"number(s) of periods")

	f.Float64SliceVar(&braggN1, "n1", nil,
		"high-index region index (one value: constant, several: sampled)")
	f.Float64SliceVar(&braggN2, "n2", nil,
		"low-index region index (one value: constant, several: sampled)")
	f.Float64SliceVarP(&braggLoss, "loss", "a", nil,
		"loss in 1/m (one value: constant, several: sampled)")

	f.Var(&braggN1Model, "n1-model", "wavelength model for n1")
	f.Var(&braggN2Model, "n2-model", "wavelength model for n2")
	f.Var(&braggLossModel, "loss-model", "wavelength model for loss")

	f.Float64SliceVar(&braggWidths1, "w1", nil,
		"width(s) for the high-index region")
	f.Float64SliceVar(&braggWidths2, "w2", nil,
		"width(s) for the low-index region")
	f.Var(&braggN1WidthModel, "n1-width-model", "width model for n1")
	f.Var(&braggN2WidthModel, "n2-width-model", "width model for n2")

	f.BoolVar(&braggDB, "db", false,
		"emit R and T in decibels")
	f.IntVar(&braggWorkers, "workers", 0,
		"parallel tuple evaluations; 0 means GOMAXPROCS, 1 is serial")
	f.StringVar(&braggPlot, "plot", "",
		"also render the spectrum to this image file")
}

func runBragg(cmd *cobra.Command, _ []string) error {
	wavelengths := append([]float64(nil), braggWavelengths...)
	if braggRange.set {
		wavelengths = append(wavelengths, braggRange.expand()...)
	}
	if len(wavelengths) == 0 {
		return fmt.Errorf("[ERROR] setup: %w", sweep.ErrNoWavelengths)
	}

	if braggDL == 0 && cmd.Flags().Changed("dl") {
		fmt.Fprintln(cmd.ErrOrStderr(), "[WARN] setup: group delay: wavelength interval=0, ignored")
	}

	n1, err := materialProperty("n1", braggN1, &braggN1Model, &braggN1WidthModel)
	if err != nil {
		return err
	}
	n2, err := materialProperty("n2", braggN2, &braggN2Model, &braggN2WidthModel)
	if err != nil {
		return err
	}
	loss, err := materialProperty("loss", braggLoss, &braggLossModel, nil)
	if err != nil {
		return err
	}

	// The group-delay stencil falls between sweep positions, which sampled
	// data cannot serve; the column stays at zero there.
	if braggDL != 0 && (n1.Sampled() || n2.Sampled() || loss.Sampled()) {
		fmt.Fprintln(cmd.ErrOrStderr(), "[WARN] setup: group delay: not supported for sampled data")
	}

	plan := sweep.Plan{
		Periods:      braggPeriods,
		DutyCycles:   braggDutyCycles.values,
		PeriodCounts: braggCounts,
		Widths1:      braggWidths1,
		Widths2:      braggWidths2,
		Wavelengths:  wavelengths,
		N1:           n1,
		N2:           n2,
		Loss:         loss,
		DeltaLambda:  braggDL,
		Workers:      braggWorkers,
	}
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("[ERROR] setup: bragg: %w", err)
	}

	res, err := sweep.Run(cmd.Context(), plan)
	if err != nil {
		return fmt.Errorf("[ERROR] calculation: bragg: %w", err)
	}

	if err := res.WriteCSV(cmd.OutOrStdout(), braggDB); err != nil {
		return fmt.Errorf("[ERROR] calculation: bragg: %w", err)
	}
	if braggPlot != "" {
		if err := res.SavePlot(braggPlot); err != nil {
			return fmt.Errorf("[ERROR] calculation: bragg: %w", err)
		}
	}
	return nil
}

// materialProperty assembles the cml.Property of one material from its
// value list and model flags. One listed value becomes a constant base,
// several become samples aligned with the wavelength axis; models ride on
// top per the cml combination contract. width is nil for materials without
// a width-model flag.
func materialProperty(name string, values []float64, wavelength, width *modelValue) (*cml.Property, error) {
	var opts []cml.Option
	switch {
	case len(values) == 1:
		opts = append(opts, cml.WithConstant(values[0]))
	case len(values) > 1:
		opts = append(opts, cml.WithSampled(values...))
	}
	if wavelength.set {
		opts = append(opts, cml.WithWavelengthModel(wavelength.model))
	}
	if width != nil && width.set {
		opts = append(opts, cml.WithWidthModel(width.model))
	}
	if len(opts) == 0 {
		return nil, fmt.Errorf("[ERROR] setup: bragg: specify %s with --%s or --%s-model", name, name, name)
	}

	p, err := cml.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("[ERROR] setup: bragg: %s: %w", name, err)
	}
	return p, nil
}
