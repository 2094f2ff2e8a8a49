// SPDX-License-Identifier: MIT
// Package sweep: spectrum plotting.
// Renders reflection and transmission versus wavelength, one line pair
// per geometry/width combination, to any format gonum.org/v1/plot can
// save (picked by the file extension).

package sweep

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SavePlot renders the sweep spectrum to path. Records are grouped into
// runs of one full wavelength axis (the enumeration order keeps each
// geometry/width combination contiguous); every run contributes a solid
// reflection line and a dashed transmission line sharing one color.
func (r *Result) SavePlot(path string) error {
	nw := len(r.Plan.Wavelengths)
	if nw == 0 || len(r.Records) == 0 {
		return fmt.Errorf("sweep: nothing to plot")
	}
	if len(r.Records)%nw != 0 {
		return fmt.Errorf("sweep: %d records do not cover whole wavelength axes of %d", len(r.Records), nw)
	}

	p := plot.New()
	p.Title.Text = "Bragg grating spectrum"
	p.X.Label.Text = "wavelength (m)"
	p.Y.Label.Text = "power"
	p.Add(plotter.NewGrid())

	for g := 0; g*nw < len(r.Records); g++ {
		run := r.Records[g*nw : (g+1)*nw]

		refl := make(plotter.XYs, len(run))
		trans := make(plotter.XYs, len(run))
		for i, rec := range run {
			refl[i].X, refl[i].Y = rec.Wavelength, rec.R
			trans[i].X, trans[i].Y = rec.Wavelength, rec.T
		}

		rl, err := plotter.NewLine(refl)
		if err != nil {
			return fmt.Errorf("sweep: plot reflection: %w", err)
		}
		tl, err := plotter.NewLine(trans)
		if err != nil {
			return fmt.Errorf("sweep: plot transmission: %w", err)
		}
		rl.Color = plotutil.Color(g)
		tl.Color = plotutil.Color(g)
		tl.Dashes = plotutil.Dashes(1)
		p.Add(rl, tl)

		if g == 0 {
			p.Legend.Add("R", rl)
			p.Legend.Add("T", tl)
			p.Legend.Top = true
		}
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("sweep: save plot: %w", err)
	}
	return nil
}
