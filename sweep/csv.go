// SPDX-License-Identifier: MIT
// Package sweep: CSV emission.
// One header line, one line per record, %.6g throughout. Width columns
// appear only when their axis was set; the group_delay column only when
// DeltaLambda is non-zero.

package sweep

import (
	"bufio"
	"fmt"
	"io"

	"github.com/optikon/spectra/tmm"
)

// WriteCSV writes the result table to w. With db set, R and T are
// converted to decibels via tmm.ToDB and their columns are renamed R_dB
// and T_dB; phases and group delay are never converted.
func (r *Result) WriteCSV(w io.Writer, db bool) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "period,duty_cycle,N,wavelength")
	if r.Plan.sweepWidth1() {
		fmt.Fprint(bw, ",w1")
	}
	if r.Plan.sweepWidth2() {
		fmt.Fprint(bw, ",w2")
	}
	if db {
		fmt.Fprint(bw, ",n1,n2,loss,R_dB,T_dB,phase_r,phase_t")
	} else {
		fmt.Fprint(bw, ",n1,n2,loss,R,T,phase_r,phase_t")
	}
	if r.Plan.DeltaLambda != 0 {
		fmt.Fprint(bw, ",group_delay")
	}
	fmt.Fprintln(bw)

	for _, rec := range r.Records {
		refl, trans := rec.R, rec.T
		if db {
			refl, trans = tmm.ToDB(refl), tmm.ToDB(trans)
		}

		fmt.Fprintf(bw, "%.6g,%.6g,%.6g,%.6g",
			rec.Period, rec.DutyCycle, rec.PeriodCount, rec.Wavelength)
		if r.Plan.sweepWidth1() {
			fmt.Fprintf(bw, ",%.6g", rec.Width1)
		}
		if r.Plan.sweepWidth2() {
			fmt.Fprintf(bw, ",%.6g", rec.Width2)
		}
		fmt.Fprintf(bw, ",%.6g,%.6g,%.6g,%.6g,%.6g,%.6g,%.6g",
			rec.N1, rec.N2, rec.Loss, refl, trans, rec.PhaseR, rec.PhaseT)
		if r.Plan.DeltaLambda != 0 {
			fmt.Fprintf(bw, ",%.6g", rec.GroupDelay)
		}
		fmt.Fprintln(bw)
	}

	// bufio latches the first write error; Flush reports it.
	return bw.Flush()
}
