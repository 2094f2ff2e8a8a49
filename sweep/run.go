// SPDX-License-Identifier: MIT
// Package sweep: sweep execution.
// Run enumerates the plan's tuples and evaluates each one independently,
// either in place (Workers == 1) or on a fixed worker pool. Results are
// written into their enumeration slot, so the output order never depends
// on the worker count.

package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/optikon/spectra/bragg"
	"github.com/optikon/spectra/tmm"
)

// workItem carries one tuple and its slot in the result table.
type workItem struct {
	index int
	point Point
}

// Run validates the plan, evaluates every tuple and returns the ordered
// result table. The first evaluation error cancels the remaining work and
// is returned; a cancelled context returns ctx.Err().
func Run(ctx context.Context, plan Plan) (*Result, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	pts := plan.points()
	records := make([]Record, len(pts))

	workers := plan.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(pts) {
		workers = len(pts)
	}

	if workers <= 1 {
		for i, pt := range pts {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rec, err := plan.evaluate(pt)
			if err != nil {
				return nil, err
			}
			records[i] = rec
		}
		return &Result{Plan: plan, Records: records}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	workCh := make(chan workItem, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range workCh {
				if ctx.Err() != nil {
					continue
				}
				rec, err := plan.evaluate(item.point)
				if err != nil {
					fail(err)
					continue
				}
				records[item.index] = rec
			}
		}()
	}

dispatch:
	for i, pt := range pts {
		select {
		case workCh <- workItem{index: i, point: pt}:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(workCh)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Result{Plan: plan, Records: records}, nil
}

// evaluate computes one record. The grating is rebuilt per tuple; its
// constructor only validates and stores three fields, and the rebuild
// keeps every tuple self-contained for the worker pool.
func (p Plan) evaluate(pt Point) (Record, error) {
	grating, err := bragg.New(pt.Period, pt.DutyCycle, pt.PeriodCount)
	if err != nil {
		return Record{}, err
	}

	n1, err := p.N1.Eval(pt.Wavelength, pt.Width1, pt.SampleIndex)
	if err != nil {
		return Record{}, fmt.Errorf("n1: %w", err)
	}
	n2, err := p.N2.Eval(pt.Wavelength, pt.Width2, pt.SampleIndex)
	if err != nil {
		return Record{}, fmt.Errorf("n2: %w", err)
	}
	loss, err := p.Loss.Eval(pt.Wavelength, 0, pt.SampleIndex)
	if err != nil {
		return Record{}, fmt.Errorf("loss: %w", err)
	}

	coeffs, err := grating.ScatteringCoefficients(pt.Wavelength, n1, n2, loss)
	if err != nil {
		return Record{}, fmt.Errorf("wavelength %g: %w", pt.Wavelength, err)
	}

	rec := Record{
		Point:        pt,
		N1:           n1,
		N2:           n2,
		Loss:         loss,
		Coefficients: coeffs,
	}

	if p.DeltaLambda != 0 && !p.sampled() {
		delay, err := p.groupDelay(grating, pt, loss)
		if err != nil {
			return Record{}, err
		}
		rec.GroupDelay = delay
	}
	return rec, nil
}

// groupDelay evaluates the tuple at wavelength ∓ DeltaLambda and
// differences the transmission phases. The indices follow their models to
// the offset wavelengths; loss stays at its centre value.
func (p Plan) groupDelay(grating *bragg.Grating, pt Point, loss float64) (float64, error) {
	back := pt.Wavelength - p.DeltaLambda
	fwd := pt.Wavelength + p.DeltaLambda

	phase := func(wavelength float64) (float64, error) {
		n1, err := p.N1.Eval(wavelength, pt.Width1, pt.SampleIndex)
		if err != nil {
			return 0, fmt.Errorf("n1: %w", err)
		}
		n2, err := p.N2.Eval(wavelength, pt.Width2, pt.SampleIndex)
		if err != nil {
			return 0, fmt.Errorf("n2: %w", err)
		}
		coeffs, err := grating.ScatteringCoefficients(wavelength, n1, n2, loss)
		if err != nil {
			return 0, fmt.Errorf("wavelength %g: %w", wavelength, err)
		}
		return coeffs.PhaseT, nil
	}

	phaseBack, err := phase(back)
	if err != nil {
		return 0, err
	}
	phaseFwd, err := phase(fwd)
	if err != nil {
		return 0, err
	}
	return tmm.GroupDelay(phaseBack, phaseFwd, back, fwd), nil
}
