// SPDX-License-Identifier: MIT
// Package sweep_test: plan validation, enumeration and execution tests.

package sweep_test

import (
	"context"
	"testing"

	"github.com/optikon/spectra/bragg"
	"github.com/optikon/spectra/cml"
	"github.com/optikon/spectra/sweep"
	"github.com/optikon/spectra/tmm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constant builds a constant material property, failing the test on a bad
// descriptor.
func constant(t *testing.T, v float64) *cml.Property {
	t.Helper()
	p, err := cml.New(cml.WithConstant(v))
	require.NoError(t, err)
	return p
}

// sampled builds a per-point material property.
func sampled(t *testing.T, values ...float64) *cml.Property {
	t.Helper()
	p, err := cml.New(cml.WithSampled(values...))
	require.NoError(t, err)
	return p
}

// refPlan is a minimal valid plan: one strong grating probed at three
// wavelengths around its 2.1 µm design wavelength.
func refPlan(t *testing.T) sweep.Plan {
	t.Helper()
	return sweep.Plan{
		Periods:      []float64{0.5e-6},
		DutyCycles:   []float64{0.5},
		PeriodCounts: []float64{100},
		Wavelengths:  []float64{2.0e-6, 2.1e-6, 2.2e-6},
		N1:           constant(t, 2.2),
		N2:           constant(t, 2.0),
		Loss:         constant(t, 0),
	}
}

// TestPlanValidate_MissingAxes verifies the sentinel for each mandatory
// axis and property, in the order Validate checks them.
func TestPlanValidate_MissingAxes(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*sweep.Plan)
		want   error
	}{
		{"wavelengths", func(p *sweep.Plan) { p.Wavelengths = nil }, sweep.ErrNoWavelengths},
		{"periods", func(p *sweep.Plan) { p.Periods = nil }, sweep.ErrNoPeriods},
		{"duty cycles", func(p *sweep.Plan) { p.DutyCycles = nil }, sweep.ErrNoDutyCycles},
		{"period counts", func(p *sweep.Plan) { p.PeriodCounts = nil }, sweep.ErrNoPeriodCounts},
		{"n1", func(p *sweep.Plan) { p.N1 = nil }, sweep.ErrMissingProperty},
		{"n2", func(p *sweep.Plan) { p.N2 = nil }, sweep.ErrMissingProperty},
		{"loss", func(p *sweep.Plan) { p.Loss = nil }, sweep.ErrMissingProperty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := refPlan(t)
			tc.mutate(&plan)
			assert.ErrorIs(t, plan.Validate(), tc.want)
		})
	}
}

// TestPlanValidate_OK verifies that the reference plan passes.
func TestPlanValidate_OK(t *testing.T) {
	assert.NoError(t, refPlan(t).Validate())
}

// TestPlanCount_AxisLengthsMultiply verifies the tuple count with and
// without width axes.
func TestPlanCount_AxisLengthsMultiply(t *testing.T) {
	plan := refPlan(t)
	plan.Periods = []float64{0.5e-6, 0.6e-6}
	plan.PeriodCounts = []float64{10, 100}
	assert.Equal(t, 2*1*2*3, plan.Count(), "widthless count is the product of the set axes")

	plan.Widths1 = []float64{1e-6, 2e-6}
	assert.Equal(t, 2*1*2*2*3, plan.Count(), "width1 axis multiplies in")

	plan.Widths2 = []float64{3e-6, 4e-6}
	assert.Equal(t, 2*1*2*2*2*3, plan.Count(), "width2 axis multiplies in")
}

// TestRun_EnumerationOrder verifies the period-major, wavelength-minor
// tuple order and that the sample index tracks the wavelength position.
func TestRun_EnumerationOrder(t *testing.T) {
	plan := refPlan(t)
	plan.Periods = []float64{0.5e-6, 0.6e-6}
	plan.Workers = 1

	res, err := sweep.Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, res.Records, 6)

	for i, rec := range res.Records {
		assert.Equal(t, plan.Periods[i/3], rec.Period, "record %d period", i)
		assert.Equal(t, plan.Wavelengths[i%3], rec.Wavelength, "record %d wavelength", i)
		assert.Equal(t, i%3, rec.SampleIndex, "record %d sample index", i)
	}
}

// TestRun_WidthAxesDefaultToZero verifies that unset width axes evaluate
// every tuple at width zero.
func TestRun_WidthAxesDefaultToZero(t *testing.T) {
	res, err := sweep.Run(context.Background(), refPlan(t))
	require.NoError(t, err)

	for i, rec := range res.Records {
		assert.Zero(t, rec.Width1, "record %d width1", i)
		assert.Zero(t, rec.Width2, "record %d width2", i)
	}
}

// TestRun_WidthAxisOrdering verifies that an explicit width axis nests
// outside the wavelength axis.
func TestRun_WidthAxisOrdering(t *testing.T) {
	plan := refPlan(t)
	plan.Widths1 = []float64{1e-6, 2e-6}
	plan.Workers = 1

	res, err := sweep.Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, res.Records, 6)

	for i, rec := range res.Records {
		assert.Equal(t, plan.Widths1[i/3], rec.Width1, "record %d width1", i)
		assert.Equal(t, plan.Wavelengths[i%3], rec.Wavelength, "record %d wavelength", i)
	}
}

// TestRun_ParallelMatchesSerial verifies that the worker pool produces the
// same records in the same order as the serial path.
func TestRun_ParallelMatchesSerial(t *testing.T) {
	plan := refPlan(t)
	plan.Periods = []float64{0.5e-6, 0.52e-6}
	plan.DutyCycles = []float64{0.4, 0.6}
	plan.Wavelengths = []float64{1.9e-6, 2.0e-6, 2.1e-6, 2.2e-6, 2.3e-6}
	plan.DeltaLambda = 1e-10

	plan.Workers = 1
	serial, err := sweep.Run(context.Background(), plan)
	require.NoError(t, err)

	plan.Workers = 4
	parallel, err := sweep.Run(context.Background(), plan)
	require.NoError(t, err)

	require.Equal(t, serial.Records, parallel.Records)
}

// TestRun_SampledIndexSelectsSample verifies that a sampled property is
// looked up by wavelength position, independent of the wavelength value.
func TestRun_SampledIndexSelectsSample(t *testing.T) {
	samples := []float64{2.2, 2.25, 2.3}
	plan := refPlan(t)
	plan.N1 = sampled(t, samples...)

	res, err := sweep.Run(context.Background(), plan)
	require.NoError(t, err)

	for i, rec := range res.Records {
		assert.Equal(t, samples[i], rec.N1, "record %d n1 sample", i)
		assert.Equal(t, 2.0, rec.N2, "record %d n2 stays constant", i)
	}
}

// TestRun_SampledTooShort verifies that a sample table shorter than the
// wavelength axis fails mid-sweep with the cml range sentinel.
func TestRun_SampledTooShort(t *testing.T) {
	plan := refPlan(t)
	plan.Loss = sampled(t, 0, 0)

	_, err := sweep.Run(context.Background(), plan)
	assert.ErrorIs(t, err, cml.ErrSampleIndex)
}

// TestRun_InvalidPlan verifies that Run surfaces Validate sentinels.
func TestRun_InvalidPlan(t *testing.T) {
	plan := refPlan(t)
	plan.Wavelengths = nil

	_, err := sweep.Run(context.Background(), plan)
	assert.ErrorIs(t, err, sweep.ErrNoWavelengths)
}

// TestRun_BadGeometryPropagates verifies that bragg constructor errors
// surface from Run.
func TestRun_BadGeometryPropagates(t *testing.T) {
	plan := refPlan(t)
	plan.Periods = []float64{-1e-6}

	_, err := sweep.Run(context.Background(), plan)
	assert.ErrorIs(t, err, bragg.ErrPeriod)
}

// TestRun_BadIndexProductPropagates verifies that a negative index
// product fails with the tmm sentinel instead of producing NaNs.
func TestRun_BadIndexProductPropagates(t *testing.T) {
	plan := refPlan(t)
	plan.N1 = constant(t, -2.2)

	_, err := sweep.Run(context.Background(), plan)
	assert.ErrorIs(t, err, tmm.ErrIndexProduct)
}

// TestRun_GroupDelayUniformMedium verifies the group delay of a
// contrast-free stack against the analytic n·L/c transit time.
func TestRun_GroupDelayUniformMedium(t *testing.T) {
	plan := refPlan(t)
	plan.Periods = []float64{1e-6}
	plan.N1 = constant(t, 2.0)
	plan.N2 = constant(t, 2.0)
	plan.Wavelengths = []float64{1.55e-6}
	plan.DeltaLambda = 1e-10

	res, err := sweep.Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	// 100 periods of 1 µm at n = 2: τ = n·L/c.
	want := 2.0 * 100e-6 / tmm.C
	assert.InEpsilon(t, want, res.Records[0].GroupDelay, 1e-6)
}

// TestRun_GroupDelayFarFromStopband verifies that a detuned grating
// delays by roughly the mean-index transit time.
func TestRun_GroupDelayFarFromStopband(t *testing.T) {
	plan := refPlan(t)
	plan.Wavelengths = []float64{5e-6}
	plan.DeltaLambda = 1e-10

	res, err := sweep.Run(context.Background(), plan)
	require.NoError(t, err)

	// Mean index 2.1 over 100 periods of 0.5 µm.
	transit := 2.1 * 50e-6 / tmm.C
	delay := res.Records[0].GroupDelay
	assert.Greater(t, delay, 0.5*transit)
	assert.Less(t, delay, 2*transit)
}

// TestRun_GroupDelayZeroWithoutInterval verifies that DeltaLambda == 0
// leaves every group delay at zero.
func TestRun_GroupDelayZeroWithoutInterval(t *testing.T) {
	res, err := sweep.Run(context.Background(), refPlan(t))
	require.NoError(t, err)

	for i, rec := range res.Records {
		assert.Zero(t, rec.GroupDelay, "record %d", i)
	}
}

// TestRun_GroupDelayZeroWhenSampled verifies that sampled properties
// suppress the group-delay computation even with an interval set.
func TestRun_GroupDelayZeroWhenSampled(t *testing.T) {
	plan := refPlan(t)
	plan.Loss = sampled(t, 0, 0, 0)
	plan.DeltaLambda = 1e-10

	res, err := sweep.Run(context.Background(), plan)
	require.NoError(t, err)

	for i, rec := range res.Records {
		assert.Zero(t, rec.GroupDelay, "record %d", i)
	}
}

// TestRun_ContextCancelled verifies that a cancelled context aborts both
// the serial and the parallel path.
func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		plan := refPlan(t)
		plan.Workers = workers

		_, err := sweep.Run(ctx, plan)
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
	}
}
