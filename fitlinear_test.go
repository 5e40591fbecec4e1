package bezfit

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubicSamples(c CubicBez, ts []float64) []Sample {
	samples := make([]Sample, len(ts))
	for i, tt := range ts {
		samples[i] = Sample{Point: c.Eval(tt), T: tt, HasT: true}
	}
	return samples
}

func denseTs(n int) []float64 {
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) / float64(n-1)
	}
	return ts
}

// Samples drawn directly from a cubic at known parameters must give back
// the cubic's own control points.
func TestFitLinearRecoversCubic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := CubicBez{Pt(0, 0), Pt(1, 3), Pt(4, 3), Pt(5, -1)}
	samples := cubicSamples(c, denseTs(21))

	seg, report, err := FitLinear(samples, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, report.Converged)
	assert.NoError(t, report.Err)
	assert.Zero(t, report.Iterations)
	assert.InDelta(t, 0, report.RSS, 1e-18)

	want := c.Seg()
	assert.InDelta(t, want.P1.X, seg.P1.X, 1e-9)
	assert.InDelta(t, want.P1.Y, seg.P1.Y, 1e-9)
	assert.InDelta(t, want.P2.X, seg.P2.X, 1e-9)
	assert.InDelta(t, want.P2.Y, seg.P2.Y, 1e-9)
}

func TestFitLinearRecoversQuad(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := QuadBez{Pt(0, 0), Pt(3, 4), Pt(6, 0)}
	ts := denseTs(11)
	samples := make([]Sample, len(ts))
	for i, tt := range ts {
		samples[i] = Sample{Point: q.Eval(tt), T: tt, HasT: true}
	}

	opts := DefaultOptions()
	opts.Degree = QuadKind
	seg, report, err := FitLinear(samples, opts)
	require.NoError(t, err)
	assert.True(t, report.Converged)
	assert.InDelta(t, q.P1.X, seg.P1.X, 1e-9)
	assert.InDelta(t, q.P1.Y, seg.P1.Y, 1e-9)
}

// The arch [(0,0),(1,1),(2,1),(3,0)] under chord-length parameters: two
// interior unknowns per axis against two interior samples, so the solution
// interpolates and the residual collapses.
func TestFitLinearArchScenario(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}
	samples := Samples(points)

	seg, report, err := FitLinear(samples, DefaultOptions())
	require.NoError(t, err)
	require.True(t, report.Converged)
	assert.Less(t, report.RSS, 0.01)

	ts := ChordLengths(points)
	for i, pt := range points {
		assert.InDelta(t, 0, pt.Distance(seg.Eval(ts[i])), 1e-6, "sample %d not interpolated", i)
	}
	// The input is symmetric about x = 1.5, so the control points are too.
	assert.InDelta(t, 3, seg.P1.X+seg.P2.X, 1e-6)
	assert.InDelta(t, seg.P1.Y, seg.P2.Y, 1e-6)

	assert.Equal(t, points[0], seg.Start())
	assert.Equal(t, points[3], seg.End())
}

func TestFitLinearCoincidentFallback(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Pt(2, 2)
	samples := Samples([]Point{p, p, p})

	seg, report, err := FitLinear(samples, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, report.Converged)
	assert.ErrorIs(t, report.Err, ErrDegenerateGeometry)
	assert.Equal(t, CubicBez{p, p, p, p}.Seg(), seg)
	assert.Zero(t, report.RSS)
}

// Parameters repeated at a single value make the design matrix rank
// deficient; the chord fallback keeps the endpoints.
func TestFitLinearSingularFallback(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	samples := []Sample{
		{Point: Pt(0, 0), T: 0, HasT: true},
		{Point: Pt(1, 2), T: 0, HasT: true},
		{Point: Pt(2, 1), T: 0, HasT: true},
		{Point: Pt(4, 0), T: 0, HasT: true},
	}
	_, report, err := FitLinear(samples, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, report.Converged)
	assert.ErrorIs(t, report.Err, ErrDegenerateGeometry)
}

func TestFitLinearInvalidInput(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := DefaultOptions()

	_, _, err := FitLinear(nil, opts)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = FitLinear(Samples([]Point{Pt(0, 0)}), opts)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Mixed supplied and missing parameters.
	mixed := []Sample{
		{Point: Pt(0, 0), T: 0, HasT: true},
		{Point: Pt(1, 1)},
		{Point: Pt(2, 0), T: 1, HasT: true},
	}
	_, _, err = FitLinear(mixed, opts)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Decreasing parameters.
	decreasing := []Sample{
		{Point: Pt(0, 0), T: 0.5, HasT: true},
		{Point: Pt(1, 1), T: 0.2, HasT: true},
	}
	_, _, err = FitLinear(decreasing, opts)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Parameter outside [0, 1].
	outside := []Sample{
		{Point: Pt(0, 0), T: 0, HasT: true},
		{Point: Pt(1, 1), T: 1.5, HasT: true},
	}
	_, _, err = FitLinear(outside, opts)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Bad degree.
	bad := DefaultOptions()
	bad.Degree = SegmentKind(9)
	_, _, err = FitLinear(Samples([]Point{Pt(0, 0), Pt(1, 1)}), bad)
	assert.ErrorIs(t, err, ErrInvalidInput)

	if !errors.Is(err, ErrInvalidInput) {
		t.Fatal("sentinel must be recoverable with errors.Is")
	}
}
