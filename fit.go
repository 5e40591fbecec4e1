package bezfit

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the bezfit trace.
func tracer() tracing.Trace {
	return tracing.Select("bezfit")
}

// Sample is a point to fit, optionally pinned to a curve parameter. When
// HasT is false the fitters estimate the parameter themselves.
type Sample struct {
	Point Point
	T     float64
	HasT  bool
}

// Samples wraps bare points into samples without parameters.
func Samples(points []Point) []Sample {
	samples := make([]Sample, len(points))
	for i, pt := range points {
		samples[i] = Sample{Point: pt}
	}
	return samples
}

// SamplesAt pairs points with their curve parameters.
func SamplesAt(points []Point, ts []float64) []Sample {
	samples := make([]Sample, len(points))
	for i, pt := range points {
		samples[i] = Sample{Point: pt, T: ts[i], HasT: true}
	}
	return samples
}

// Options configures a fit. The zero value is not useful; start from
// [DefaultOptions].
type Options struct {
	// Tolerance is the relative RSS improvement below which iterative
	// fitters consider themselves converged.
	Tolerance float64
	// MaxIterations bounds the iteration count of iterative fitters.
	MaxIterations int
	// Degree selects the segment kind to fit, quadratic or cubic.
	Degree SegmentKind
	// FitParameters lets the nonlinear fitter optimize the per-sample
	// parameters alongside the control points.
	FitParameters bool
	// Heuristic estimates parameters for samples that don't carry one.
	Heuristic ParamHeuristic
}

// DefaultOptions returns the options the fitters were tuned with: cubic
// degree, chord-length parameterization, tolerance 1e-6, 50 iterations.
func DefaultOptions() Options {
	return Options{
		Tolerance:     1e-6,
		MaxIterations: 50,
		Degree:        CubicKind,
		FitParameters: true,
		Heuristic:     ChordLength,
	}
}

func (opts Options) validate() error {
	if opts.Degree != QuadKind && opts.Degree != CubicKind {
		return fmt.Errorf("%w: unsupported degree %v", ErrInvalidInput, opts.Degree)
	}
	if opts.Tolerance < 0 {
		return fmt.Errorf("%w: negative tolerance %g", ErrInvalidInput, opts.Tolerance)
	}
	if opts.MaxIterations < 0 {
		return fmt.Errorf("%w: negative iteration budget %d", ErrInvalidInput, opts.MaxIterations)
	}
	return nil
}

// FitReport describes the outcome of a fit.
type FitReport struct {
	// RSS is the residual sum of squared distances between the samples and
	// the fitted curve at the sample parameters.
	RSS float64
	// Iterations is the number of iterations spent. The single-solve
	// linear fitter always reports 0.
	Iterations int
	// Converged is false when the fitter fell back to a heuristic result
	// or exhausted its iteration budget.
	Converged bool
	// Err classifies a result that did not converge; it wraps
	// [ErrDegenerateGeometry] or [ErrNonConvergence] and is nil when
	// Converged is true. The fit result is still usable either way.
	Err error
}

// validateSamples checks the structural preconditions shared by all
// fitters: at least two samples, parameters either on all samples or on
// none, and supplied parameters non-decreasing within [0, 1].
func validateSamples(samples []Sample) error {
	if len(samples) < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidInput, len(samples))
	}
	withT := 0
	for _, s := range samples {
		if s.Point.IsNaN() || s.Point.IsInf() {
			return fmt.Errorf("%w: sample point %v is not finite", ErrInvalidInput, s.Point)
		}
		if s.HasT {
			withT++
		}
	}
	if withT != 0 && withT != len(samples) {
		return fmt.Errorf("%w: %d of %d samples carry a parameter; all or none must", ErrInvalidInput, withT, len(samples))
	}
	if withT == 0 {
		return nil
	}
	prev := 0.0
	for i, s := range samples {
		if s.T < 0.0 || s.T > 1.0 {
			return fmt.Errorf("%w: sample %d parameter %g outside [0, 1]", ErrInvalidInput, i, s.T)
		}
		if s.T < prev {
			return fmt.Errorf("%w: sample parameters decrease at index %d (%g after %g)", ErrInvalidInput, i, s.T, prev)
		}
		prev = s.T
	}
	return nil
}

// resolveParams returns the parameter for each sample, either the supplied
// ones or fresh estimates from the heuristic.
func resolveParams(samples []Sample, h ParamHeuristic) []float64 {
	if len(samples) > 0 && samples[0].HasT {
		ts := make([]float64, len(samples))
		for i, s := range samples {
			ts[i] = s.T
		}
		return ts
	}
	points := make([]Point, len(samples))
	for i, s := range samples {
		points[i] = s.Point
	}
	return EstimateParams(points, h)
}

// residualSumSquares evaluates seg at each parameter and accumulates the
// squared distances to the samples.
func residualSumSquares(seg Segment, samples []Sample, ts []float64) float64 {
	var rss float64
	for i, s := range samples {
		rss += s.Point.DistanceSquared(seg.Eval(ts[i]))
	}
	return rss
}
