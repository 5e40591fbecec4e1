package bezfit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FitLinear fits a single segment to the samples by linear least squares.
//
// The segment's endpoints are fixed to the first and last sample and each
// sample keeps its parameter, supplied or estimated once up front. Only the
// interior control points are solved for, one QR solve per axis over the
// Bernstein design matrix.
//
// A singular or ill-conditioned system degrades to a heuristic segment with
// the interior control points spread along the chord, reported with
// Converged=false. The same fallback handles all-coincident samples.
func FitLinear(samples []Sample, opts Options) (Segment, FitReport, error) {
	if err := opts.validate(); err != nil {
		return Segment{}, FitReport{}, err
	}
	if err := validateSamples(samples); err != nil {
		return Segment{}, FitReport{}, err
	}
	ts := resolveParams(samples, opts.Heuristic)
	seg, report := fitLinearAt(samples, ts, opts.Degree)
	return seg, report, nil
}

// fitLinearAt is the solver shared with the iterative fitters: parameters
// are taken as given, validation has already happened.
func fitLinearAt(samples []Sample, ts []float64, kind SegmentKind) (Segment, FitReport) {
	p0 := samples[0].Point
	pn := samples[len(samples)-1].Point

	if allCoincident(samples) {
		seg := chordFallback(p0, pn, kind)
		tracer().Debugf("all %d samples coincide at %v, falling back to chord layout", len(samples), p0)
		return seg, FitReport{
			RSS: residualSumSquares(seg, samples, ts),
			Err: fmt.Errorf("%w: all samples coincide at %v", ErrDegenerateGeometry, p0),
		}
	}

	n := len(samples)
	interior := kind.Degree() - 1
	a := mat.NewDense(n, interior, nil)
	bx := mat.NewVecDense(n, nil)
	by := mat.NewVecDense(n, nil)
	proto := Segment{Kind: kind}
	for i, s := range samples {
		w, total := proto.Weights(ts[i])
		for j := 0; j < interior; j++ {
			a.Set(i, j, w[j+1])
		}
		bx.SetVec(i, s.Point.X-w[0]*p0.X-w[total-1]*pn.X)
		by.SetVec(i, s.Point.Y-w[0]*p0.Y-w[total-1]*pn.Y)
	}

	var qr mat.QR
	qr.Factorize(a)
	cx := mat.NewVecDense(interior, nil)
	cy := mat.NewVecDense(interior, nil)
	if err := qr.SolveVecTo(cx, false, bx); err != nil {
		return singularFallback(samples, ts, p0, pn, kind, err)
	}
	if err := qr.SolveVecTo(cy, false, by); err != nil {
		return singularFallback(samples, ts, p0, pn, kind, err)
	}

	seg := segmentFromInterior(p0, pn, kind, cx, cy)
	return seg, FitReport{
		RSS:       residualSumSquares(seg, samples, ts),
		Converged: true,
	}
}

func segmentFromInterior(p0, pn Point, kind SegmentKind, cx, cy *mat.VecDense) Segment {
	switch kind {
	case QuadKind:
		return QuadBez{p0, Pt(cx.AtVec(0), cy.AtVec(0)), pn}.Seg()
	default:
		return CubicBez{p0, Pt(cx.AtVec(0), cy.AtVec(0)), Pt(cx.AtVec(1), cy.AtVec(1)), pn}.Seg()
	}
}

func singularFallback(samples []Sample, ts []float64, p0, pn Point, kind SegmentKind, cause error) (Segment, FitReport) {
	seg := chordFallback(p0, pn, kind)
	tracer().Debugf("singular design matrix (%v), falling back to chord layout", cause)
	return seg, FitReport{
		RSS: residualSumSquares(seg, samples, ts),
		Err: fmt.Errorf("%w: singular design matrix: %v", ErrDegenerateGeometry, cause),
	}
}

// chordFallback spreads the interior control points evenly along the chord
// from p0 to pn.
func chordFallback(p0, pn Point, kind SegmentKind) Segment {
	switch kind {
	case QuadKind:
		return QuadBez{p0, p0.Midpoint(pn), pn}.Seg()
	default:
		return CubicBez{p0, p0.Lerp(pn, 1.0/3.0), p0.Lerp(pn, 2.0/3.0), pn}.Seg()
	}
}

func allCoincident(samples []Sample) bool {
	first := samples[0].Point
	for _, s := range samples[1:] {
		if s.Point != first {
			return false
		}
	}
	return true
}
