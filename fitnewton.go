package bezfit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// dampingRetries bounds how often the normal equations are re-damped
	// and re-factorized within one iteration.
	dampingRetries = 5
	// alphaFloor ends the backtracking line search.
	alphaFloor = 1e-8
)

// FitGaussNewton fits a single-segment curve by damped Gauss-Newton
// iteration. The unknowns are the interior control point coordinates and,
// when opts.FitParameters is set, the per-sample curve parameters. The
// endpoints stay fixed to the first and last sample.
//
// Each iteration solves the normal equations JᵀJ Δ = −Jᵀr by Cholesky
// factorization; when the factorization fails the diagonal is damped
// Levenberg-style and the solve retried a bounded number of times. The step
// is applied through a backtracking line search that halves the step size
// until the residual decreases. Parameters are clamped to [0, 1] after each
// accepted step. If no step size improves the residual, the pre-step state
// is returned with Converged=false.
func FitGaussNewton(samples []Sample, opts Options) (Curve, FitReport, error) {
	if err := opts.validate(); err != nil {
		return Curve{}, FitReport{}, err
	}
	if err := validateSamples(samples); err != nil {
		return Curve{}, FitReport{}, err
	}

	ts := resolveParams(samples, opts.Heuristic)
	seg, rep := fitLinearAt(samples, ts, opts.Degree)
	if !rep.Converged {
		// Degenerate input; the Jacobian would be rank deficient from the
		// start, so keep the heuristic seed.
		return Curve{Segments: []Segment{seg}},
			FitReport{RSS: rep.RSS, Iterations: 0, Converged: false, Err: rep.Err}, nil
	}

	st := newtonState{
		p0:       samples[0].Point,
		pn:       samples[len(samples)-1].Point,
		kind:     opts.Degree,
		interior: interiorControls(seg),
		ts:       ts,
		fitTs:    opts.FitParameters,
	}
	rss := st.rss(samples)

	converged := rss <= rssFloor
	iterations := 0
	for !converged && iterations < opts.MaxIterations {
		iterations++

		j, r := st.jacobian(samples)
		delta, ok := solveNormalEquations(j, r)
		if !ok {
			tracer().Debugf("gauss-newton iteration %d: normal equations unsolvable", iterations)
			break
		}

		next, nextRSS, stepNorm, ok := st.lineSearch(samples, delta, rss)
		if !ok {
			tracer().Debugf("gauss-newton iteration %d: no improving step", iterations)
			break
		}
		improvement := (rss - nextRSS) / math.Max(rss, rssFloor)
		st = next
		rss = nextRSS
		tracer().Debugf("gauss-newton iteration %d: rss %g, step %g", iterations, rss, stepNorm)

		if rss <= rssFloor || stepNorm < opts.Tolerance || improvement < opts.Tolerance {
			converged = true
			break
		}
	}

	var reason error
	if !converged {
		reason = fmt.Errorf("%w after %d iterations", ErrNonConvergence, iterations)
	}
	return Curve{Segments: []Segment{st.segment()}},
		FitReport{RSS: rss, Iterations: iterations, Converged: converged, Err: reason}, nil
}

// newtonState is one point in the Gauss-Newton search space.
type newtonState struct {
	p0, pn   Point
	kind     SegmentKind
	interior []Point
	ts       []float64
	fitTs    bool
}

func interiorControls(seg Segment) []Point {
	pts := seg.ControlPoints()
	interior := make([]Point, len(pts)-2)
	copy(interior, pts[1:len(pts)-1])
	return interior
}

func (st newtonState) segment() Segment {
	switch st.kind {
	case QuadKind:
		return QuadBez{st.p0, st.interior[0], st.pn}.Seg()
	default:
		return CubicBez{st.p0, st.interior[0], st.interior[1], st.pn}.Seg()
	}
}

// unknowns is the length of the parameter vector: x and y per interior
// control point, plus one parameter per sample when those are being fit.
func (st newtonState) unknowns() int {
	n := 2 * len(st.interior)
	if st.fitTs {
		n += len(st.ts)
	}
	return n
}

func (st newtonState) rss(samples []Sample) float64 {
	return residualSumSquares(st.segment(), samples, st.ts)
}

// jacobian builds the residual vector and its Jacobian. Residuals come in
// pairs, x then y per sample. Columns are ordered interior x coordinates,
// interior y coordinates, then sample parameters.
//
// The control point columns hold the Bernstein weights of the interior
// points; each sample's own parameter column holds the segment tangent at
// that parameter, making the parameter block diagonal.
func (st newtonState) jacobian(samples []Sample) (*mat.Dense, *mat.VecDense) {
	n := len(samples)
	m := len(st.interior)
	p := st.unknowns()
	seg := st.segment()

	j := mat.NewDense(2*n, p, nil)
	r := mat.NewVecDense(2*n, nil)
	for i, s := range samples {
		t := st.ts[i]
		res := seg.Eval(t).Sub(s.Point)
		r.SetVec(2*i, res.X)
		r.SetVec(2*i+1, res.Y)

		w, _ := seg.Weights(t)
		for k := 0; k < m; k++ {
			j.Set(2*i, k, w[k+1])
			j.Set(2*i+1, m+k, w[k+1])
		}
		if st.fitTs {
			tangent := seg.Tangent(t)
			j.Set(2*i, 2*m+i, tangent.X)
			j.Set(2*i+1, 2*m+i, tangent.Y)
		}
	}
	return j, r
}

// solveNormalEquations solves JᵀJ Δ = −Jᵀr, damping the diagonal when the
// Cholesky factorization fails.
func solveNormalEquations(j *mat.Dense, r *mat.VecDense) (*mat.VecDense, bool) {
	_, p := j.Dims()
	jtj := mat.NewSymDense(p, nil)
	jtj.SymOuterK(1, j.T())
	jtr := mat.NewVecDense(p, nil)
	jtr.MulVec(j.T(), r)

	delta := mat.NewVecDense(p, nil)
	var chol mat.Cholesky
	if chol.Factorize(jtj) {
		if err := chol.SolveVecTo(delta, jtr); err == nil {
			delta.ScaleVec(-1, delta)
			return delta, true
		}
	}

	// Levenberg-style damping: add λ to the diagonal, scaling λ up until
	// the factorization goes through.
	meanDiag := 0.0
	for i := 0; i < p; i++ {
		meanDiag += jtj.At(i, i)
	}
	meanDiag /= float64(p)
	lambda := 1e-3 * math.Max(meanDiag, 1e-12)
	for retry := 0; retry < dampingRetries; retry++ {
		damped := mat.NewSymDense(p, nil)
		damped.CopySym(jtj)
		for i := 0; i < p; i++ {
			damped.SetSym(i, i, damped.At(i, i)+lambda)
		}
		if chol.Factorize(damped) {
			if err := chol.SolveVecTo(delta, jtr); err == nil {
				delta.ScaleVec(-1, delta)
				return delta, true
			}
		}
		lambda *= 10
	}
	return nil, false
}

// lineSearch applies delta scaled by α, halving α until the residual
// improves. It returns the accepted state, its residual, and the norm of
// the applied step.
func (st newtonState) lineSearch(samples []Sample, delta *mat.VecDense, rss float64) (newtonState, float64, float64, bool) {
	for alpha := 1.0; alpha >= alphaFloor; alpha *= 0.5 {
		cand := st.applyStep(delta, alpha)
		candRSS := cand.rss(samples)
		if candRSS < rss {
			return cand, candRSS, alpha * mat.Norm(delta, 2), true
		}
	}
	return newtonState{}, 0, 0, false
}

// applyStep returns the state moved by alpha*delta, with sample parameters
// clamped to [0, 1].
func (st newtonState) applyStep(delta *mat.VecDense, alpha float64) newtonState {
	m := len(st.interior)
	next := newtonState{
		p0:       st.p0,
		pn:       st.pn,
		kind:     st.kind,
		interior: make([]Point, m),
		ts:       make([]float64, len(st.ts)),
		fitTs:    st.fitTs,
	}
	for k := 0; k < m; k++ {
		next.interior[k] = Pt(
			st.interior[k].X+alpha*delta.AtVec(k),
			st.interior[k].Y+alpha*delta.AtVec(m+k),
		)
	}
	copy(next.ts, st.ts)
	if st.fitTs {
		for i := range next.ts {
			t := st.ts[i] + alpha*delta.AtVec(2*m+i)
			next.ts[i] = min(max(t, 0.0), 1.0)
		}
	}
	return next
}
