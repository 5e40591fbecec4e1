package bezfit

import "fmt"

// rssFloor is the residual sum below which iterating further is pointless.
const rssFloor = 1e-12

// FitAlternating fits a single-segment curve by alternating between two
// cheap steps: re-estimating each sample's parameter by projecting it onto
// the current segment, and re-solving the linear least-squares system at
// the new parameters.
//
// Projection can transiently worsen the residual, so the best segment seen
// across all iterations is returned, not the last one. The fit converges
// when the relative residual improvement drops below opts.Tolerance or the
// residual reaches the floor; exhausting opts.MaxIterations returns the
// best-so-far with Converged=false.
func FitAlternating(samples []Sample, opts Options) (Curve, FitReport, error) {
	if err := opts.validate(); err != nil {
		return Curve{}, FitReport{}, err
	}
	if err := validateSamples(samples); err != nil {
		return Curve{}, FitReport{}, err
	}

	ts := resolveParams(samples, opts.Heuristic)
	seg, rep := fitLinearAt(samples, ts, opts.Degree)
	best := seg
	bestRSS := rep.RSS
	if !rep.Converged {
		// The linear pass already degraded to the chord heuristic;
		// projecting onto a degenerate or heuristic segment won't recover.
		return Curve{Segments: []Segment{best}},
			FitReport{RSS: bestRSS, Iterations: 0, Converged: false, Err: rep.Err}, nil
	}

	if bestRSS <= rssFloor {
		return Curve{Segments: []Segment{best}},
			FitReport{RSS: bestRSS, Iterations: 0, Converged: true}, nil
	}

	prevRSS := rep.RSS
	converged := false
	var reason error
	iterations := 0
	for iterations < opts.MaxIterations {
		iterations++
		for i, s := range samples {
			t, _ := seg.Nearest(s.Point)
			ts[i] = t
		}
		// The endpoints stay pinned to the ends of the segment.
		ts[0] = 0.0
		ts[len(ts)-1] = 1.0

		var itRep FitReport
		seg, itRep = fitLinearAt(samples, ts, opts.Degree)
		tracer().Debugf("alternating iteration %d: rss %g (best %g)", iterations, itRep.RSS, bestRSS)
		if itRep.RSS < bestRSS {
			best = seg
			bestRSS = itRep.RSS
		}
		if !itRep.Converged {
			reason = itRep.Err
			break
		}
		if itRep.RSS <= rssFloor {
			converged = true
			break
		}
		if prevRSS > 0 && (prevRSS-itRep.RSS)/prevRSS < opts.Tolerance {
			converged = true
			break
		}
		prevRSS = itRep.RSS
	}

	if !converged && reason == nil {
		reason = fmt.Errorf("%w after %d iterations", ErrNonConvergence, iterations)
	}
	return Curve{Segments: []Segment{best}},
		FitReport{RSS: bestRSS, Iterations: iterations, Converged: converged, Err: reason}, nil
}
