package bezfit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	testCubic = CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	testQuad  = QuadBez{Pt(0, 0), Pt(2, 3), Pt(4, 0)}
)

func TestSegmentEval(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	seg := testCubic.Seg()
	diff(t, testCubic.P0, seg.Eval(0))
	diff(t, testCubic.P3, seg.Eval(1))
	diff(t, testCubic.Eval(0.3), seg.Eval(0.3), approx)

	seg = testQuad.Seg()
	diff(t, testQuad.P0, seg.Eval(0))
	diff(t, testQuad.P2, seg.Eval(1))
	diff(t, testQuad.Eval(0.7), seg.Eval(0.7), approx)
}

func TestSegmentWeights(t *testing.T) {
	for _, seg := range []Segment{testCubic.Seg(), testQuad.Seg()} {
		for _, tt := range []float64{0, 0.25, 0.5, 0.9, 1} {
			w, n := seg.Weights(tt)
			sum := 0.0
			var pt Vec2
			pts := seg.ControlPoints()
			for i := 0; i < n; i++ {
				sum += w[i]
				pt = pt.Add(Vec2(pts[i]).Mul(w[i]))
			}
			if math.Abs(sum-1) > 1e-12 {
				t.Errorf("%v weights at %g sum to %g", seg.Kind, tt, sum)
			}
			if Point(pt).Distance(seg.Eval(tt)) > 1e-12 {
				t.Errorf("%v weighted control points at %g give %v, Eval gives %v",
					seg.Kind, tt, Point(pt), seg.Eval(tt))
			}
		}
	}
}

// Tangent should agree with a central finite difference of Eval.
func TestSegmentTangent(t *testing.T) {
	const h = 1e-6
	for _, seg := range []Segment{testCubic.Seg(), testQuad.Seg()} {
		for _, tt := range []float64{0.1, 0.5, 0.9} {
			got := seg.Tangent(tt)
			fd := seg.Eval(tt + h).Sub(seg.Eval(tt - h)).Div(2 * h)
			if got.Sub(fd).Hypot() > 1e-4 {
				t.Errorf("%v tangent at %g: got %v, finite difference %v", seg.Kind, tt, got, fd)
			}
		}
	}
}

func TestSegmentSubdivide(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	for _, seg := range []Segment{testCubic.Seg(), testQuad.Seg()} {
		s0, s1 := seg.Subdivide()
		diff(t, seg.Start(), s0.Start())
		diff(t, seg.Eval(0.5), s0.End(), approx)
		diff(t, s0.End(), s1.Start())
		diff(t, seg.End(), s1.End())
		diff(t, seg.Eval(0.25), s0.Eval(0.5), approx)
		diff(t, seg.Eval(0.75), s1.Eval(0.5), approx)
	}
}

func TestSegmentSubsegment(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	seg := testCubic.Seg()
	sub := seg.Subsegment(0.2, 0.8)
	diff(t, seg.Eval(0.2), sub.Start(), approx)
	diff(t, seg.Eval(0.8), sub.End(), approx)
	diff(t, seg.Eval(0.5), sub.Eval(0.5), approx)
}

func TestSegmentDegenerate(t *testing.T) {
	p := Pt(2, 3)
	seg := CubicBez{p, p, p, p}.Seg()
	if !seg.IsDegenerate() {
		t.Error("coincident cubic not reported degenerate")
	}
	if testCubic.Seg().IsDegenerate() {
		t.Error("regular cubic reported degenerate")
	}
}

func TestQuadRaise(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	c := testQuad.Raise()
	for _, tt := range []float64{0, 0.2, 0.5, 0.8, 1} {
		diff(t, testQuad.Eval(tt), c.Eval(tt), approx)
	}
}
